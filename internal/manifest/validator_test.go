package manifest

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateFile_Fixture(t *testing.T) {
	result, err := ValidateFile(filepath.Join("testdata", FileName))
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		desc string
		json string
		path string
	}{
		{"uppercase name", `{"name": "My-App"}`, "/name"},
		{"name with spaces", `{"name": "my app"}`, "/name"},
		{"missing name", `{"version": "1.0.0"}`, ""},
		{"name not a string", `{"name": 42}`, "/name"},
		{"bad semver", `{"name": "my-app", "version": "1.0"}`, "/version"},
		{"script not a string", `{"name": "my-app", "scripts": {"dev": 1}}`, "/scripts/dev"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			result, err := Validate([]byte(tt.json))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected issues for %s", tt.json)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q in %v", tt.path, result.Issues)
			}
		})
	}
}

func TestValidate_ScopedName(t *testing.T) {
	result, err := Validate([]byte(`{"name": "@fias/my-app", "version": "1.2.3-beta.1"}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"name":`))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Validate() error = %v, want *ParseError", err)
	}
}
