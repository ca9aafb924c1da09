package scaffold

import (
	"errors"
	"testing"

	"github.com/fiasuz/create-fias/internal/prompt"
	"github.com/fiasuz/create-fias/internal/provision"
)

type fakePrompter struct {
	name      string
	nameErr   error
	kind      provision.Kind
	askedName bool
	askedKind bool
}

func (f *fakePrompter) ProjectName() (string, error) {
	f.askedName = true
	return f.name, f.nameErr
}

func (f *fakePrompter) Template() (provision.Kind, error) {
	f.askedKind = true
	return f.kind, nil
}

func TestResolveRequest_ArgumentWins(t *testing.T) {
	p := &fakePrompter{name: "from-prompt", kind: provision.KindReact}

	req, err := ResolveRequest(Input{Name: "my-app", Kind: provision.KindNext, AskTemplate: true}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "my-app" || req.Kind != provision.KindNext {
		t.Errorf("ResolveRequest() = %+v", req)
	}
	if p.askedName || p.askedKind {
		t.Error("prompter should not be consulted when flags are given")
	}
}

func TestResolveRequest_PromptsForMissing(t *testing.T) {
	p := &fakePrompter{name: "  my-app ", kind: provision.KindReact}

	req, err := ResolveRequest(Input{AskTemplate: true}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "my-app" || req.Kind != provision.KindReact {
		t.Errorf("ResolveRequest() = %+v", req)
	}
}

func TestResolveRequest_NoTemplateChooserUsesDefault(t *testing.T) {
	p := &fakePrompter{kind: provision.KindReact}

	req, err := ResolveRequest(Input{Name: "my-app"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Kind != provision.KindDefault || p.askedKind {
		t.Errorf("expected default kind without prompting, got %+v", req)
	}
}

func TestResolveRequest_EmptyName(t *testing.T) {
	tests := []struct {
		desc string
		p    PromptSource
	}{
		{"non-interactive", nil},
		{"prompt hit EOF", &fakePrompter{nameErr: prompt.ErrNoInput}},
		{"blank answer", &fakePrompter{name: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ResolveRequest(Input{}, tt.p)
			if !errors.Is(err, ErrUserInput) {
				t.Errorf("ResolveRequest() error = %v, want ErrUserInput", err)
			}
		})
	}
}
