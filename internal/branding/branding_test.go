package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "create-fias" {
		t.Errorf("CLIName() = %q, want %q", got, "create-fias")
	}
	if got := TemplateRepoURL(); got != "https://github.com/fiasuz/fias-ui.git" {
		t.Errorf("TemplateRepoURL() = %q", got)
	}
	if got := CommitMessage(); got != "init create-fias" {
		t.Errorf("CommitMessage() = %q", got)
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("template_repo"); got != "CREATE_FIAS_TEMPLATE_REPO" {
		t.Errorf("EnvVar() = %q, want %q", got, "CREATE_FIAS_TEMPLATE_REPO")
	}
}
