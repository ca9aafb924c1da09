package provision

import (
	"fmt"
	"strings"
)

// Kind selects which template branch is cloned.
type Kind string

// Supported template kinds. KindDefault clones the repository's default
// branch.
const (
	KindDefault Kind = "default"
	KindNext    Kind = "next"
	KindReact   Kind = "react"
)

// Choice is one entry of the template menu.
type Choice struct {
	Label string
	Kind  Kind
}

// Choices lists the selectable templates in menu order. The first entry is
// the default selection.
var Choices = []Choice{
	{Label: "Next.js", Kind: KindNext},
	{Label: "React", Kind: KindReact},
}

// Branch returns the template branch for k, or "" for the repository default.
func (k Kind) Branch() string {
	switch k {
	case KindNext:
		return "templ-next"
	case KindReact:
		return "templ-react"
	default:
		return ""
	}
}

// DisplayName returns the human-readable template name.
func (k Kind) DisplayName() string {
	switch k {
	case KindReact:
		return "React"
	default:
		return "Next.js"
	}
}

// ParseKind maps a flag value ("next", "nextjs", "react", "default") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return KindDefault, nil
	case "next", "nextjs", "next.js":
		return KindNext, nil
	case "react":
		return KindReact, nil
	default:
		return "", fmt.Errorf("unknown template %q: choose next or react", s)
	}
}

// Source identifies what to clone.
type Source struct {
	URL    string
	Branch string
}

// SourceFor returns the clone source for kind from the repository at url.
func SourceFor(kind Kind, url string) Source {
	return Source{URL: url, Branch: kind.Branch()}
}
