package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fiasuz/create-fias/internal/branding"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ReportFailure prints a fatal error: a headline for its kind, then the
// underlying cause.
func (s *Scaffolder) ReportFailure(req Request, err error) {
	var se *StepError
	if !errors.As(err, &se) {
		s.Reporter.Error("An error occurred:")
		s.Reporter.Cause(err)
		return
	}

	switch se.Kind {
	case ErrUserInput:
		s.Reporter.Error("Please, enter the project name")
		s.Reporter.Info("Example: " + branding.CLIName() + " my-app")
	case ErrAlreadyExists:
		s.Reporter.Error(fmt.Sprintf("Folder %q already exists", req.Name))
	default:
		s.Reporter.Error(headline(se.Kind) + ":")
	}
	if se.Err != nil {
		s.Reporter.Cause(se.Err)
	}
}

// headline capitalizes the first letter of a kind's message.
func headline(kind error) string {
	msg := kind.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// PrintSummary prints the success banner, next steps, and project details.
func (s *Scaffolder) PrintSummary(res *Result) {
	rep := s.Reporter
	pm := s.Options.PackageManager

	rep.Banner("🎉 Created successfully!")
	rep.Title("Next steps:")
	rep.Step("cd " + res.Request.Name)
	if s.Options.SkipInstall {
		rep.Step(pm + " install")
	}
	rep.Step(pm + " run dev")

	rep.Info("\nAbout your project:")
	rep.Field("Project name", res.Request.Name)
	rep.Field("Directory", res.Dir)
	rep.Field("Template", res.Request.Kind.DisplayName())
	if res.Files > 0 {
		rep.Field("Files", printer.Sprintf("%d", res.Files))
	}
}
