package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Render는 실패를 사용자에게 보여줄 메시지로 만든다.
// err 체인에 Failure가 없으면 err.Error()를 그대로 반환한다.
func Render(err error) string {
	if err == nil {
		return ""
	}
	var f Failure
	if !errors.As(err, &f) {
		return err.Error()
	}

	switch e := f.(type) {
	case *NoAppError:
		return renderNoApp(e)
	case *InvalidAppError:
		return fmt.Sprintf("There is no app configured with the name %q", e.Name)
	case *NoAppMasterError:
		return fmt.Sprintf("The environment '%s' does not have a master instance.", e.Environment)
	case *NoInstancesError:
		return fmt.Sprintf("The environment '%s' does not have any matching instances.", e.Environment)
	case *BadAppMasterStatusError:
		return fmt.Sprintf("Application master's status is not \"running\" (green); it is %q.", e.Status)
	case *AmbiguousEnvironmentError:
		return renderAmbiguousEnvironment(e)
	case *AmbiguousApplicationError:
		return renderAmbiguousApplication(e)
	case *NoEnvironmentError:
		return renderNoEnvironment(e)
	case *EnvironmentUnlinkedError:
		return fmt.Sprintf("Environment '%s' exists but does not run this application.", e.Environment)
	case *AttributeRequiredError:
		if e.Class != "" {
			return fmt.Sprintf("Attribute '%s' of class %s is required for this action.", e.Attribute, e.Class)
		}
		return fmt.Sprintf("Attribute '%s' is required for this action.", e.Attribute)
	case *BadEndpointError:
		return fmt.Sprintf("%q is not a valid endpoint URI. Endpoint must be an absolute URI.", e.Endpoint)
	default:
		return err.Error()
	}
}

func renderNoApp(e *NoAppError) string {
	var b strings.Builder
	b.WriteString("There is no application configured for any of the following remotes:\n\t")
	if len(e.Remotes) == 0 {
		b.WriteString("No remotes found.")
	} else {
		b.WriteString(strings.Join(e.Remotes, "\n\t"))
	}
	b.WriteString("\nYou can add this application at ")
	b.WriteString(e.Endpoint)
	b.WriteString("\n")
	return b.String()
}

func renderAmbiguousEnvironment(e *AmbiguousEnvironmentError) string {
	var b strings.Builder
	switch {
	case e.Name != "":
		fmt.Fprintf(&b, "Multiple environments named '%s' were found.\n", e.Name)
		b.WriteString("Please use -c <account> to specify one of the following environments:\n")
	case e.App != "":
		fmt.Fprintf(&b, "The application '%s' runs in more than one environment.\n", e.App)
		b.WriteString("Please use -e <envname> to specify one of the following environments:\n")
	default:
		b.WriteString("The repository url in this directory is ambiguous.\n")
		b.WriteString("Please use -e <envname> to specify one of the following environments:\n")
	}
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\t%s (%s)\n", c.Environment, c.Account)
	}
	return b.String()
}

func renderAmbiguousApplication(e *AmbiguousApplicationError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multiple applications run in environment '%s'.\n", e.Environment)
	b.WriteString("Please use -a <appname> to specify one of the following applications:\n")
	for _, name := range e.Applications {
		fmt.Fprintf(&b, "\t%s\n", name)
	}
	return b.String()
}

func renderNoEnvironment(e *NoEnvironmentError) string {
	if e.Account != "" {
		return fmt.Sprintf("No environment found matching '%s' in account '%s'\nYou can create one at %s",
			e.Name, e.Account, e.Endpoint)
	}
	return fmt.Sprintf("No environment found matching '%s'\nYou can create one at %s", e.Name, e.Endpoint)
}
