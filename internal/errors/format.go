package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	usageText   = color.New(color.FgCyan).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// plain is the identity styling used when colors are disabled.
func plain(a ...interface{}) string {
	return fmt.Sprint(a...)
}

type styles struct {
	errorLabel, errorMsg, fixLabel, usageLabel, usageText, bullet, category func(a ...interface{}) string
}

func stylesFor(useColors bool) styles {
	if !useColors {
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{errorLabel, errorMsg, fixLabel, usageLabel, usageText, bullet, categoryFmt}
}

func formatError(err *CLIError, useColors bool) string {
	s := stylesFor(useColors)
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s [%s]: %s\n", s.errorLabel("Error"), s.category(err.Category.String()), s.errorMsg(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n", s.usageLabel("Usage: "), s.usageText(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", s.fixLabel("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", s.bullet("•"), step)
		}
	}

	return sb.String()
}

// Fprint writes err to w. A CLIError anywhere in the chain is shown with its
// category and remediation; any other error is shown as a Runtime error.
func Fprint(w io.Writer, err error, useColors bool) {
	if err == nil {
		return
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error(), Err: err}
	}
	fmt.Fprint(w, formatError(cliErr, useColors))
}
