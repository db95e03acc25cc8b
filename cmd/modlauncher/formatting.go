package modlauncher

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpStyled reports whether help headings get terminal styling: stdout is
// a terminal and NO_COLOR is unset.
func helpStyled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatBold(s string) string {
	if !helpStyled() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatHeading turns a group title such as "Launch Commands" into the
// "LAUNCH COMMANDS:" form used by the usage template.
func formatHeading(s string) string {
	s = strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(s), ":"))
	return formatBold(s + ":")
}

// initTemplateFormatting registers the usage template helpers with cobra.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":    formatBold,
		"heading": formatHeading,
	})
}
