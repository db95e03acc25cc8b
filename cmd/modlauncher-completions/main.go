// Command modlauncher-completions writes a shell completion script for
// packaging, e.g. modlauncher-completions zsh > _modlauncher.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/modlauncher/cmd/modlauncher"
	"github.com/arthur-debert/modlauncher/pkg/style"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <%s>\n", os.Args[0], strings.Join(modlauncher.CompletionShells, "|"))
		os.Exit(2)
	}

	if err := modlauncher.WriteCompletion(modlauncher.NewRootCmd(), os.Args[1], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
