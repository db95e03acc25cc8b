package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/modlauncher/cmd/modlauncher"
	"github.com/arthur-debert/modlauncher/pkg/style"
)

func main() {
	rootCmd := modlauncher.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
