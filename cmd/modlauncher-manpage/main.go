package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/modlauncher/cmd/modlauncher"
	"github.com/arthur-debert/modlauncher/internal/version"
)

func main() {
	rootCmd := modlauncher.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MODLAUNCHER",
		Section: "1",
		Source:  "modlauncher " + version.Short(),
		Manual:  "modlauncher manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
