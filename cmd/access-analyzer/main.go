// Package main provides the entry point for the access-analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rezangit/building-access-analyzer/cmd/access-analyzer/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
