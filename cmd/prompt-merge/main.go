// Package main provides the entry point for the prompt-merge CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/promptmerge/internal/output"
	"github.com/gorewood/promptmerge/internal/selector"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the prompt-merge CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(selector.Run)
}

// newRootCmdInternal creates the command tree with an injected selector.
// A bare invocation runs the interactive merge; --list prints the catalog.
func newRootCmdInternal(selectFn selectFunc) *cobra.Command {
	var listFlag bool
	var outputFlag string
	var selectFlags []string

	cmd := &cobra.Command{
		Use:   "prompt-merge",
		Short: "Merge prompt templates into a single file",
		Long: `prompt-merge combines Markdown guideline templates into one document.

Templates are discovered under a root directory (default ./templates,
configurable via --templates-dir or the config file). Template content is
treated as opaque text: nothing is parsed, validated or rewritten, and the
"Extends" notes inside templates are display hints only.

Typical usage:
  prompt-merge --list          List all available templates
  prompt-merge                 Interactive selection and merge
  prompt-merge -o FILE         Output to a specific file (default: CLAUDE.md)

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listFlag {
				return runList(cmd)
			}
			return runGo(cmd, selectFn, outputFlag, selectFlags)
		},
	}

	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List all available templates")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: config file or CLAUDE.md, \"-\" for stdout)")
	cmd.Flags().StringArrayVarP(&selectFlags, "select", "s", nil, "Template to merge by relative path (repeatable, skips the picker)")

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, never")
	cmd.PersistentFlags().StringP("templates-dir", "t", "", "Templates root directory (default: config file or ./templates)")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newGoCmdInternal(selectFn))

	return cmd
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// newPrinter builds the printer for a command, honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	colorMode, _ := cmd.Flags().GetString("color")
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).
		WithStderr(cmd.ErrOrStderr())
}
