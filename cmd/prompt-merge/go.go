package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/promptmerge/internal/catalog"
	"github.com/gorewood/promptmerge/internal/config"
	"github.com/gorewood/promptmerge/internal/merge"
	"github.com/gorewood/promptmerge/internal/output"
	"github.com/gorewood/promptmerge/internal/selector"
)

// selectFunc picks templates from the catalog. The default implementation
// runs the interactive terminal session; tests inject their own.
type selectFunc func(entries []catalog.Entry) ([]string, error)

// newGoCmdInternal creates the go command with an injected selector.
func newGoCmdInternal(selectFn selectFunc) *cobra.Command {
	var outputFlag string
	var selectFlags []string

	cmd := &cobra.Command{
		Use:   "go",
		Short: "Select templates and merge them",
		Long: `Select templates and merge them into a single output file.

Without --select this opens an interactive picker: arrow keys or j/k move,
space toggles, tab previews, enter confirms, q cancels. Cancelling writes
nothing and exits cleanly.

With --select the picker is skipped and templates are merged in the order
the flags are given:

  prompt-merge go --select javascript/base.md --select javascript/react.md

Merged content is verbatim; a comment line naming the source precedes each
section so the output stays traceable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGo(cmd, selectFn, outputFlag, selectFlags)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: config file or CLAUDE.md, \"-\" for stdout)")
	cmd.Flags().StringArrayVarP(&selectFlags, "select", "s", nil, "Template to merge by relative path (repeatable, skips the picker)")

	return cmd
}

// runGo executes the scan → select → merge → write pipeline.
func runGo(cmd *cobra.Command, selectFn selectFunc, outputFlag string, selectFlags []string) error {
	printer := newPrinter(cmd)

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err)
		return err
	}

	root := config.Resolve(mustString(cmd, "templates-dir"), cfg.TemplatesDir, config.DefaultTemplatesDir)
	entries, err := catalog.Scan(root)
	if err != nil {
		printer.Error(err)
		return err
	}
	if len(entries) == 0 {
		err := output.NewValidationError("no templates found in " + root)
		printer.Error(err)
		return err
	}

	selection := selectFlags
	if len(selection) == 0 {
		selection, err = selectFn(entries)
		if errors.Is(err, selector.ErrCancelled) {
			// A clean no-op, not a failure.
			printer.Stderr("Cancelled.\n")
			return nil
		}
		if err != nil {
			printer.Error(err)
			return err
		}
	}

	doc, err := merge.Build(entries, selection)
	if err != nil {
		printer.Error(err)
		return err
	}

	outPath := config.Resolve(outputFlag, cfg.Output, config.DefaultOutput)
	if err := doc.WriteFile(outPath); err != nil {
		printer.Error(err)
		return err
	}

	return reportMerge(printer, doc, outPath)
}

// reportMerge prints the merge summary.
func reportMerge(printer *output.Printer, doc *merge.Document, outPath string) error {
	sources := doc.SourcePaths()

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"output":  outPath,
			"count":   len(sources),
			"sources": sources,
		})
	}

	if outPath == "-" {
		// The document itself went to stdout; keep the summary off it.
		printer.Stderr("Merged %d template(s) to stdout\n", len(sources))
		return nil
	}

	if err := printer.Success(map[string]any{
		"message": fmt.Sprintf("Merged %d template(s) into %s", len(sources), outPath),
	}); err != nil {
		return err
	}
	printer.Println()
	printer.Println("Included templates:")
	for _, rel := range sources {
		printer.Println("  - " + rel)
	}
	return nil
}

// mustString reads a string flag that is always registered.
func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}
