package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/promptmerge/internal/catalog"
	"github.com/gorewood/promptmerge/internal/config"
	"github.com/gorewood/promptmerge/internal/output"
)

// newListCmd creates the list command. The root --list flag is an alias
// for it, kept for parity with the original script invocation.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available templates",
		Long: `List all templates under the templates root, grouped by category.

Each entry shows its relative path (the identifier used by 'go --select'),
its title and, when present, its description and Extends note.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

// runList prints the catalog. Zero templates is not an error: the catalog
// is printed empty with a hint on the error stream.
func runList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	root, err := resolveTemplatesDir(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := catalog.Scan(root)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		return printer.WriteJSON(entries)
	}

	if len(entries) == 0 {
		printer.Stderr("no templates available in %s\n", root)
		return nil
	}

	printer.Println("Available Templates:")
	for _, group := range catalog.Groups(entries) {
		printer.Section(groupLabel(group))
		for _, entry := range entries {
			if entry.Group != group {
				continue
			}
			printEntry(printer, entry)
		}
	}
	printer.Println()
	printer.Println(fmt.Sprintf("Total: %d template(s)", len(entries)))
	return nil
}

// printEntry renders one catalog entry: the identifying path line first,
// then indented metadata.
func printEntry(printer *output.Printer, entry catalog.Entry) {
	line := "  " + entry.RelPath
	if entry.IsBase {
		line += " [BASE]"
	}
	printer.Println(line)
	printer.KeyValue("    Title", entry.Title)
	if entry.Description != "" {
		printer.Dim("    %s", entry.Description)
	}
	if entry.Extends != "" {
		printer.Dim("    %s", entry.Extends)
	}
}

// groupLabel renders the root group readably.
func groupLabel(group string) string {
	if group == "." {
		return "(root)"
	}
	return group
}

// resolveTemplatesDir returns the templates root: flag, then config file,
// then ./templates.
func resolveTemplatesDir(cmd *cobra.Command) (string, error) {
	flagValue, _ := cmd.Flags().GetString("templates-dir")

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return config.Resolve(flagValue, cfg.TemplatesDir, config.DefaultTemplatesDir), nil
}
