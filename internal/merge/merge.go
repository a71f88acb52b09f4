// Package merge concatenates selected templates into a single document.
// Content is preserved verbatim; each section is preceded by a separator
// comment naming its source so the output stays traceable to its inputs.
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/promptmerge/internal/catalog"
	"github.com/gorewood/promptmerge/internal/output"
)

// Section pairs a source entry with its raw content.
type Section struct {
	Entry   catalog.Entry
	Content string
}

// Document is the merged output artifact. It is created once per
// invocation and written exactly once.
type Document struct {
	Sections []Section
}

// Build resolves the selection against the catalog and reads every source.
// Selection order is preserved; a duplicate or unknown selection is a
// validation error, and no file is read until the whole selection has been
// validated. A source that disappeared since the scan is an I/O error
// naming the file.
func Build(entries []catalog.Entry, selection []string) (*Document, error) {
	if len(selection) == 0 {
		return nil, output.NewValidationError("nothing selected")
	}

	seen := make(map[string]bool, len(selection))
	resolved := make([]catalog.Entry, 0, len(selection))
	for _, relPath := range selection {
		if seen[relPath] {
			return nil, output.NewValidationError("duplicate selection: " + relPath)
		}
		seen[relPath] = true

		entry, ok := catalog.Find(entries, relPath)
		if !ok {
			return nil, output.NewValidationError("unknown template: " + relPath)
		}
		resolved = append(resolved, entry)
	}

	doc := &Document{Sections: make([]Section, 0, len(resolved))}
	for _, entry := range resolved {
		data, err := os.ReadFile(entry.Path)
		if err != nil {
			return nil, output.NewIOErrorWithCause("reading template "+entry.RelPath, err)
		}
		doc.Sections = append(doc.Sections, Section{Entry: entry, Content: string(data)})
	}

	return doc, nil
}

// SourcePaths returns the relative paths of the merged sources in order.
func (d *Document) SourcePaths() []string {
	paths := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		paths[i] = s.Entry.RelPath
	}
	return paths
}

// Render produces the merged text: a document header, then each section
// introduced by a "<!-- source: ... -->" marker, with horizontal rules
// between sections. Section content is untouched apart from trimming
// leading and trailing blank space.
func (d *Document) Render() string {
	var builder strings.Builder

	builder.WriteString("# CLAUDE.md\n\n")
	builder.WriteString("<!-- Generated by prompt-merge -->\n")
	fmt.Fprintf(&builder, "<!-- Sources: %s -->\n\n", strings.Join(d.SourcePaths(), ", "))

	for i, section := range d.Sections {
		if i > 0 {
			builder.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&builder, "<!-- source: %s -->\n\n", section.Entry.RelPath)
		builder.WriteString(strings.TrimSpace(section.Content))
		builder.WriteString("\n")
	}

	return builder.String()
}

// WriteFile writes the rendered document to path using
// write-to-temp-then-rename. On any failure no partial file remains at
// path. A path of "-" writes to stdout instead.
func (d *Document) WriteFile(path string) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(d.Render())
		if err != nil {
			return output.NewIOErrorWithCause("writing to stdout", err)
		}
		return nil
	}

	if err := atomicWrite(path, []byte(d.Render())); err != nil {
		return output.NewIOErrorWithCause("writing output file "+path, err)
	}
	return nil
}

// atomicWrite writes data to path via a temp file in the same directory.
// The temp file is removed on every failure path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
