// Package catalog discovers Markdown guideline templates under a root
// directory and exposes them as an ordered, immutable list of entries.
// Template content is opaque text; nothing here parses or validates
// Markdown beyond reading a few header lines for display metadata.
package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/promptmerge/internal/output"
)

// Entry describes one discoverable template file.
// Entries are built once per scan and never mutated afterwards.
type Entry struct {
	// RelPath is the slash-separated path relative to the scan root.
	// It is the stable identifier for the entry.
	RelPath string `json:"path"`
	// Path is the absolute filesystem path.
	Path string `json:"-"`
	// Title is the first "# " heading in the file, or the filename
	// without extension when no heading exists.
	Title string `json:"title"`
	// Description is the first prose line of the file, capped at 80 runes.
	Description string `json:"description,omitempty"`
	// Group is the relative directory ("." for root-level templates).
	Group string `json:"group"`
	// Extends carries the verbatim "> **Extends:**" line when present.
	// It is a free-text hint for the reader, never interpreted.
	Extends string `json:"extends,omitempty"`
	// IsBase marks templates whose filename contains "base".
	// Display-only; it does not affect merge order.
	IsBase bool `json:"is_base"`
}

// headerLines is how many leading lines are inspected for metadata.
const headerLines = 10

// Scan walks root depth-first and returns one Entry per Markdown file,
// ordered lexicographically by relative path. README files are not
// templates and are skipped. An empty or template-free root yields an
// empty list; a missing or unreadable root is a configuration error.
func Scan(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, output.NewConfigError("templates directory not found: " + root)
	}
	if !info.IsDir() {
		return nil, output.NewConfigError("templates path is not a directory: " + root)
	}

	var entries []Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isTemplateFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		entry := Entry{
			RelPath: rel,
			Path:    path,
			Title:   strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Group:   groupOf(rel),
			IsBase:  strings.Contains(strings.ToLower(d.Name()), "base"),
		}
		readHeaderMetadata(&entry)
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, output.NewConfigError("scanning templates directory " + root + ": " + err.Error())
	}

	return entries, nil
}

// Find returns the entry with the given relative path, or false.
func Find(entries []Entry, relPath string) (Entry, bool) {
	for _, e := range entries {
		if e.RelPath == relPath {
			return e, true
		}
	}
	return Entry{}, false
}

// Groups returns the distinct groups in catalog order.
func Groups(entries []Entry) []string {
	var groups []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}
	return groups
}

// isTemplateFile reports whether a filename is a recognized template.
func isTemplateFile(name string) bool {
	if !strings.EqualFold(filepath.Ext(name), ".md") {
		return false
	}
	return !strings.EqualFold(name, "README.md")
}

// groupOf derives the group from a slash-separated relative path.
func groupOf(rel string) string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	return dir
}

// readHeaderMetadata fills Title, Description and Extends from the first
// lines of the file. Read failures are ignored here; the entry keeps its
// filename-derived title and the merge step reports unreadable files.
func readHeaderMetadata(entry *Entry) {
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "# "):
			entry.Title = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "> **Extends:**"):
			entry.Extends = line
		case line != "" && !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, ">"):
			entry.Description = truncate(line, 80)
			return
		}
	}
}

// truncate caps s at limit runes, appending an ellipsis when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
