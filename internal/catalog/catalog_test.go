package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/promptmerge/internal/output"
)

// writeTemplate writes a template file under root, creating directories.
func writeTemplate(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", rel, err)
	}
}

func TestScanOrderingAndFiltering(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root, "javascript/react.md", "# React\n")
	writeTemplate(t, root, "javascript/base.md", "# JavaScript Base\n")
	writeTemplate(t, root, "go.md", "# Go\n")
	writeTemplate(t, root, "README.md", "# Not a template\n")
	writeTemplate(t, root, "python/notes.txt", "not markdown")

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"go.md", "javascript/base.md", "javascript/react.md"}
	if len(entries) != len(want) {
		t.Fatalf("Scan() returned %d entries, want %d", len(entries), len(want))
	}
	for i, rel := range want {
		if entries[i].RelPath != rel {
			t.Errorf("entries[%d].RelPath = %q, want %q", i, entries[i].RelPath, rel)
		}
	}
}

func TestScanMetadata(t *testing.T) {
	tests := []struct {
		name            string
		file            string
		content         string
		wantTitle       string
		wantDescription string
		wantExtends     string
		wantIsBase      bool
		wantGroup       string
	}{
		{
			name:            "title from heading",
			file:            "javascript/react.md",
			content:         "# React Guidelines\n\nUse function components.\n",
			wantTitle:       "React Guidelines",
			wantDescription: "Use function components.",
			wantGroup:       "javascript",
		},
		{
			name:            "title falls back to filename",
			file:            "notes.md",
			content:         "Just prose, no heading.\n",
			wantTitle:       "notes",
			wantDescription: "Just prose, no heading.",
			wantGroup:       ".",
		},
		{
			name:            "extends line preserved verbatim",
			file:            "javascript/react.md",
			content:         "# React\n\n> **Extends:** javascript/base.md\n\nKeep components small.\n",
			wantTitle:       "React",
			wantExtends:     "> **Extends:** javascript/base.md",
			wantDescription: "Keep components small.",
			wantGroup:       "javascript",
		},
		{
			name:       "base marker from filename",
			file:       "javascript/base.md",
			content:    "# JavaScript\n",
			wantTitle:  "JavaScript",
			wantIsBase: true,
			wantGroup:  "javascript",
		},
		{
			name:      "heading outside the first ten lines is ignored",
			file:      "late.md",
			content:   "\n\n\n\n\n\n\n\n\n\n# Too Late\n",
			wantTitle: "late",
			wantGroup: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTemplate(t, root, tt.file, tt.content)

			entries, err := Scan(root)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("Scan() returned %d entries, want 1", len(entries))
			}

			e := entries[0]
			if e.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", e.Title, tt.wantTitle)
			}
			if e.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", e.Description, tt.wantDescription)
			}
			if e.Extends != tt.wantExtends {
				t.Errorf("Extends = %q, want %q", e.Extends, tt.wantExtends)
			}
			if e.IsBase != tt.wantIsBase {
				t.Errorf("IsBase = %v, want %v", e.IsBase, tt.wantIsBase)
			}
			if e.Group != tt.wantGroup {
				t.Errorf("Group = %q, want %q", e.Group, tt.wantGroup)
			}
		})
	}
}

func TestScanLongDescriptionTruncated(t *testing.T) {
	root := t.TempDir()
	long := strings.Repeat("word ", 30)
	writeTemplate(t, root, "long.md", "# Long\n\n"+long+"\n")

	entries, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	desc := entries[0].Description
	if len([]rune(desc)) != 83 { // 80 runes plus "..."
		t.Errorf("Description length = %d runes (%q), want 83", len([]rune(desc)), desc)
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Scan() error = nil, want configuration error")
	}

	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != output.ExitConfig {
		t.Errorf("error = %v, want ExitConfig", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not name the missing path", err)
	}
}

func TestScanEmptyRoot(t *testing.T) {
	entries, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil for empty root", err)
	}
	if len(entries) != 0 {
		t.Errorf("Scan() returned %d entries, want 0", len(entries))
	}
}

func TestFind(t *testing.T) {
	entries := []Entry{
		{RelPath: "a/one.md"},
		{RelPath: "b/two.md"},
	}

	if e, ok := Find(entries, "b/two.md"); !ok || e.RelPath != "b/two.md" {
		t.Errorf("Find(b/two.md) = %v, %v", e, ok)
	}
	if _, ok := Find(entries, "c/three.md"); ok {
		t.Error("Find(c/three.md) = true, want false")
	}
}

func TestGroups(t *testing.T) {
	entries := []Entry{
		{RelPath: "go.md", Group: "."},
		{RelPath: "javascript/base.md", Group: "javascript"},
		{RelPath: "javascript/react.md", Group: "javascript"},
		{RelPath: "python/base.md", Group: "python"},
	}

	got := Groups(entries)
	want := []string{".", "javascript", "python"}
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
