package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/promptmerge/internal/catalog"
	"github.com/gorewood/promptmerge/internal/output"
)

func TestListCommand(t *testing.T) {
	isolateConfig(t)
	root := templatesFixture(t)

	out, _, err := executeCmd(t, newRootCmd(), "list", "--templates-dir", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"a/one.md", "b/two.md", "base.md", "[BASE]", "Total: 3 template(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "README.md") {
		t.Errorf("list output should not contain README.md:\n%s", out)
	}
}

func TestListFlagOnRoot(t *testing.T) {
	isolateConfig(t)
	root := templatesFixture(t)

	out, _, err := executeCmd(t, newRootCmd(), "--list", "--templates-dir", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "a/one.md") {
		t.Errorf("--list output missing catalog:\n%s", out)
	}
}

func TestListJSON(t *testing.T) {
	isolateConfig(t)
	root := templatesFixture(t)

	out, _, err := executeCmd(t, newRootCmd(), "list", "--templates-dir", root, "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var entries []catalog.Entry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("list --json output is not valid JSON: %v\n%s", err, out)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].RelPath != "a/one.md" || entries[0].Title != "One" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if !entries[2].IsBase {
		t.Errorf("base.md should carry the base marker: %+v", entries[2])
	}
}

func TestListMissingRoot(t *testing.T) {
	isolateConfig(t)

	_, errOut, err := executeCmd(t, newRootCmd(), "list", "--templates-dir", "/no/such/templates")
	if err == nil {
		t.Fatal("Execute() error = nil, want configuration error")
	}
	if code := output.GetExitCode(err); code != output.ExitConfig {
		t.Errorf("exit code = %d, want %d", code, output.ExitConfig)
	}
	if !strings.Contains(errOut, "/no/such/templates") {
		t.Errorf("stderr does not name the missing path:\n%s", errOut)
	}
}

func TestListEmptyRoot(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()

	out, errOut, err := executeCmd(t, newRootCmd(), "list", "--templates-dir", root)
	if err != nil {
		t.Fatalf("Execute() error = %v, want nil for empty catalog", err)
	}
	if !strings.Contains(errOut, "no templates available") {
		t.Errorf("stderr missing hint:\n%s", errOut)
	}
	if strings.Contains(out, "Total:") {
		t.Errorf("stdout should not show a total for an empty catalog:\n%s", out)
	}
}
