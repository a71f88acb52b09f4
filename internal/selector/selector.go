// Package selector runs the interactive template picker. It renders the
// catalog as a navigable checklist and returns the toggled entries in the
// order they were toggled. The terminal is the only shared resource the
// session touches; bubbletea puts it into raw mode for the duration of
// the program and restores it on every exit path, including panics and
// interrupts.
package selector

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gorewood/promptmerge/internal/catalog"
	"github.com/gorewood/promptmerge/internal/output"
)

// ErrCancelled signals that the user quit the session without confirming.
// The CLI treats it as a clean no-op exit, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// Run starts the interactive session over the given catalog and blocks
// until the user confirms or cancels. The returned selection preserves
// toggle order and contains no duplicates.
func Run(entries []catalog.Entry) ([]string, error) {
	final, err := tea.NewProgram(New(entries), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, output.NewIOErrorWithCause("running interactive selector", err)
	}

	m, ok := final.(Model)
	if !ok || m.state != stateConfirmed {
		return nil, ErrCancelled
	}
	return m.Selection(), nil
}
