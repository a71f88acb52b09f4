package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/promptmerge/internal/catalog"
)

// state tracks the session lifecycle. Browsing is the only state with
// transitions; Confirmed and Cancelled are terminal.
type state int

const (
	stateBrowsing state = iota
	stateConfirmed
	stateCancelled
)

const previewWidth = 72

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	baseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	entryStyle    = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the template picker.
type Model struct {
	entries []catalog.Entry

	cursor  int
	chosen  map[string]bool
	order   []string // toggle order, drives merge order
	state   state
	preview bool

	previewVP viewport.Model
	renderer  *glamour.TermRenderer

	width  int
	height int
}

// New builds a Model over the scanned catalog. The catalog is read-only
// here; the model owns only its selection state.
func New(entries []catalog.Entry) Model {
	vp := viewport.New(previewWidth, 16)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth-2),
	)
	if err != nil {
		renderer = nil // preview falls back to raw text
	}

	return Model{
		entries:   entries,
		chosen:    make(map[string]bool),
		previewVP: vp,
		renderer:  renderer,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Navigation and toggling keep the model in
// Browsing; enter confirms only when something is selected; q, esc and
// ctrl+c cancel.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.previewVP.Height = max(4, msg.Height-len(m.entries)-6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.state = stateCancelled
			return m, tea.Quit

		case "up", "k":
			m.moveCursor(-1)
			m.refreshPreview()
			return m, nil

		case "down", "j":
			m.moveCursor(1)
			m.refreshPreview()
			return m, nil

		case " ":
			m.toggle()
			return m, nil

		case "enter":
			// Confirming an empty selection is a no-op.
			if len(m.order) == 0 {
				return m, nil
			}
			m.state = stateConfirmed
			return m, tea.Quit

		case "tab":
			m.preview = !m.preview
			if m.preview {
				m.refreshPreview()
			}
			return m, nil

		case "pgup", "pgdown":
			if m.preview {
				var cmd tea.Cmd
				m.previewVP, cmd = m.previewVP.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state != stateBrowsing {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select templates to merge"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space toggle · enter confirm · tab preview · q quit"))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		b.WriteString(m.renderEntry(i, entry))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d template(s) selected", len(m.order))))
	b.WriteString("\n")

	if m.preview {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("── preview: " + m.current().RelPath + " "))
		b.WriteString("\n")
		b.WriteString(m.previewVP.View())
		b.WriteString("\n")
	}

	return b.String()
}

// Selection returns the toggled relative paths in toggle order.
func (m Model) Selection() []string {
	return append([]string(nil), m.order...)
}

// renderEntry renders one catalog line with cursor and checkbox markers.
func (m Model) renderEntry(i int, entry catalog.Entry) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	style := entryStyle
	if m.chosen[entry.RelPath] {
		check = checkedStyle.Render("[x]")
		style = selectedStyle
	}

	line := cursor + check + " " + style.Render(entry.RelPath)
	if entry.IsBase {
		line += " " + baseStyle.Render("[BASE]")
	}
	if entry.Title != "" {
		line += " " + dimStyle.Render("· "+entry.Title)
	}
	return line
}

// moveCursor moves by delta, wrapping at both ends.
func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.entries)) % len(m.entries)
}

// toggle flips the entry under the cursor. Untoggling removes the entry
// from the order so the selection never holds duplicates.
func (m *Model) toggle() {
	if len(m.entries) == 0 {
		return
	}
	rel := m.current().RelPath
	if m.chosen[rel] {
		delete(m.chosen, rel)
		for i, r := range m.order {
			if r == rel {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		return
	}
	m.chosen[rel] = true
	m.order = append(m.order, rel)
}

// current returns the entry under the cursor.
func (m Model) current() catalog.Entry {
	if len(m.entries) == 0 {
		return catalog.Entry{}
	}
	return m.entries[m.cursor]
}

// refreshPreview re-renders the preview pane for the entry under the
// cursor. Preview is display-only and never touches selection state.
func (m *Model) refreshPreview() {
	if !m.preview || len(m.entries) == 0 {
		return
	}

	content, err := readPreview(m.current().Path)
	if err != nil {
		m.previewVP.SetContent(dimStyle.Render("unable to read " + m.current().RelPath))
		return
	}

	if m.renderer != nil {
		if rendered, err := m.renderer.Render(content); err == nil {
			m.previewVP.SetContent(rendered)
			m.previewVP.GotoTop()
			return
		}
	}
	m.previewVP.SetContent(content)
	m.previewVP.GotoTop()
}
