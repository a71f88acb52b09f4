package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Value:   lipgloss.NewStyle(),
	}

	// Disable colors if not a TTY
	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Bold = lipgloss.NewStyle()
		styles.Dim = lipgloss.NewStyle()
		styles.Title = lipgloss.NewStyle()
		styles.Muted = lipgloss.NewStyle()
		styles.Key = lipgloss.NewStyle()
		styles.Value = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer (structured protocol).
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, looks for a "message" key or pretty-prints the data.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), val))
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to stdout.
// For human mode, outputs a styled single-line message to stderr (if set).
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	ok := errors.As(err, &exitErr)
	if !ok {
		exitErr = &ExitError{
			Code:    ExitUsage,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Stderr writes a message to the error writer (for status hints when piped).
// No-op in JSON mode (structured protocol handles metadata).
func (p *Printer) Stderr(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, format, args...))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// Section renders a section header with underline.
// Adds a blank line before the header.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", len([]rune(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(underline)))
}

// KeyValue renders a key-value pair with styles applied.
// Format: "Key: Value"
func (p *Printer) KeyValue(key string, value string) {
	styledKey := p.styles.Key.Render(key + ":")
	styledValue := p.styles.Value.Render(value)
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", styledKey, styledValue))
}

// Dim renders text in the muted style (used for secondary catalog lines).
func (p *Printer) Dim(format string, args ...any) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(fmt.Sprintf(format, args...))))
}

// writeJSON encodes data as JSON and writes it.
func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteJSON encodes any data as JSON and writes it.
// Use this for outputting structs or other types that aren't maps.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
