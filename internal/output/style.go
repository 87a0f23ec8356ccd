package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles renders messages for a specific output stream.
type Styles struct {
	errorStyle lipgloss.Style
}

// NewStyles builds styles bound to w. Colors are dropped unless w is a terminal.
func NewStyles(w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		errorStyle: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Error renders an error message
func (s *Styles) Error(text string) string {
	return s.errorStyle.Render("error: " + text)
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
