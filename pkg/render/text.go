package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/grid"
)

// TextOption configures text rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	styled bool
}

// WithStyledText renders excavated cells with terminal colors instead of
// plain characters. Only useful when writing directly to a terminal.
func WithStyledText() TextOption {
	return func(r *textRenderer) { r.styled = true }
}

var (
	styleGround    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleExcavated = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// Text renders the dungeon as a character map over the tight extent of the
// excavated set, top row first. The trailing newline is included so the
// output can be written as-is.
func Text(d *dungeon.Dungeon, opts ...TextOption) []byte {
	r := textRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	g := grid.New(d.Excavated, grid.Extent(d.Excavated))

	var sb strings.Builder
	for _, row := range g.Rows() {
		if r.styled {
			for _, c := range row {
				if c == grid.SymbolExcavated {
					sb.WriteString(styleExcavated.Render(string(c)))
				} else {
					sb.WriteString(styleGround.Render(string(c)))
				}
			}
		} else {
			sb.WriteString(row)
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
