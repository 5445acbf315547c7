package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/errors"
	"github.com/tokendelve/excavator/pkg/grid"
	"github.com/tokendelve/excavator/pkg/pipeline"
)

// exploreCommand creates the explore command: an interactive pan-view over a
// dungeon map.
func (c *CLI) exploreCommand() *cobra.Command {
	var seed uint64
	var noScatter, noCache bool

	cmd := &cobra.Command{
		Use:   "explore <token>",
		Short: "Pan around a dungeon map in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0], seed, noScatter, noCache)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", c.Config.Seed, "scatter seed for reproducible output")
	cmd.Flags().BoolVar(&noScatter, "no-scatter", false, "skip the scatter stage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, t string, seed uint64, noScatter, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	d, err := runner.Generate(ctx, pipeline.Options{
		Token:     t,
		Seed:      seed,
		NoScatter: noScatter,
		Logger:    c.Logger,
	})
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	model := newExploreModel(d)
	_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// Map cell styles.
var (
	mapGroundStyle = lipgloss.NewStyle().Foreground(colorDim)
	mapCellStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	mapCenterStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// exploreModel is the bubbletea model for the map pan view.
type exploreModel struct {
	dungeon *dungeon.Dungeon
	rows    []string // full map, top row first
	centers map[dungeon.Point]bool
	extent  dungeon.Bounds

	offsetX int // leftmost visible column (map-relative)
	offsetY int // topmost visible row (map-relative)
	width   int
	height  int
}

// newExploreModel builds the model with the full map pre-rendered.
func newExploreModel(d *dungeon.Dungeon) exploreModel {
	extent := grid.Extent(d.Excavated)
	g := grid.New(d.Excavated, extent)

	centers := make(map[dungeon.Point]bool, len(d.Centers))
	for _, c := range d.Centers {
		centers[c] = true
	}

	return exploreModel{
		dungeon: d,
		rows:    g.Rows(),
		centers: centers,
		extent:  extent,
		width:   80,
		height:  24,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := 1
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "pgup":
			m.offsetY -= m.viewHeight()
		case "pgdown":
			m.offsetY += m.viewHeight()
		case "up", "k":
			m.offsetY -= step
		case "down", "j":
			m.offsetY += step
		case "left", "h":
			m.offsetX -= step
		case "right", "l":
			m.offsetX += step
		case "g":
			m.offsetX, m.offsetY = 0, 0
		}
		m.clampOffsets()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffsets()
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	d := m.dungeon
	b.WriteString(StyleTitle.Render(d.Token))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · level %d · %d rooms · %d cells",
		d.Type, d.Level, d.RoomCount, len(d.Excavated))))
	b.WriteString("\n\n")

	viewH := m.viewHeight()
	viewW := m.width
	if viewW <= 0 {
		viewW = 80
	}

	for row := m.offsetY; row < m.offsetY+viewH; row++ {
		if row < 0 || row >= len(m.rows) {
			b.WriteString("\n")
			continue
		}
		line := m.rows[row]
		for col := m.offsetX; col < m.offsetX+viewW; col++ {
			if col < 0 || col >= len(line) {
				break
			}
			b.WriteString(m.styleCell(row, col, line[col]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ pan  g origin  q quit"))
	return b.String()
}

// styleCell colors one map character, highlighting room centers.
func (m exploreModel) styleCell(row, col int, ch byte) string {
	// Rows run top-down, so row 0 is the max Y.
	p := dungeon.Point{X: m.extent.MinX + col, Y: m.extent.MaxY - row}
	switch {
	case m.centers[p]:
		return mapCenterStyle.Render("◆")
	case ch == grid.SymbolExcavated:
		return mapCellStyle.Render(string(ch))
	default:
		return mapGroundStyle.Render(string(ch))
	}
}

// viewHeight is the number of map rows visible under the header and footer.
func (m exploreModel) viewHeight() int {
	h := m.height - 5
	if h < 3 {
		h = 3
	}
	return h
}

// clampOffsets keeps the viewport from panning past the map edges.
func (m *exploreModel) clampOffsets() {
	maxY := len(m.rows) - 1
	if m.offsetY > maxY {
		m.offsetY = maxY
	}
	if m.offsetY < 0 {
		m.offsetY = 0
	}

	maxX := 0
	for _, row := range m.rows {
		if len(row) > maxX {
			maxX = len(row)
		}
	}
	if m.offsetX > maxX-1 {
		m.offsetX = maxX - 1
	}
	if m.offsetX < 0 {
		m.offsetX = 0
	}
}
