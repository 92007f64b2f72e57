package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dkoval/wallcut/pkg/render"
	"github.com/dkoval/wallcut/pkg/wall"
)

// watchCommand creates the watch command for the interactive viewer.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		rows  int
		width int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch randomly generated walls interactively",
		Long: `Watch randomly generated walls in an interactive terminal viewer.

Keys:
  r  regenerate the wall
  x  toggle the minimum-crossing line
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(rows, width, seed, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "number of rows (default: random)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "row length including borders (default: random)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible walls")

	return cmd
}

// runWatch builds the initial wall and hands control to bubbletea.
func (c *CLI) runWatch(rows, width int, seed uint64, seeded bool) error {
	cfg := c.loadConfig()
	if !seeded {
		seed = uint64(time.Now().UnixNano())
	}

	opts := cfg.generatorOptions()
	opts.Rand = newRand(seed)
	gen := wall.NewGenerator(opts)

	r, err := render.New(cfg.CrossingSign)
	if err != nil {
		return err
	}

	m := newWallViewModel(gen, r, rows, width)
	m = m.regenerate()

	_, err = tea.NewProgram(m).Run()
	return err
}

// =============================================================================
// WallViewModel - Interactive wall viewer
// =============================================================================

// WallViewModel is the bubbletea model for the interactive wall viewer.
type WallViewModel struct {
	gen      *wall.Generator
	renderer *render.Renderer

	rows  int
	width int

	wall      *wall.Wall
	column    int
	showCross bool
	err       error
}

// newWallViewModel creates a viewer without an initial wall.
func newWallViewModel(gen *wall.Generator, r *render.Renderer, rows, width int) WallViewModel {
	return WallViewModel{gen: gen, renderer: r, rows: rows, width: width}
}

// regenerate replaces the current wall and recomputes its crossline.
func (m WallViewModel) regenerate() WallViewModel {
	w, err := m.gen.Generate(m.rows, m.width)
	if err != nil {
		m.err = err
		return m
	}
	column, err := wall.FindMinCrossing(w, m.gen.Packer())
	if err != nil {
		m.err = err
		return m
	}
	m.wall = w
	m.column = column
	m.err = nil
	return m
}

func (m WallViewModel) Init() tea.Cmd {
	return nil
}

func (m WallViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m.regenerate(), nil
		case "x":
			m.showCross = !m.showCross
			return m, nil
		}
	}
	return m, nil
}

func (m WallViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Brick Wall"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r regenerate  x toggle crossline  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	var art strings.Builder
	var err error
	if m.showCross {
		err = m.renderer.RenderCrossline(&art, m.wall, m.column)
	} else {
		err = m.renderer.Render(&art, m.wall)
	}
	if err != nil {
		b.WriteString(StyleWarning.Render(err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(art.String())

	b.WriteString("\n")
	status := fmt.Sprintf("%d rows", m.wall.RowCount())
	if m.showCross {
		status += fmt.Sprintf(" · crossline at column %d", m.column)
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")

	return b.String()
}
