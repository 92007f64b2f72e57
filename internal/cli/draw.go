package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/wallcut/pkg/render"
	"github.com/dkoval/wallcut/pkg/wall"
)

// drawCommand creates the draw command for rendering explicit wall data.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		cross  bool
		column int
		sign   string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "draw [wall.json]",
		Short: "Render a wall from a JSON brick matrix",
		Long: `Render a wall from a JSON brick matrix.

The input is a JSON array of rows, each row an array of positive brick
lengths, e.g. [[5,5,5,5],[3,3,3,7,3],[5,9,7],[3,3,3,6,4]]. Pass "-" to read
from stdin.

With --cross the minimum-crossing column is computed and marked; --column
marks an explicit column instead. An uneven wall is normalized (missing
bricks are added) before the crossline search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("column") && cross {
				return fmt.Errorf("--cross and --column are mutually exclusive")
			}
			return c.runDraw(args[0], cross, column, sign, seed, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().BoolVarP(&cross, "cross", "x", false, "mark the minimum-crossing column")
	cmd.Flags().IntVar(&column, "column", 0, "mark an explicit column")
	cmd.Flags().StringVar(&sign, "sign", "", "crossing sign, exactly one character")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for normalization of uneven walls")

	return cmd
}

// runDraw loads the wall and renders it, with an optional crossline.
func (c *CLI) runDraw(input string, cross bool, column int, sign string, seed uint64, seeded bool) error {
	cfg := c.loadConfig()

	w, err := readWallArg(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("Loaded wall", "rows", w.RowCount(), "valid", w.IsValid())

	if sign == "" {
		sign = cfg.CrossingSign
	}
	r, err := render.New(sign)
	if err != nil {
		return err
	}

	if cross {
		packer := normalizePacker(cfg, seed, seeded)
		column, err = wall.FindMinCrossing(w, packer)
		if err != nil {
			return err
		}
		c.Logger.Info("Minimum-crossing column", "column", column)
	}

	if column > 0 {
		return r.RenderCrossline(os.Stdout, w, column)
	}
	return r.Render(os.Stdout, w)
}

// readWallArg reads the wall from a file path or, for "-", from stdin.
func readWallArg(input string) (*wall.Wall, error) {
	if input == "-" {
		return wall.ReadWall(os.Stdin)
	}
	return wall.ReadWallFile(input)
}

// normalizePacker builds the packer used when an uneven wall needs
// normalization before the crossline search.
func normalizePacker(cfg Config, seed uint64, seeded bool) *wall.Packer {
	var p *wall.Packer
	if seeded {
		p = wall.NewPacker(newRand(seed))
	} else {
		p = wall.NewPacker(nil)
	}
	if cfg.MaxExtraLength > 0 {
		p.MaxExtra = cfg.MaxExtraLength
	}
	return p
}
