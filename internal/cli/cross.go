package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoval/wallcut/pkg/wall"
)

// crossCommand creates the cross command for computing the crossline column.
func (c *CLI) crossCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "cross [wall.json]",
		Short: "Compute the column where a line crosses the fewest bricks",
		Long: `Compute the column where a vertical line crosses the fewest bricks.

Seams between bricks are the only positions a line can pass without cutting
a brick, so the most frequently shared seam column wins; ties break to the
smallest column. The column is printed as a 0-based index into the bordered
wall string, where the left border is index 0. Pass "-" to read the wall
from stdin.

An uneven wall is normalized first, which adds random bricks; use --seed to
make that deterministic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCross(args[0], seed, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for normalization of uneven walls")

	return cmd
}

// runCross loads the wall and prints the minimum-crossing column.
func (c *CLI) runCross(input string, seed uint64, seeded bool) error {
	cfg := c.loadConfig()

	w, err := readWallArg(input)
	if err != nil {
		return err
	}

	column, err := wall.FindMinCrossing(w, normalizePacker(cfg, seed, seeded))
	if err != nil {
		return err
	}

	fmt.Println(column)
	return nil
}
