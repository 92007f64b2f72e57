package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoval/wallcut/pkg/render"
	"github.com/dkoval/wallcut/pkg/wall"
)

// newRand creates the seeded random source shared by all randomized wall
// operations of one command invocation.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// generateCommand creates the generate command for building random walls.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		rows    int
		width   int
		seed    uint64
		cross   bool
		sign    string
		output  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and render a random brick wall",
		Long: `Generate and render a random brick wall.

Each row is packed with randomly sized bricks until it exactly fills the
target width, then the bricks are shuffled. Omitted --rows and --width are
drawn randomly within the configured caps.

With --cross, the column crossing the fewest bricks is computed and marked
in the output. With --json the wall is emitted as a JSON brick matrix
instead of text art, ready to feed back into draw or cross. Pass --seed to
reproduce a wall exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut && cross {
				return fmt.Errorf("--json and --cross are mutually exclusive")
			}
			return c.runGenerate(generateParams{
				rows:    rows,
				width:   width,
				seed:    seed,
				cross:   cross,
				sign:    sign,
				output:  output,
				jsonOut: jsonOut,
				seeded:  cmd.Flags().Changed("seed"),
			})
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "number of rows (default: random)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "row length including borders (default: random)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible walls")
	cmd.Flags().BoolVarP(&cross, "cross", "x", false, "mark the minimum-crossing column")
	cmd.Flags().StringVar(&sign, "sign", "", "crossing sign, exactly one character")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the wall to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the wall as a JSON brick matrix")

	return cmd
}

type generateParams struct {
	rows    int
	width   int
	seed    uint64
	cross   bool
	sign    string
	output  string
	jsonOut bool
	seeded  bool
}

// runGenerate builds the wall and renders it, optionally with a crossline.
func (c *CLI) runGenerate(p generateParams) (retErr error) {
	cfg := c.loadConfig()

	seed := p.seed
	if !p.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	c.Logger.Debug("Generating wall", "rows", p.rows, "width", p.width, "seed", seed)

	opts := cfg.generatorOptions()
	opts.Rand = newRand(seed)
	gen := wall.NewGenerator(opts)

	prog := newProgress(c.Logger)
	w, err := gen.Generate(p.rows, p.width)
	if err != nil {
		return err
	}
	length, err := w.MaxRowLength()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d rows of length %d", w.RowCount(), length))

	if !p.seeded {
		c.Logger.Info("Reproduce with", "seed", seed)
	}

	if p.jsonOut {
		if p.output != "" {
			if err := wall.WriteWallFile(w, p.output); err != nil {
				return err
			}
			printSuccess("Wall written")
			printFile(p.output)
			return nil
		}
		return wall.WriteWall(w, os.Stdout)
	}

	if p.sign == "" {
		p.sign = cfg.CrossingSign
	}
	r, err := render.New(p.sign)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(p.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	if p.cross {
		column, err := wall.FindMinCrossing(w, gen.Packer())
		if err != nil {
			return err
		}
		c.Logger.Info("Minimum-crossing column", "column", column)
		if err := r.RenderCrossline(out, w, column); err != nil {
			return err
		}
	} else if err := r.Render(out, w); err != nil {
		return err
	}

	if p.output != "" {
		printSuccess("Wall written")
		printFile(p.output)
	}
	return nil
}

// openOutput resolves the render target: stdout for an empty path, otherwise
// a freshly created file. The returned closer is a no-op for stdout; for
// files it reports the Close error so flush failures are not lost.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		return nil
	}, nil
}
