package wall

import (
	"math/rand/v2"

	"github.com/dkoval/wallcut/pkg/errors"
)

// Options configures random wall generation. The zero value of any field
// falls back to the package defaults.
type Options struct {
	// MaxRows caps the randomly drawn row count when Generate is called
	// without an explicit one.
	MaxRows int

	// MaxRowLength caps the randomly drawn row length when Generate is
	// called without an explicit one.
	MaxRowLength int

	// MaxExtraLength caps the widening pass used during normalization.
	MaxExtraLength int

	// Rand is the random source for row counts, lengths, brick packing and
	// shuffling. Nil means a time-seeded source.
	Rand *rand.Rand
}

// Generator builds fresh random walls. Walls produced by the same generator
// share one random source, so a seeded generator is fully deterministic.
type Generator struct {
	packer       *Packer
	rng          *rand.Rand
	maxRows      int
	maxRowLength int
}

// NewGenerator creates a generator from opts. A nil opts uses all defaults.
func NewGenerator(opts *Options) *Generator {
	if opts == nil {
		opts = &Options{}
	}
	p := NewPacker(opts.Rand)
	if opts.MaxExtraLength > 0 {
		p.MaxExtra = opts.MaxExtraLength
	}
	g := &Generator{
		packer:       p,
		rng:          p.rng,
		maxRows:      opts.MaxRows,
		maxRowLength: opts.MaxRowLength,
	}
	if g.maxRows <= 0 {
		g.maxRows = DefaultMaxRows
	}
	// Random row lengths are drawn from [10, maxRowLength], so the cap
	// must not undercut the lower bound.
	if g.maxRowLength < 10 {
		g.maxRowLength = DefaultMaxRowLength
	}
	return g
}

// Packer returns the generator's packer, sharing its random source. Useful
// for follow-up operations such as normalizing an edited wall.
func (g *Generator) Packer() *Packer { return g.packer }

// Generate builds a valid wall of rows randomly packed rows of printable
// length rowLength each.
//
// A zero rows draws the row count uniformly from [1, MaxRows]; a zero
// rowLength draws the length uniformly from [10, MaxRowLength]. Explicit
// values are validated: rows must be at least 1 (ErrCodeInvalidRowCount) and
// rowLength at least 3 (ErrCodeRowTooShort), the shortest row that holds a
// border pair plus one brick.
//
// Every row is packed to the same target and then shuffled in place, so the
// result is rectangular by construction.
func (g *Generator) Generate(rows, rowLength int) (*Wall, error) {
	if rows == 0 {
		rows = g.rng.IntN(g.maxRows) + 1
	}
	if rows < 1 {
		return nil, errors.New(errors.ErrCodeInvalidRowCount,
			"wall must consist of at least one row, got %d", rows)
	}
	if rowLength == 0 {
		rowLength = g.rng.IntN(g.maxRowLength-10+1) + 10
	}
	if rowLength < MinRowLength {
		return nil, errors.New(errors.ErrCodeRowTooShort,
			"row length must be at least %d to hold a brick, got %d", MinRowLength, rowLength)
	}

	w := newEmpty(rows)
	g.packer.FillWall(w, rowLength)
	for _, row := range w.rows {
		g.packer.Shuffle(row)
	}
	return w, nil
}
