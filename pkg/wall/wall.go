// Package wall implements the brick wall model: a mutable matrix of positive
// brick lengths per row, randomized row packing under exact-width constraints,
// rectangularization of uneven rows, and the minimum-crossing seam search.
//
// A wall renders as | brick | brick | ... |, so the printable length of a row
// is sum(bricks) + len(bricks) + 1: each brick contributes its width plus one
// trailing separator, plus one leading border character.
//
// A Wall is owned and mutated by exactly one caller at a time. It is not safe
// for concurrent use without external synchronization.
package wall

import (
	"github.com/dkoval/wallcut/pkg/errors"
)

// Default caps for random generation and normalization.
const (
	// DefaultMaxRows caps the randomly drawn row count in Generate.
	DefaultMaxRows = 10

	// DefaultMaxRowLength caps the randomly drawn row length in Generate.
	DefaultMaxRowLength = 50

	// DefaultMaxExtraLength caps the random widening applied by the second
	// normalization pass.
	DefaultMaxExtraLength = 10
)

// MinRowLength is the shortest usable row: two border characters plus one
// brick of length one.
const MinRowLength = 3

// Row is an ordered sequence of brick lengths, insertion order being
// left-to-right placement. Every element must be greater than zero.
type Row []int

// Length returns the printable length of the row including all borders:
// sum(bricks) + len(bricks) + 1.
func (r Row) Length() int {
	total := 1
	for _, b := range r {
		total += b + 1
	}
	return total
}

// Wall is an ordered sequence of rows. The zero value is not usable - use New
// or Generator.Generate to create a valid instance.
type Wall struct {
	rows []Row
}

// New constructs a wall from explicit row data. Every brick length must be
// positive (ErrCodeInvalidBrick otherwise) and the wall must contain at least
// one row (ErrCodeEmptyWall otherwise). The input is copied, so later
// mutations of rows do not alias the caller's slices.
func New(rows [][]int) (*Wall, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyWall, "wall must contain at least one row")
	}
	w := &Wall{rows: make([]Row, len(rows))}
	for i, r := range rows {
		for _, b := range r {
			if b <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidBrick,
					"brick length must be positive, got %d in row %d", b, i)
			}
		}
		w.rows[i] = append(Row(nil), r...)
	}
	return w, nil
}

// newEmpty creates a wall of n empty rows for the generator to fill.
// The result is transiently invalid until every row is packed.
func newEmpty(n int) *Wall {
	return &Wall{rows: make([]Row, n)}
}

// RowCount returns the number of rows in the wall.
func (w *Wall) RowCount() int { return len(w.rows) }

// Rows returns the wall's rows. The returned slice is a read-only view into
// the wall's own storage - callers must not modify it.
func (w *Wall) Rows() []Row { return w.rows }

// RowLength returns the printable length of row i.
func (w *Wall) RowLength(i int) int { return w.rows[i].Length() }

// MaxRowLength returns the printable length of the longest row.
// Returns ErrCodeEmptyWall if the wall has no rows.
func (w *Wall) MaxRowLength() (int, error) {
	if len(w.rows) == 0 {
		return 0, errors.New(errors.ErrCodeEmptyWall, "wall has no rows")
	}
	longest := 0
	for _, r := range w.rows {
		if l := r.Length(); l > longest {
			longest = l
		}
	}
	return longest, nil
}

// IsValid reports whether the wall is rectangular: every row shares the same
// printable length.
func (w *Wall) IsValid() bool {
	if len(w.rows) == 0 {
		return false
	}
	first := w.rows[0].Length()
	for _, r := range w.rows[1:] {
		if r.Length() != first {
			return false
		}
	}
	return true
}

// Normalize adds bricks until the wall is rectangular, delegating the packing
// to p. A valid wall is left untouched.
//
// The strategy is a bounded two-pass best effort, not a solver: first every
// row is packed to the current maximum length; if unequal rows remain (a row
// can be left within two cells of the target, which no brick can close), the
// target is widened by a random extra length in [3, p.MaxExtra] and the fill
// pass runs once more. Returns ErrCodeEmptyWall for a wall with no rows.
func (w *Wall) Normalize(p *Packer) error {
	longest, err := w.MaxRowLength()
	if err != nil {
		return err
	}
	if w.IsValid() {
		return nil
	}

	p.FillWall(w, longest)

	if !w.IsValid() {
		extra := p.extraLength()
		p.FillWall(w, longest+extra)
	}
	return nil
}
