package wall

import (
	"math/rand/v2"
	"time"
)

// Packer appends randomly sized bricks to rows until they exactly fill a
// target width. All randomness flows through the injected source, so packing
// is deterministic under a fixed seed.
type Packer struct {
	rng *rand.Rand

	// MaxExtra caps the random widening drawn by Wall.Normalize for its
	// second fill pass.
	MaxExtra int
}

// NewPacker creates a packer using the given random source. A nil source
// falls back to a time-seeded PCG generator.
func NewPacker(rng *rand.Rand) *Packer {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
	return &Packer{rng: rng, MaxExtra: DefaultMaxExtraLength}
}

// Fill appends bricks to row until the row spans exactly interior cells,
// counting one separator per brick: it terminates with
// sum(bricks) + len(bricks) == interior + 1, which makes the printable row
// length interior + 2 (the two outer borders).
//
// Packing resumes from the row's current content, so a partially filled row
// is widened rather than restarted. A row that already meets or exceeds the
// target is left untouched.
//
// Per iteration, with remaining = interior - (sum + len) so far:
//   - an empty row whose draw lands in {interior-1, interior} becomes a
//     single brick spanning the whole interior;
//   - remaining <= 3 is closed with one final brick, since drawing on would
//     risk an unfillable single free cell;
//   - otherwise a uniform draw from [1, interior] is accepted only if it fits
//     and does not leave exactly one free cell (a brick needs its separator).
func (p *Packer) Fill(row *Row, interior int) {
	count := 0
	for _, b := range *row {
		count += b + 1
	}

	for count < interior {
		num := p.rng.IntN(interior) + 1
		// row consists of a single brick
		if num >= interior-1 && count == 0 {
			*row = append(*row, interior)
			break
		}
		if interior-count <= 3 {
			*row = append(*row, interior-count)
			break
		}
		if interior-count >= num && interior-count != num+1 {
			*row = append(*row, num)
			count += num + 1
		}
	}
}

// FillWall packs every row of w up to the printable length rowLength.
func (p *Packer) FillWall(w *Wall, rowLength int) {
	interior := rowLength - 2
	for i := range w.rows {
		p.Fill(&w.rows[i], interior)
	}
}

// Shuffle permutes the bricks of a row in place. A pure permutation: the
// row's printable length is unchanged.
func (p *Packer) Shuffle(row Row) {
	p.rng.Shuffle(len(row), func(i, j int) {
		row[i], row[j] = row[j], row[i]
	})
}

// extraLength draws the random widening for the second normalization pass,
// uniform in [3, MaxExtra].
func (p *Packer) extraLength() int {
	maxExtra := p.MaxExtra
	if maxExtra < 3 {
		maxExtra = 3
	}
	return p.rng.IntN(maxExtra-2) + 3
}
