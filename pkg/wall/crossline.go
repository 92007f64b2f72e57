package wall

import (
	"maps"
	"slices"

	"github.com/dkoval/wallcut/pkg/errors"
)

// FindMinCrossing returns the column where a vertical line crosses the
// fewest bricks, as a 0-based index into the bordered wall string (the left
// border is index 0, the first interior cell index 1). Seams (the separator
// between two adjacent bricks) are the only positions where a cut avoids
// slicing a brick, so the most frequently shared seam column wins.
//
// An invalid wall is normalized first, mutating w. Ties break to the smallest
// column index, which keeps the search deterministic. If every row consists
// of a single brick there are no interior seams at all; the leftmost interior
// column 1 is returned as the defined fallback.
func FindMinCrossing(w *Wall, p *Packer) (int, error) {
	if len(w.rows) == 0 {
		return 0, errors.New(errors.ErrCodeEmptyWall, "wall has no rows")
	}
	if !w.IsValid() {
		if err := w.Normalize(p); err != nil {
			return 0, err
		}
	}

	// Frequency of seam columns across rows. The last brick of a row ends
	// at the outer border, not a seam, so it is skipped.
	seams := make(map[int]int)
	for _, row := range w.rows {
		count := 0
		for _, brick := range row[:max(len(row)-1, 0)] {
			count += brick + 1
			seams[count]++
		}
	}

	if len(seams) == 0 {
		return 1, nil
	}

	best, bestHits := 0, 0
	for _, col := range slices.Sorted(maps.Keys(seams)) {
		if seams[col] > bestHits {
			best, bestHits = col, seams[col]
		}
	}
	return best, nil
}
