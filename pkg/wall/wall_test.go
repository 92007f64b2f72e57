package wall

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/dkoval/wallcut/pkg/errors"
)

// testPacker returns a deterministic packer for tests.
func testPacker(seed uint64) *Packer {
	return NewPacker(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
}

func TestRowLength(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want int
	}{
		{"single brick", Row{5}, 7},
		{"two bricks", Row{1, 1}, 5},
		{"empty row", Row{}, 1},
		{"four bricks", Row{5, 5, 5, 5}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Length(); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNew_ValidRectangle(t *testing.T) {
	w, err := New([][]int{
		{5, 5, 5, 5},
		{3, 3, 3, 7, 3},
		{5, 9, 7},
		{3, 3, 3, 6, 4},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := range w.RowCount() {
		if got := w.RowLength(i); got != 25 {
			t.Errorf("RowLength(%d) = %d, want 25", i, got)
		}
	}
	if !w.IsValid() {
		t.Error("IsValid() = false, want true")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{2, 2}}
	w, err := New(rows)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rows[0][0] = 99
	if w.Rows()[0][0] != 2 {
		t.Error("New() aliases caller's slices, want a copy")
	}
}

func TestNew_RejectsNonPositiveBricks(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"zero brick", [][]int{{3, 0, 2}}},
		{"negative brick", [][]int{{3}, {-2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows)
			if !errors.Is(err, errors.ErrCodeInvalidBrick) {
				t.Errorf("New() error = %v, want code %v", err, errors.ErrCodeInvalidBrick)
			}
		})
	}
}

func TestNew_RejectsEmptyWall(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, errors.ErrCodeEmptyWall) {
		t.Errorf("New() error = %v, want code %v", err, errors.ErrCodeEmptyWall)
	}
}

func TestMaxRowLength(t *testing.T) {
	w, err := New([][]int{{2}, {1, 1}, {7}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := w.MaxRowLength()
	if err != nil {
		t.Fatalf("MaxRowLength() error = %v", err)
	}
	if got != 9 {
		t.Errorf("MaxRowLength() = %d, want 9", got)
	}
}

func TestIsValid_UnevenRows(t *testing.T) {
	w, err := New([][]int{{2}, {1, 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.IsValid() {
		t.Error("IsValid() = true, want false")
	}
}

func TestNormalize_ValidWallUntouched(t *testing.T) {
	w, err := New([][]int{{5, 5, 5, 5}, {5, 9, 7}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	before := snapshotRows(w)
	if err := w.Normalize(testPacker(1)); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !reflect.DeepEqual(snapshotRows(w), before) {
		t.Error("Normalize() changed a valid wall")
	}
}

func TestNormalize_MakesWallValid(t *testing.T) {
	w, err := New([][]int{{2}, {1, 1}, {12}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := w.Normalize(testPacker(42)); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !w.IsValid() {
		t.Error("IsValid() = false after Normalize(), want true")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	w, err := New([][]int{{2}, {1, 1}, {12}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := testPacker(42)
	if err := w.Normalize(p); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	after := snapshotRows(w)
	if err := w.Normalize(p); err != nil {
		t.Fatalf("second Normalize() error = %v", err)
	}
	if !reflect.DeepEqual(snapshotRows(w), after) {
		t.Error("second Normalize() changed an already valid wall")
	}
}

func TestNormalize_WidensWhenRowOneShortOfTarget(t *testing.T) {
	// Row [2] has length 4, one short of row [3] at 5. The first fill pass
	// cannot close a single missing cell, forcing the widening pass.
	w, err := New([][]int{{2}, {3}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := w.Normalize(testPacker(7)); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !w.IsValid() {
		t.Error("IsValid() = false after Normalize(), want true")
	}

	length, err := w.MaxRowLength()
	if err != nil {
		t.Fatalf("MaxRowLength() error = %v", err)
	}
	if length <= 5 {
		t.Errorf("MaxRowLength() = %d after widening pass, want > 5", length)
	}
}

func snapshotRows(w *Wall) [][]int {
	rows := make([][]int, w.RowCount())
	for i, r := range w.Rows() {
		rows[i] = append([]int(nil), r...)
	}
	return rows
}
