// Package render turns a wall model into fixed-width text art.
//
// A wall renders as one bordered line per row between two +---+ border
// lines. An optional crossline marks a single column with the renderer's
// crossing sign in the borders and across every row:
//
//	+--------x--------+
//	|    |   x    |   |
//	|  |     x  |     |
//	+--------x--------+
//
// Output is written to an injected io.Writer; the renderer itself performs
// no other I/O.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dkoval/wallcut/pkg/errors"
	"github.com/dkoval/wallcut/pkg/wall"
)

// DefaultSign is the crossing sign used when none is configured.
const DefaultSign = "x"

// Renderer draws walls as text. The zero value is not usable - use New.
type Renderer struct {
	sign string
}

// New creates a renderer with the given crossing sign. The sign must be
// exactly one character - one rune, so multibyte signs like "✗" work - and
// an empty string selects DefaultSign.
func New(sign string) (*Renderer, error) {
	if sign == "" {
		sign = DefaultSign
	}
	if utf8.RuneCountInString(sign) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidSign,
			"crossing sign must be exactly 1 character, got %q", sign)
	}
	return &Renderer{sign: sign}, nil
}

// Sign returns the configured crossing sign.
func (r *Renderer) Sign() string { return r.sign }

// Border returns the horizontal border line for w: dashes with a + at each
// end. A cross column greater than zero is overwritten with the crossing
// sign.
func (r *Renderer) Border(w *wall.Wall, cross int) (string, error) {
	width, err := w.MaxRowLength()
	if err != nil {
		return "", err
	}

	line := "+" + strings.Repeat("-", max(width-2, 0)) + "+"
	if cross > 0 && cross < len(line) {
		// The border is pure ASCII, so the cell index is the byte index
		// even when the sign itself is multibyte.
		line = line[:cross] + r.sign + line[cross+1:]
	}
	return line, nil
}

// Render writes the bordered wall to out, one line per row plus the two
// border lines.
func (r *Renderer) Render(out io.Writer, w *wall.Wall) error {
	border, err := r.Border(w, 0)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, border); err != nil {
		return err
	}
	for _, row := range w.Rows() {
		var b strings.Builder
		b.WriteByte('|')
		for _, brick := range row {
			b.WriteString(strings.Repeat(" ", brick))
			b.WriteByte('|')
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out, border)
	return err
}

// RenderCrossline writes the bordered wall with a vertical line drawn at
// column, marking the crossing sign in both border lines and at every
// interior cell the line passes through. Brick separators on the crossing
// column stay separators.
//
// The line may not cross the wall at its outer border: column must satisfy
// 0 < column < MaxRowLength()-1 or ErrCodeEdgeCrossing is returned.
func (r *Renderer) RenderCrossline(out io.Writer, w *wall.Wall, column int) error {
	width, err := w.MaxRowLength()
	if err != nil {
		return err
	}
	if column <= 0 || column >= width-1 {
		return errors.New(errors.ErrCodeEdgeCrossing,
			"crossline at column %d would cross the wall edge (valid range 1..%d)", column, width-2)
	}

	border, err := r.Border(w, column)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, border); err != nil {
		return err
	}
	for _, row := range w.Rows() {
		var b strings.Builder
		b.WriteByte('|')
		pos := 1
		for _, brick := range row {
			for range brick {
				if pos == column {
					b.WriteString(r.sign)
				} else {
					b.WriteByte(' ')
				}
				pos++
			}
			b.WriteByte('|')
			pos++
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out, border)
	return err
}
