package wall

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dkoval/wallcut/pkg/errors"
)

// =============================================================================
// Wall Serialization API
// =============================================================================

// MarshalWall converts a wall to JSON bytes: a matrix of brick lengths,
// one inner array per row.
func MarshalWall(w *Wall) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeWallTo(w, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWallFile writes a wall to a JSON file.
// The file is created with 0644 permissions.
func WriteWallFile(w *Wall, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeWallTo(w, f)
}

// WriteWall writes a wall as JSON to an io.Writer.
// Use MarshalWall for in-memory serialization or WriteWallFile for files.
func WriteWall(w *Wall, out io.Writer) error {
	return writeWallTo(w, out)
}

// ReadWallFile reads a JSON file and returns the decoded wall.
// Returns validation errors for malformed data or non-positive bricks.
func ReadWallFile(path string) (*Wall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readWallFrom(f)
}

// ReadWall decodes a JSON brick matrix from an io.Reader into a wall.
// Use ReadWallFile for files or pass bytes.NewReader for in-memory data.
func ReadWall(r io.Reader) (*Wall, error) {
	return readWallFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeWallTo(w *Wall, out io.Writer) error {
	rows := make([][]int, len(w.rows))
	for i, r := range w.rows {
		rows[i] = []int(r)
	}
	enc := json.NewEncoder(out)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readWallFrom(r io.Reader) (*Wall, error) {
	var rows [][]int
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode wall")
	}
	return New(rows)
}
