package wall

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dkoval/wallcut/pkg/errors"
)

func TestWallJSON_RoundTrip(t *testing.T) {
	w := mustNew(t, [][]int{{5, 5, 5, 5}, {5, 9, 7}})

	data, err := MarshalWall(w)
	if err != nil {
		t.Fatalf("MarshalWall() error = %v", err)
	}

	got, err := ReadWall(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadWall() error = %v", err)
	}
	if !reflect.DeepEqual(snapshotRows(got), snapshotRows(w)) {
		t.Errorf("round trip = %v, want %v", got.Rows(), w.Rows())
	}
}

func TestWriteWall_RoundTrip(t *testing.T) {
	w := mustNew(t, [][]int{{3, 3, 3, 7, 3}, {5, 9, 7}})

	var buf bytes.Buffer
	if err := WriteWall(w, &buf); err != nil {
		t.Fatalf("WriteWall() error = %v", err)
	}

	got, err := ReadWall(&buf)
	if err != nil {
		t.Fatalf("ReadWall() error = %v", err)
	}
	if !reflect.DeepEqual(snapshotRows(got), snapshotRows(w)) {
		t.Errorf("round trip = %v, want %v", got.Rows(), w.Rows())
	}
}

func TestWriteWallFile_RoundTrip(t *testing.T) {
	w := mustNew(t, [][]int{{5, 5, 5, 5}, {3, 3, 3, 6, 4}})
	path := filepath.Join(t.TempDir(), "wall.json")

	if err := WriteWallFile(w, path); err != nil {
		t.Fatalf("WriteWallFile() error = %v", err)
	}

	got, err := ReadWallFile(path)
	if err != nil {
		t.Fatalf("ReadWallFile() error = %v", err)
	}
	if !reflect.DeepEqual(snapshotRows(got), snapshotRows(w)) {
		t.Errorf("round trip = %v, want %v", got.Rows(), w.Rows())
	}
}

func TestReadWall_MalformedJSON(t *testing.T) {
	_, err := ReadWall(strings.NewReader(`[[5,5`))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadWall() error = %v, want code %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestReadWall_RejectsNonPositiveBricks(t *testing.T) {
	_, err := ReadWall(strings.NewReader(`[[5,0,5]]`))
	if !errors.Is(err, errors.ErrCodeInvalidBrick) {
		t.Errorf("ReadWall() error = %v, want code %v", err, errors.ErrCodeInvalidBrick)
	}
}
