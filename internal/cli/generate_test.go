package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/dkoval/wallcut/pkg/wall"
)

func TestRunGenerate_JSONOutputFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	path := filepath.Join(t.TempDir(), "wall.json")

	err := c.runGenerate(generateParams{
		rows:    3,
		width:   12,
		seed:    7,
		seeded:  true,
		jsonOut: true,
		output:  path,
	})
	if err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	// The file must decode back into the same rectangular wall.
	w, err := wall.ReadWallFile(path)
	if err != nil {
		t.Fatalf("ReadWallFile() error = %v", err)
	}
	if w.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", w.RowCount())
	}
	length, err := w.MaxRowLength()
	if err != nil {
		t.Fatalf("MaxRowLength() error = %v", err)
	}
	if length != 12 {
		t.Errorf("MaxRowLength() = %d, want 12", length)
	}
	if !w.IsValid() {
		t.Errorf("IsValid() = false, want true for %v", w.Rows())
	}
}

func TestGenerateCommand_JSONAndCrossConflict(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)

	cmd := c.generateCommand()
	cmd.SetArgs([]string{"--json", "--cross"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want conflict error for --json with --cross")
	}
}

func TestOpenOutput_Stdout(t *testing.T) {
	out, closeOut, err := openOutput("")
	if err != nil {
		t.Fatalf("openOutput(\"\") error = %v", err)
	}
	if out == nil {
		t.Fatal("openOutput(\"\") out = nil")
	}
	if err := closeOut(); err != nil {
		t.Errorf("closeOut() error = %v, want nil for stdout", err)
	}
}

func TestOpenOutput_ReportsCloseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.txt")
	f, closeOut, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput() error = %v", err)
	}

	// Close underneath so the returned closer hits a real Close failure.
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := closeOut(); err == nil {
		t.Error("closeOut() error = nil, want error when Close fails")
	}
}
