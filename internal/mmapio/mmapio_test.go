package mmapio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"

	"github.com/wyvernio/csvtape"
)

const minimalLF = "a,b,c\nx,y,z\n1,2,3\n"

func TestOpenPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.csv")
	if err := os.WriteFile(path, []byte(minimalLF), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	region, closer, err := Open(path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer()

	tape, err := csvtape.NewTape(region)
	if err != nil {
		t.Fatalf("NewTape: %v", err)
	}
	assertMinimalLFTape(t, tape)
}

func TestOpenLZ4File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.csv.lz4")

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write([]byte(minimalLF)); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	if err := os.WriteFile(path, compressed.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	region, closer, err := Open(path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer()

	tape, err := csvtape.NewTape(region)
	if err != nil {
		t.Fatalf("NewTape: %v", err)
	}
	assertMinimalLFTape(t, tape)
}

func assertMinimalLFTape(t *testing.T, tape *csvtape.Tape) {
	t.Helper()
	if got, want := tape.RecordCount(), 2; got != want {
		t.Errorf("RecordCount() = %d, want %d", got, want)
	}
	if got, want := tape.Stride(), 3; got != want {
		t.Errorf("Stride() = %d, want %d", got, want)
	}
	field, ok := tape.Field(0, 1)
	if !ok || string(field) != "y" {
		t.Errorf("Field(0,1) = %q, %v, want %q, true", field, ok, "y")
	}
	field, ok = tape.Field(1, 2)
	if !ok || string(field) != "3" {
		t.Errorf("Field(1,2) = %q, %v, want %q, true", field, ok, "3")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	region, closer, err := Open(path, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closer()

	if region.Len() != 0 {
		t.Errorf("Len() = %d, want 0", region.Len())
	}
}
