package csvtape

import (
	"io"
	"testing"
)

func TestCursorNextAndEOF(t *testing.T) {
	tape, err := NewTape(ByteRegion("a,b,c\nx,y,z\n1,2,3\n"))
	if err != nil {
		t.Fatalf("NewTape: %v", err)
	}
	c := tape.Cursor()

	rec, err := c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if string(rec[0]) != "x" || string(rec[1]) != "y" || string(rec[2]) != "z" {
		t.Fatalf("Next() = %q, want x,y,z", rec)
	}

	rec, err = c.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if string(rec[0]) != "1" {
		t.Fatalf("Next() = %q, want row starting with 1", rec)
	}

	if _, err := c.Next(); err != io.EOF {
		t.Fatalf("Next() at end: got %v, want io.EOF", err)
	}
}

func TestCursorAllCopiesFields(t *testing.T) {
	tape, err := NewTape(ByteRegion("a,b\n1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("NewTape: %v", err)
	}
	all, err := tape.Cursor().All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("All() returned %d records, want 2", len(all))
	}
	if string(all[0][0]) != "1" || string(all[1][0]) != "3" {
		t.Fatalf("All() = %v", all)
	}
}
