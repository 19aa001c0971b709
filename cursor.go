package csvtape

import "io"

// Cursor is a sequential, allocation-light iterator over a Tape's records,
// in the same spirit as a bufio.Scanner: each call to Next reuses its
// returned slice's backing array, so callers that need to retain a record
// past the following call must copy it themselves.
type Cursor struct {
	tape   *Tape
	pos    int
	fields [][]byte
}

// Cursor returns a new Cursor positioned before the first record.
func (t *Tape) Cursor() *Cursor {
	return &Cursor{tape: t, fields: make([][]byte, t.FieldCount())}
}

// Next returns the fields of the next record, or io.EOF once the tape is
// exhausted. The returned slice is reused on the following call.
func (c *Cursor) Next() ([][]byte, error) {
	if c.pos >= c.tape.recordCount {
		return nil, io.EOF
	}
	for j := range c.fields {
		f, ok := c.tape.Field(c.pos, j)
		if !ok {
			return nil, ErrInvalidState
		}
		c.fields[j] = f
	}
	c.pos++
	return c.fields, nil
}

// All drains the cursor, copying each record's fields so the result remains
// valid independent of further cursor use.
func (c *Cursor) All() ([][][]byte, error) {
	out := make([][][]byte, 0, c.tape.recordCount-c.pos)
	for {
		rec, err := c.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		cp := make([][]byte, len(rec))
		copy(cp, rec)
		out = append(out, cp)
	}
}
