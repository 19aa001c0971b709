// Package snapshot serializes a Tape's derived metadata and structural
// index to an LZ4-compressed stream for offline inspection and golden-file
// tests — the structured successor to an ad hoc debug print of the scan's
// output.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/wyvernio/csvtape"
)

const (
	magic   uint32 = 0x43535654 // "CSVT"
	version uint32 = 1
)

// Snapshot is the decoded form of a serialized Tape: the field names, line
// ending, stride, record count, and structural index, without the underlying
// region bytes. The header's DataStart offset is not stored.
type Snapshot struct {
	FieldNames []string
	LineEnding csvtape.LineEnding
	Stride     int
	RecordCnt  int
	Index      csvtape.StructuralIndex
}

// Write serializes tape's header metadata, stride, record count, and full
// structural index to w, LZ4-compressing the stream as it goes.
func Write(w io.Writer, tape *csvtape.Tape) error {
	zw := lz4.NewWriter(w)
	defer zw.Close()

	if err := binary.Write(zw, binary.LittleEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(zw, binary.LittleEndian, version); err != nil {
		return err
	}

	header := tape.Header()
	if err := binary.Write(zw, binary.LittleEndian, uint32(len(header.FieldNames))); err != nil {
		return err
	}
	for _, name := range header.FieldNames {
		b := []byte(name)
		if err := binary.Write(zw, binary.LittleEndian, uint32(len(b))); err != nil {
			return err
		}
		if _, err := zw.Write(b); err != nil {
			return err
		}
	}

	if err := binary.Write(zw, binary.LittleEndian, uint32(header.LineEnding)); err != nil {
		return err
	}
	if err := binary.Write(zw, binary.LittleEndian, uint32(tape.Stride())); err != nil {
		return err
	}
	if err := binary.Write(zw, binary.LittleEndian, uint32(tape.RecordCount())); err != nil {
		return err
	}

	idx := tape.Index()
	if err := binary.Write(zw, binary.LittleEndian, uint32(len(idx))); err != nil {
		return err
	}
	for _, v := range idx {
		if err := binary.Write(zw, binary.LittleEndian, uint32(v)); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Read reverses Write, reconstructing a Snapshot from an LZ4-compressed
// stream.
func Read(r io.Reader) (*Snapshot, error) {
	zr := lz4.NewReader(r)

	var m, v uint32
	if err := binary.Read(zr, binary.LittleEndian, &m); err != nil {
		return nil, err
	}
	if m != magic {
		return nil, fmt.Errorf("snapshot: bad magic %#x", m)
	}
	if err := binary.Read(zr, binary.LittleEndian, &v); err != nil {
		return nil, err
	}
	if v != version {
		return nil, fmt.Errorf("snapshot: unsupported version %d", v)
	}

	var fieldCount uint32
	if err := binary.Read(zr, binary.LittleEndian, &fieldCount); err != nil {
		return nil, err
	}
	names := make([]string, fieldCount)
	for i := range names {
		var n uint32
		if err := binary.Read(zr, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(zr, buf); err != nil {
			return nil, err
		}
		names[i] = string(buf)
	}

	var ending, stride, recordCnt, indexLen uint32
	if err := binary.Read(zr, binary.LittleEndian, &ending); err != nil {
		return nil, err
	}
	if err := binary.Read(zr, binary.LittleEndian, &stride); err != nil {
		return nil, err
	}
	if err := binary.Read(zr, binary.LittleEndian, &recordCnt); err != nil {
		return nil, err
	}
	if err := binary.Read(zr, binary.LittleEndian, &indexLen); err != nil {
		return nil, err
	}

	index := make(csvtape.StructuralIndex, indexLen)
	for i := range index {
		var off uint32
		if err := binary.Read(zr, binary.LittleEndian, &off); err != nil {
			return nil, err
		}
		index[i] = int(off)
	}

	return &Snapshot{
		FieldNames: names,
		LineEnding: csvtape.LineEnding(ending),
		Stride:     int(stride),
		RecordCnt:  int(recordCnt),
		Index:      index,
	}, nil
}
