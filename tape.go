package csvtape

// Tape owns a region, the header metadata derived from its first line, and
// the structural index produced by scanning the whole region (header
// included). Record and field lookups are pure arithmetic over these three
// once constructed; nothing further is parsed.
type Tape struct {
	region ByteRegion
	header HeaderMetadata
	stride int
	// recordCount excludes the header row.
	recordCount int
	index       StructuralIndex
}

// NewTape probes region's header, scans its full structural index, and
// validates that the total number of delimiters (header row included) is a
// whole multiple of the stride. It returns ErrInvalidCsvFormat if region has
// no header line, or if that total is not a multiple of the stride. Rows are
// not checked one by one: rows whose field-count differences cancel out in
// the total are not detected.
func NewTape(region ByteRegion) (*Tape, error) {
	header, err := probeHeader(region)
	if err != nil {
		return nil, err
	}

	fieldCount := len(header.FieldNames)
	if fieldCount == 0 {
		return nil, ErrInvalidCsvFormat
	}

	stride := fieldCount
	if header.LineEnding == CRLF {
		stride++
	}

	index := Scan(region)
	if (len(index)-1)%stride != 0 {
		return nil, ErrInvalidCsvFormat
	}

	recordCount := (len(index)-1)/stride - 1
	if recordCount < 0 {
		recordCount = 0
	}

	return &Tape{
		region:      region,
		header:      header,
		stride:      stride,
		recordCount: recordCount,
		index:       index,
	}, nil
}

// Region returns the underlying byte region the tape was built from.
func (t *Tape) Region() ByteRegion { return t.region }

// Header returns the field names and line-ending style detected in the
// region's first line.
func (t *Tape) Header() HeaderMetadata { return t.header }

// FieldCount returns the number of fields every record has.
func (t *Tape) FieldCount() int { return len(t.header.FieldNames) }

// RecordCount returns the number of data records, not counting the header.
func (t *Tape) RecordCount() int { return t.recordCount }

// Stride returns the number of structural index entries one record (or the
// header row) occupies.
func (t *Tape) Stride() int { return t.stride }

// Index returns the tape's structural index. Callers must not mutate it.
func (t *Tape) Index() StructuralIndex { return t.index }
