package csvtape

// ByteRegion is a borrowed view over the bytes of a delimited text file. It
// never copies and never outlives the buffer it wraps — callers opening a
// memory-mapped file (see internal/mmapio) must keep the mapping alive for
// as long as any ByteRegion or Tape derived from it is in use.
type ByteRegion []byte

// Len returns the number of bytes in the region.
func (r ByteRegion) Len() int {
	return len(r)
}

// Slice returns the sub-region [start:end), matching Go slicing semantics.
// Callers are expected to pass bounds already validated by the locator.
func (r ByteRegion) Slice(start, end int) []byte {
	return r[start:end]
}
