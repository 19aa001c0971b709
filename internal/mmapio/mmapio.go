// Package mmapio is the external collaborator that turns a filesystem path
// into a csvtape.ByteRegion: the plain memory-mapped case, and a
// transparent LZ4-decompressed fallback for ".lz4"-suffixed inputs that
// cannot be indexed in place.
package mmapio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wyvernio/csvtape"
)

// Closer releases the resources behind a ByteRegion returned by Open. It is
// safe to call exactly once; callers must keep it reachable for as long as
// the region (or any Tape built from it) is in use.
type Closer func() error

// Open maps path into memory read-only, or — if path ends in ".lz4" —
// streams it through an LZ4 decompressor into a plain heap buffer. The
// latter path necessarily gives up zero-copy mapping, since an LZ4 frame
// cannot be indexed in place; that tradeoff is deliberate, not an oversight.
func Open(path string, log *zap.SugaredLogger) (csvtape.ByteRegion, Closer, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if strings.HasSuffix(path, ".lz4") {
		return openCompressed(path, log)
	}
	return openMapped(path, log)
}

func openMapped(path string, log *zap.SugaredLogger) (csvtape.ByteRegion, Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &csvtape.IoFailure{Source: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, &csvtape.IoFailure{Source: err}
	}

	size := info.Size()
	if size == 0 {
		log.Infow("opened empty file, skipping mmap", "path", path)
		return csvtape.ByteRegion{}, func() error { return f.Close() }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, &csvtape.IoFailure{Source: fmt.Errorf("mmap %s: %w", path, err)}
	}

	log.Infow("mapped file", "path", path, "bytes", size)

	closer := func() error {
		if err := unix.Munmap(data); err != nil {
			f.Close()
			return &csvtape.IoFailure{Source: err}
		}
		return f.Close()
	}
	return csvtape.ByteRegion(data), closer, nil
}

func openCompressed(path string, log *zap.SugaredLogger) (csvtape.ByteRegion, Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &csvtape.IoFailure{Source: err}
	}
	defer f.Close()

	zr := lz4.NewReader(f)
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, nil, &csvtape.IoFailure{Source: fmt.Errorf("lz4 decompress %s: %w", path, err)}
	}

	log.Infow("decompressed lz4 input", "path", path, "bytes", len(data))
	return csvtape.ByteRegion(data), func() error { return nil }, nil
}
