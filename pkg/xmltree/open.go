package xmltree

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	binderrors "github.com/jacoelho/xmlbind/errors"
)

// Open opens a document file, transparently decompressing it by extension:
// ".gz" (gzip), ".zz" (zlib) and ".zst" (zstandard).
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, binderrors.Wrap(binderrors.CodeIO, err).Err()
	}
	rc, err := decompress(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, binderrors.Wrap(binderrors.CodeIO, err).At(path).Err()
	}
	return rc, nil
}

// ParseFile reads and parses a document file. Files named *.yaml or *.yml,
// optionally followed by a compression extension, are parsed as YAML and
// everything else as XML.
func ParseFile(path string) (*Node, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	name := path
	if isCompressed(filepath.Ext(name)) {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(rc)
	default:
		return Parse(rc)
	}
}

func isCompressed(ext string) bool {
	switch strings.ToLower(ext) {
	case ".gz", ".zz", ".zst":
		return true
	default:
		return false
	}
}

func decompress(f *os.File, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zz":
		zr, err := zlib.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		zr := dec.IOReadCloser()
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	default:
		return f, nil
	}
}

// stackedReader closes a decompressor and the file under it, innermost last.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
