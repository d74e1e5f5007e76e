package bundle

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Format selects the bundle container encoding. The value doubles as the
// archive filename suffix.
type Format string

const (
	FormatTarGz  Format = "tar.gz"
	FormatTarBz2 Format = "tar.bz2"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTarGz, FormatTarBz2:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown bundle format %q (want %s or %s)", s, FormatTarGz, FormatTarBz2)
}

// newWriter wraps w in the format's compressor.
func (f Format) newWriter(w io.Writer) (io.WriteCloser, error) {
	switch f {
	case FormatTarGz:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case FormatTarBz2:
		bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
		if err != nil {
			return nil, fmt.Errorf("creating bzip2 writer: %w", err)
		}
		return bw, nil
	}
	return nil, fmt.Errorf("unknown bundle format %q", string(f))
}

// NewReader wraps r in the format's decompressor.
func (f Format) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch f {
	case FormatTarGz:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gr, nil
	case FormatTarBz2:
		br, err := bzip2.NewReader(r, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, fmt.Errorf("creating bzip2 reader: %w", err)
		}
		return br, nil
	}
	return nil, fmt.Errorf("unknown bundle format %q", string(f))
}
