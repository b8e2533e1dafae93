package dataprocessing

import (
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"

	apperrors "dataopscli/internal/errors"
	"dataopscli/internal/validation"
)

// decompressingReader closes the codec before the underlying file
type decompressingReader struct {
	io.Reader
	closers []io.Closer
}

func (r *decompressingReader) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openInput opens path and wraps it in the decompressor its extension names
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError("failed to open input file", err).WithContext("file", path)
	}

	codec, _ := validation.DetectCompression(path)
	switch codec {
	case validation.CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, apperrors.NewParsingError("invalid gzip stream", err).WithContext("file", path)
		}
		return &decompressingReader{Reader: zr, closers: []io.Closer{zr, f}}, nil

	case validation.CompressionZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, apperrors.NewParsingError("invalid zstd stream", err).WithContext("file", path)
		}
		dec := zr.IOReadCloser()
		return &decompressingReader{Reader: dec, closers: []io.Closer{dec, f}}, nil

	case validation.CompressionSnappy:
		return &decompressingReader{Reader: snappy.NewReader(f), closers: []io.Closer{f}}, nil
	}
	return f, nil
}
