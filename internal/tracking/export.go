package tracking

import (
	"bytes"
	"guardian/internal/tracking/interfaces"

	"github.com/klauspost/compress/gzip"
)

// GzipCompression wraps history exports for transfer over HTTP with
// Content-Encoding: gzip.
type GzipCompression struct{}

func (g *GzipCompression) Compress(val []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(val); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func NewGzipCompressor() interfaces.CompressorInterface {
	return &GzipCompression{}
}
