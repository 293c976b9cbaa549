// internal/segment/open.go
package segment

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// stackCloser closes a reader chain innermost first.
type stackCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *stackCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

var gzipMagic = []byte{0x1f, 0x8b}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// magic bytes or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}
	br := bufio.NewReader(src)
	sig, _ := br.Peek(len(gzipMagic))
	if bytes.Equal(sig, gzipMagic) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &stackCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	}
	return &stackCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
