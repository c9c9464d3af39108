package compression

import (
	"errors"
	"io"
)

// ErrSizeLimit is returned when a resource decompresses to more than its cap.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

// LimitedReader passes through at most Remaining bytes of R. Input of
// exactly the cap reads to io.EOF; any byte past it fails with ErrSizeLimit.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader caps r at maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

func (l *LimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.Remaining <= 0 {
		return 0, l.probe()
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// probe reads one byte past the cap to tell a resource that ends exactly at
// the limit from one that exceeds it.
func (l *LimitedReader) probe() error {
	var b [1]byte
	for range maxEmptyReads {
		n, err := l.R.Read(b[:])
		switch {
		case n > 0:
			return ErrSizeLimit
		case err != nil:
			return err
		}
	}
	return io.ErrNoProgress
}

const maxEmptyReads = 100
