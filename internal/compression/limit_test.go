package compression

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     int64
		want    string
		wantErr error
	}{
		{"under the cap", "abc", 10, "abc", nil},
		{"exactly the cap", "abcd", 4, "abcd", nil},
		{"over the cap", "abcde", 4, "abcd", ErrSizeLimit},
		{"zero cap on empty input", "", 0, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// OneByteReader makes the cap land between reads.
			got, err := io.ReadAll(NewLimitedReader(iotest.OneByteReader(strings.NewReader(tt.input)), tt.max))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadAll() error = %v, want %v", err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadAll() = %q, want %q", got, tt.want)
			}
		})
	}
}
