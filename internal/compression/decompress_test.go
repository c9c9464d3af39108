package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/ulikunitz/xz"
)

const row = "2.5R,2,0.3354,0.3144\n"

// bzip2 of row; the standard library has no bzip2 writer.
var rowBz2 = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0x01, 0xa9, 0xf8, 0xad,
	0x00, 0x00, 0x05, 0xda, 0x00, 0x00, 0x10, 0x00, 0x05, 0x7e, 0x00, 0x10, 0x00, 0x20,
	0x00, 0x21, 0xa9, 0xa7, 0xa3, 0x26, 0x84, 0x00, 0xc1, 0x85, 0x10, 0xfe, 0x0d, 0xa4,
	0xc1, 0x72, 0x1b, 0x3c, 0x2e, 0xe4, 0x8a, 0x70, 0xa1, 0x20, 0x03, 0x53, 0xf1, 0x5a,
}

func xzBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := io.WriteString(w, s); err != nil {
		t.Fatalf("write xz: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close xz: %v", err)
	}
	return buf.Bytes()
}

func gzBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := io.WriteString(w, s); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		fsys     fstest.MapFS
		wantName string
	}{
		{
			name:     "plain",
			fsys:     fstest.MapFS{"t.csv": {Data: []byte(row)}},
			wantName: "t.csv",
		},
		{
			name:     "xz",
			fsys:     fstest.MapFS{"t.csv.xz": {Data: xzBytes(t, row)}},
			wantName: "t.csv.xz",
		},
		{
			name:     "gzip",
			fsys:     fstest.MapFS{"t.csv.gz": {Data: gzBytes(t, row)}},
			wantName: "t.csv.gz",
		},
		{
			name:     "bzip2",
			fsys:     fstest.MapFS{"t.csv.bz2": {Data: rowBz2}},
			wantName: "t.csv.bz2",
		},
		{
			name: "plain wins over compressed",
			fsys: fstest.MapFS{
				"t.csv":    {Data: []byte(row)},
				"t.csv.xz": {Data: []byte("not xz at all")},
			},
			wantName: "t.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Open(tt.fsys, "t.csv", 0)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer r.Close()

			if r.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", r.Name, tt.wantName)
			}
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if string(got) != row {
				t.Errorf("content = %q, want %q", got, row)
			}
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(fstest.MapFS{}, "t.csv", 0)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want fs.ErrNotExist", err)
	}
}

func TestOpenCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"t.csv.xz": {Data: []byte("garbage")}}
	if _, err := Open(fsys, "t.csv", 0); err == nil {
		t.Error("Open() expected error for corrupt xz stream")
	}
}

func TestOpenSizeLimit(t *testing.T) {
	fsys := fstest.MapFS{"t.csv.xz": {Data: xzBytes(t, row+row+row)}}
	r, err := Open(fsys, "t.csv", int64(len(row)))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if _, err := io.ReadAll(r); !errors.Is(err, ErrSizeLimit) {
		t.Errorf("ReadAll() error = %v, want ErrSizeLimit", err)
	}
}
