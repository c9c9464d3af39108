package munsell

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed table/*.csv
var tableFS embed.FS

var defaultTable = sync.OnceValues(func() (*Table, error) {
	sub, err := fs.Sub(tableFS, "table")
	if err != nil {
		return nil, err
	}
	return Load(sub, LoadOptions{})
})

// Default returns the table built from the packaged plane resources. It is
// loaded on first use; later calls return the same table and error.
func Default() (*Table, error) {
	return defaultTable()
}
