package munsell

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/chromat/internal/compression"
)

// LoadOptions configures Load.
type LoadOptions struct {
	// Logger receives per-plane diagnostics. Defaults to a null logger.
	Logger hclog.Logger

	// MaxSize caps the decompressed size of one plane resource.
	// Zero selects compression.DefaultMaxSize.
	MaxSize int64
}

// PlaneFile returns the resource name of the plane with value v, e.g.
// "hc2xy(05.0).csv". Compressed variants append .xz, .gz or .bz2.
func PlaneFile(v float64) string {
	return fmt.Sprintf("hc2xy(%04.1f).csv", v)
}

// Load builds a table from the plane resources in fsys.
//
// Load always returns a usable table. Planes whose resource is missing,
// unreadable or empty are left without samples and reported through a
// *LoadError; conversions that touch those planes then behave as if the
// colour were outside the tabulated gamut.
func Load(fsys fs.FS, opts LoadOptions) (*Table, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	t := &Table{}
	var failed []*PlaneError
	for i, v := range planeValues {
		st := t.planes[i].load(fsys, v, opts.MaxSize)
		t.stats[i] = st

		if st.Err != nil {
			logger.Warn("munsell plane failed to load", "value", v, "source", st.Source, "error", st.Err)
			failed = append(failed, &PlaneError{Value: v, Source: st.Source, Err: st.Err})
			continue
		}
		logger.Debug("munsell plane loaded", "value", v, "source", st.Source,
			"rows", st.Rows, "skipped", st.Skipped, "samples", st.Samples)
	}

	if len(failed) > 0 {
		return t, &LoadError{Planes: failed}
	}
	return t, nil
}

// load fills p from the resource of the plane with value v. On error the
// plane is reset to empty.
func (p *plane) load(fsys fs.FS, v float64, maxSize int64) PlaneStats {
	st := PlaneStats{Value: v, Source: PlaneFile(v)}

	r, err := compression.Open(fsys, st.Source, maxSize)
	if err != nil {
		st.Err = err
		return st
	}
	defer r.Close()
	st.Source = r.Name

	if err := p.read(r, &st); err != nil {
		*p = plane{}
		st.Err = err
		return st
	}
	st.Samples = p.count()
	if st.Samples == 0 {
		st.Err = ErrEmptyPlane
	}
	return st
}

func (p *plane) read(r io.Reader, st *PlaneStats) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			st.Rows++
			st.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", st.Source, err)
		}

		st.Rows++
		if !p.add(rec) {
			st.Skipped++
		}
	}
}

func (p *plane) count() int {
	n := 0
	for s := range p.present {
		for _, ok := range p.present[s] {
			if ok {
				n++
			}
		}
	}
	return n
}

// add stores one "hue,chroma,x,y" row and reports whether it was usable.
func (p *plane) add(rec []string) bool {
	if len(rec) < 4 {
		return false
	}
	hue, err := HueNameToValue(rec[0])
	if err != nil || hue == HueNeutral {
		return false
	}
	chroma, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil || chroma < 0 || chroma > MaxChroma || chroma%chromaStep != 0 {
		return false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if errX != nil || errY != nil || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	s, onGrid := sectorOf(hue)
	if !onGrid {
		return false
	}
	if chroma == 0 {
		// The achromatic point is fixed; the row carries no information.
		return true
	}

	i := chroma / chromaStep
	if p.present[s][i] {
		return true
	}
	p.samples[s][i] = point{x, y}
	p.present[s][i] = true
	if chroma > p.maxChroma[s] {
		p.maxChroma[s] = chroma
	}
	return true
}
