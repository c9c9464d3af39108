// Package convert composes colour transforms into named pipelines.
//
// A Pipeline runs an ordered list of stages over a single scratch triple and
// reports whether any stage had to clamp its result. Pipelines for the
// common conversions are built from a Catalog, which carries the options
// (dichromacy method, LMS matrix, Lab white, PCCS method and Munsell table)
// that the stages close over.
package convert

import (
	"fmt"

	"github.com/jmylchreest/chromat/pkg/space"
)

// StageFunc transforms src into dst. Implementations must be correct when
// src and dst point to the same triple. The result reports whether the
// output was clamped to fit its range.
type StageFunc func(src, dst *space.Triple) (saturated bool, err error)

// Stage is a named step of a pipeline.
type Stage struct {
	Name string
	Fn   StageFunc
}

// Pipeline runs its stages in order over an owned scratch triple.
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	name      string
	stages    []Stage
	scratch   space.Triple
	saturated bool
}

// New returns a pipeline running stages in the given order.
func New(name string, stages ...Stage) *Pipeline {
	return &Pipeline{
		name:   name,
		stages: append([]Stage(nil), stages...),
	}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Stages returns the names of the stages in run order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Saturated reports whether any stage of the most recent conversion clamped
// its output.
func (p *Pipeline) Saturated() bool {
	return p.saturated
}

// Convert runs the pipeline on src and returns the result.
func (p *Pipeline) Convert(src space.Triple) (space.Triple, error) {
	var dst space.Triple
	err := p.ConvertInto(&src, &dst)
	return dst, err
}

// ConvertInto runs the pipeline on src and writes the result to dst. src and
// dst may be the same triple. On error dst is left unchanged.
func (p *Pipeline) ConvertInto(src, dst *space.Triple) error {
	p.saturated = false
	p.scratch = *src

	for _, s := range p.stages {
		sat, err := s.Fn(&p.scratch, &p.scratch)
		if err != nil {
			return fmt.Errorf("%s: stage %s: %w", p.name, s.Name, err)
		}
		if sat {
			p.saturated = true
		}
	}

	*dst = p.scratch
	return nil
}
