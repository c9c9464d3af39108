package convert

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/chromat/pkg/evaluate"
	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/space"
)

// Input and output spaces of a preset.
const (
	SpaceSRGB    = "rgb"
	SpaceLRGB    = "lrgb"
	SpaceXYZ     = "xyz"
	SpaceLab     = "lab"
	SpaceLMS     = "lms"
	SpaceYIQ     = "yiq"
	SpaceYxy     = "yxy"
	SpaceMunsell = "munsell"
	SpacePCCS    = "pccs"
	SpaceTone    = "tone"
)

type preset struct {
	description string
	from, to    string
	munsell     bool
	stages      func(c *Catalog) []Stage
}

var presets = map[string]preset{
	"rgb-lab": {"sRGB to CIELAB", SpaceSRGB, SpaceLab, false, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ(), XYZToLab(c.opts.White)}
	}},
	"lab-rgb": {"CIELAB to sRGB", SpaceLab, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{LabToXYZ(c.opts.White), XYZToLRGB(), LRGBToSRGB()}
	}},
	"rgb-protanopia": {"sRGB as seen with protanopia, via LMS", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{
			SRGBToLRGB(), LRGBToXYZ(), XYZToLMS(c.opts.LMS),
			LMSToProtanopia(c.opts.Dichromacy, c.opts.LMS),
			LMSToXYZ(c.opts.LMS), XYZToLRGB(), LRGBToSRGB(),
		}
	}},
	"rgb-deuteranopia": {"sRGB as seen with deuteranopia, via LMS", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{
			SRGBToLRGB(), LRGBToXYZ(), XYZToLMS(c.opts.LMS),
			LMSToDeuteranopia(c.opts.Dichromacy, c.opts.LMS),
			LMSToXYZ(c.opts.LMS), XYZToLRGB(), LRGBToSRGB(),
		}
	}},
	"rgb-protanopia-direct": {"sRGB as seen with protanopia, on linear RGB", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToProtanopia(c.opts.Dichromacy), LRGBToSRGB()}
	}},
	"rgb-deuteranopia-direct": {"sRGB as seen with deuteranopia, on linear RGB", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToDeuteranopia(c.opts.Dichromacy), LRGBToSRGB()}
	}},
	"rgb-lightness": {"sRGB to the grey of the same CIELAB lightness", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{
			SRGBToLRGB(), LRGBToXYZ(), XYZToLightness(c.opts.White),
			LabToXYZ(c.opts.White), XYZToLRGB(), LRGBToSRGB(),
		}
	}},
	"rgb-yxy": {"sRGB to CIE Yxy", SpaceSRGB, SpaceYxy, false, func(*Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ(), XYZToYxy()}
	}},
	"yxy-rgb": {"CIE Yxy to sRGB", SpaceYxy, SpaceSRGB, false, func(*Catalog) []Stage {
		return []Stage{YxyToXYZ(), XYZToLRGB(), LRGBToSRGB()}
	}},
	"rgb-xyz": {"sRGB to CIE XYZ", SpaceSRGB, SpaceXYZ, false, func(*Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ()}
	}},
	"xyz-rgb": {"CIE XYZ to sRGB", SpaceXYZ, SpaceSRGB, false, func(*Catalog) []Stage {
		return []Stage{XYZToLRGB(), LRGBToSRGB()}
	}},
	"xyz-lab": {"CIE XYZ to CIELAB", SpaceXYZ, SpaceLab, false, func(c *Catalog) []Stage {
		return []Stage{XYZToLab(c.opts.White)}
	}},
	"lab-xyz": {"CIELAB to CIE XYZ", SpaceLab, SpaceXYZ, false, func(c *Catalog) []Stage {
		return []Stage{LabToXYZ(c.opts.White)}
	}},
	"rgb-yiq": {"sRGB to YIQ", SpaceSRGB, SpaceYIQ, false, func(*Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToYIQ()}
	}},
	"yiq-rgb": {"YIQ to sRGB", SpaceYIQ, SpaceSRGB, false, func(*Catalog) []Stage {
		return []Stage{YIQToLRGB(), LRGBToSRGB()}
	}},
	"rgb-lms": {"sRGB to LMS cone responses", SpaceSRGB, SpaceLMS, false, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ(), XYZToLMS(c.opts.LMS)}
	}},
	"lab-elderly": {"CIELAB as seen by an elderly observer", SpaceLab, SpaceLab, false, func(*Catalog) []Stage {
		return []Stage{LabToElderly()}
	}},
	"lab-young": {"CIELAB as seen by a young observer", SpaceLab, SpaceLab, false, func(*Catalog) []Stage {
		return []Stage{LabToYoung()}
	}},
	"rgb-elderly": {"sRGB as seen by an elderly observer", SpaceSRGB, SpaceSRGB, false, func(c *Catalog) []Stage {
		return []Stage{
			SRGBToLRGB(), LRGBToXYZ(), XYZToLab(c.opts.White), LabToElderly(),
			LabToXYZ(c.opts.White), XYZToLRGB(), LRGBToSRGB(),
		}
	}},
	"xyz-munsell": {"CIE XYZ to Munsell HVC", SpaceXYZ, SpaceMunsell, true, func(c *Catalog) []Stage {
		return []Stage{XYZToMunsell(c.engine)}
	}},
	"munsell-xyz": {"Munsell HVC to CIE XYZ", SpaceMunsell, SpaceXYZ, true, func(c *Catalog) []Stage {
		return []Stage{MunsellToXYZ(c.engine)}
	}},
	"rgb-munsell": {"sRGB to Munsell HVC", SpaceSRGB, SpaceMunsell, true, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ(), XYZToMunsell(c.engine)}
	}},
	"munsell-rgb": {"Munsell HVC to sRGB", SpaceMunsell, SpaceSRGB, true, func(c *Catalog) []Stage {
		return []Stage{MunsellToXYZ(c.engine), XYZToLRGB(), LRGBToSRGB()}
	}},
	"munsell-pccs": {"Munsell HVC to PCCS hls", SpaceMunsell, SpacePCCS, false, func(c *Catalog) []Stage {
		return []Stage{MunsellToPCCS(c.opts.PCCS)}
	}},
	"pccs-munsell": {"PCCS hls to Munsell HVC", SpacePCCS, SpaceMunsell, false, func(c *Catalog) []Stage {
		return []Stage{PCCSToMunsell(c.opts.PCCS)}
	}},
	"rgb-pccs": {"sRGB to PCCS hls", SpaceSRGB, SpacePCCS, true, func(c *Catalog) []Stage {
		return []Stage{SRGBToLRGB(), LRGBToXYZ(), XYZToMunsell(c.engine), MunsellToPCCS(c.opts.PCCS)}
	}},
	"pccs-tone": {"PCCS hls to tone coordinates", SpacePCCS, SpaceTone, false, func(*Catalog) []Stage {
		return []Stage{PCCSToTone()}
	}},
	"tone-pccs": {"tone coordinates to PCCS hls", SpaceTone, SpacePCCS, false, func(*Catalog) []Stage {
		return []Stage{ToneToPCCS()}
	}},
}

// PresetInfo describes a catalog preset.
type PresetInfo struct {
	Name        string
	Description string
	From, To    string
	Stages      []string
	// NeedsTable is set for presets that go through the Munsell table.
	NeedsTable bool
}

// Catalog builds pipelines for the named presets using its options.
// A Catalog is safe for concurrent use; the pipelines it returns are not.
type Catalog struct {
	opts   Options
	engine *munsell.Engine
	logger hclog.Logger
}

// Options returns the options the catalog was built with.
func (c *Catalog) Options() Options {
	return c.opts
}

// New returns a fresh pipeline for the named preset.
func (c *Catalog) New(name string) (*Pipeline, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if p.munsell && c.engine == nil {
		return nil, fmt.Errorf("preset %s: %w", name, ErrNoTable)
	}

	pl := New(name, p.stages(c)...)
	c.logger.Trace("pipeline created", "preset", name, "stages", pl.Stages())
	return pl, nil
}

// List returns the preset names in sorted order.
func (c *Catalog) List() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns information about the named preset without building a
// pipeline that could fail on a missing table.
func (c *Catalog) Describe(name string) (PresetInfo, error) {
	p, ok := presets[name]
	if !ok {
		return PresetInfo{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	info := PresetInfo{
		Name:        name,
		Description: p.description,
		From:        p.from,
		To:          p.to,
		NeedsTable:  p.munsell,
	}
	// Stage names do not depend on the engine, so a throwaway catalog with a
	// nil engine is enough here.
	for _, s := range p.stages(&Catalog{opts: c.opts}) {
		info.Stages = append(info.Stages, s.Name)
	}
	return info, nil
}

// Engine returns the Munsell engine, or nil when no table is configured.
func (c *Catalog) Engine() *munsell.Engine {
	return c.engine
}

// Difference returns the colour difference of two CIELAB colours using the
// configured method.
func (c *Catalog) Difference(a, b space.Triple) float64 {
	return evaluate.Difference(c.opts.Difference, a, b)
}
