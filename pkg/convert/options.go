package convert

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/chromat/pkg/evaluate"
	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/pccs"
	"github.com/jmylchreest/chromat/pkg/space"
	"github.com/jmylchreest/chromat/pkg/vision"
)

var (
	// ErrUnknownPreset is returned for a preset name the catalog does not know.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrNoTable is returned when a Munsell preset is requested from a
	// catalog built without a Munsell table.
	ErrNoTable = errors.New("no munsell table configured")
	// ErrInvalidOption is returned by Build for an unrecognised option value.
	ErrInvalidOption = errors.New("invalid option")
)

// Environment variables read by Builder.WithEnvConfig.
const (
	EnvDichromacy = "CHROMAT_DICHROMACY"
	EnvLMS        = "CHROMAT_LMS"
	EnvWhite      = "CHROMAT_WHITE"
	EnvPCCS       = "CHROMAT_PCCS"
	EnvDifference = "CHROMAT_DIFFERENCE"
)

// Options configure the stages a Catalog builds. The zero value selects
// Brettel 1997, Smith-Pokorny, D65, accurate PCCS and CIEDE2000.
type Options struct {
	Dichromacy vision.Method
	LMS        space.LMSMatrix
	White      space.White
	PCCS       pccs.Method
	Difference evaluate.Method

	// Table is required by the Munsell and PCCS presets.
	Table *munsell.Table

	Logger hclog.Logger
}

// Builder provides a fluent interface for constructing a Catalog.
type Builder struct {
	opts      Options
	overrides []func(*Options)
	useEnv    bool
}

// NewBuilder creates a builder with default options.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOptions replaces the base options.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithTable sets the Munsell table used by the Munsell presets.
func (b *Builder) WithTable(t *munsell.Table) *Builder {
	b.opts.Table = t
	return b
}

// WithLogger sets the logger used by the catalog.
func (b *Builder) WithLogger(l hclog.Logger) *Builder {
	b.opts.Logger = l
	return b
}

// WithEnvConfig applies the CHROMAT_* environment variables on top of the
// base options at Build time.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithOverride registers a change applied after the environment, so callers
// such as command line flags take precedence over it.
func (b *Builder) WithOverride(fn func(*Options)) *Builder {
	b.overrides = append(b.overrides, fn)
	return b
}

// Build constructs the catalog. It fails with ErrInvalidOption when an
// environment variable holds an unknown value.
func (b *Builder) Build() (*Catalog, error) {
	opts := b.opts

	if b.useEnv {
		if err := applyEnv(&opts); err != nil {
			return nil, err
		}
	}
	for _, fn := range b.overrides {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	c := &Catalog{opts: opts, logger: opts.Logger.Named("convert")}
	if opts.Table != nil {
		c.engine = munsell.NewEngine(opts.Table)
	}

	c.logger.Debug("catalog built",
		"dichromacy", opts.Dichromacy,
		"lms", opts.LMS,
		"white", opts.White,
		"pccs", opts.PCCS,
		"difference", opts.Difference,
		"munsell", opts.Table != nil)

	return c, nil
}

func applyEnv(opts *Options) error {
	var errs []error
	parse := func(key string, fn func(string) error) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		if err := fn(v); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err))
		}
	}

	parse(EnvDichromacy, func(s string) (err error) {
		opts.Dichromacy, err = vision.ParseMethod(s)
		return err
	})
	parse(EnvLMS, func(s string) (err error) {
		opts.LMS, err = space.ParseLMSMatrix(s)
		return err
	})
	parse(EnvWhite, func(s string) (err error) {
		opts.White, err = space.ParseWhite(s)
		return err
	})
	parse(EnvPCCS, func(s string) (err error) {
		opts.PCCS, err = pccs.ParseMethod(s)
		return err
	})
	parse(EnvDifference, func(s string) (err error) {
		opts.Difference, err = evaluate.ParseMethod(s)
		return err
	})

	return errors.Join(errs...)
}
