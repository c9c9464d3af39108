// Package cli provides the command-line interface for chromat.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/chromat/internal/version"
	"github.com/jmylchreest/chromat/pkg/convert"
	"github.com/jmylchreest/chromat/pkg/evaluate"
	"github.com/jmylchreest/chromat/pkg/munsell"
	"github.com/jmylchreest/chromat/pkg/pccs"
	"github.com/jmylchreest/chromat/pkg/space"
	"github.com/jmylchreest/chromat/pkg/vision"
)

// EnvLogLevel sets the log level when neither --verbose nor --quiet is given.
const EnvLogLevel = "CHROMAT_LOG_LEVEL"

// app holds the state shared by all commands of one invocation.
type app struct {
	verbose  bool
	quiet    bool
	tableDir string
	opts     convert.Options

	logger hclog.Logger
}

// NewRootCmd returns the chromat command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	root := &cobra.Command{
		Use:   "chromat",
		Short: "Colour space conversion and colour vision simulation",
		Long: `Chromat converts colours between sRGB, linear RGB, CIE XYZ, CIELAB, LMS,
YIQ, Yxy, Munsell HVC and PCCS, and simulates dichromatic and age-related
colour vision.

Conversions are run through named presets; list them with 'chromat presets'.
Options can also be set with the CHROMAT_DICHROMACY, CHROMAT_LMS,
CHROMAT_WHITE, CHROMAT_PCCS and CHROMAT_DIFFERENCE environment variables.
Flags take precedence over the environment.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = a.newLogger(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	flags.StringVar(&a.tableDir, "table-dir", "", "load the Munsell table from this directory instead of the embedded one")
	a.registerOptionFlags(flags)

	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		a.newConvertCmd(),
		a.newPresetsCmd(),
		a.newTableCmd(),
		a.newDiffCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) registerOptionFlags(flags *pflag.FlagSet) {
	flags.Var(newEnumFlag(&a.opts.Dichromacy, vision.ParseMethod, "method"),
		"dichromacy", "dichromacy simulation method (brettel1997, okajima2007)")
	flags.Var(newEnumFlag(&a.opts.LMS, space.ParseLMSMatrix, "matrix"),
		"lms", "LMS cone response matrix (smith-pokorny, bradford, von-kries)")
	flags.Var(newEnumFlag(&a.opts.White, space.ParseWhite, "white"),
		"white", "CIELAB reference white (d65, d50)")
	flags.Var(newEnumFlag(&a.opts.PCCS, pccs.ParseMethod, "method"),
		"pccs", "PCCS conversion method (accurate, concise)")
	flags.Var(newEnumFlag(&a.opts.Difference, evaluate.ParseMethod, "method"),
		"difference", "colour difference formula (ciede2000, cie76)")
}

func (a *app) newLogger(w io.Writer) hclog.Logger {
	level := hclog.Warn
	if env := os.Getenv(EnvLogLevel); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromat",
		Level:  level,
		Output: w,
	})
}

// loadTable returns the embedded table, or the one in --table-dir. A table
// with missing planes is still returned alongside the error.
func (a *app) loadTable() (*munsell.Table, error) {
	if a.tableDir == "" {
		return munsell.Default()
	}
	return munsell.Load(os.DirFS(a.tableDir), munsell.LoadOptions{Logger: a.logger})
}

// catalog builds a catalog from the environment and the flags the user set.
// The Munsell table is only loaded when withTable is set; planes that fail
// to load are logged and the sparse table is used.
func (a *app) catalog(cmd *cobra.Command, withTable bool) (*convert.Catalog, error) {
	b := convert.NewBuilder().
		WithLogger(a.logger).
		WithEnvConfig().
		WithOverride(a.flagOverrides(cmd.Flags()))

	if withTable {
		t, err := a.loadTable()
		var loadErr *munsell.LoadError
		switch {
		case errors.As(err, &loadErr):
			a.logger.Warn("munsell table is incomplete", "failed_planes", len(loadErr.Planes))
		case err != nil:
			return nil, fmt.Errorf("loading munsell table: %w", err)
		}
		b = b.WithTable(t)
	}

	return b.Build()
}

func (a *app) flagOverrides(flags *pflag.FlagSet) func(*convert.Options) {
	return func(o *convert.Options) {
		if flags.Changed("dichromacy") {
			o.Dichromacy = a.opts.Dichromacy
		}
		if flags.Changed("lms") {
			o.LMS = a.opts.LMS
		}
		if flags.Changed("white") {
			o.White = a.opts.White
		}
		if flags.Changed("pccs") {
			o.PCCS = a.opts.PCCS
		}
		if flags.Changed("difference") {
			o.Difference = a.opts.Difference
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
