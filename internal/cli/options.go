// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	arg "github.com/alexflint/go-arg"

	"cnvdist/internal/output"
	"cnvdist/internal/version"
	"cnvdist/internal/writers"
)

// Output formats built in; others may be added to the writers registry.
const (
	OutputText = output.FormatText
	OutputJSON = output.FormatJSON
)

// Options holds all CLI flags and arguments. Defaults reproduce the
// classic two-argument invocation (40 kb bins, hg19).
type Options struct {
	File1 string `arg:"positional,required" placeholder:"FILE1" help:"first segment file (chrom<TAB>start-end<TAB>LRR[<TAB>CN]), '-' for stdin"`
	File2 string `arg:"positional,required" placeholder:"FILE2" help:"second segment file"`

	Precision int    `arg:"-p,--precision" default:"40000" help:"bin width in base pairs"`
	Genome    string `arg:"-g,--genome" placeholder:"SIZES" help:"chrom.sizes file replacing the built-in hg19 length table"`

	Output string `arg:"-o,--output" default:"text" help:"output format: text | json"`

	Verbose bool `arg:"-v,--verbose" help:"log load statistics to stderr"`
	Trace   bool `arg:"--trace" help:"log every differing bin (implies --verbose)"`
	Quiet   bool `arg:"-q,--quiet" help:"log errors only"`
}

// Description is printed at the top of --help.
func (Options) Description() string {
	return "cnvdist: copy-number distance between two CNV segment profiles\n\n" +
		"Bins the genome, converts LRR to copy number (2*2^LRR) and reports\n" +
		"the mean absolute copy-number difference per bin as \"Score: <v> * 10^-1\"."
}

// Version is printed by --version.
func (Options) Version() string { return "cnvdist version " + version.Version }

// NewParser returns a go-arg parser bound to opt. Defaults come from the
// struct tags and are applied by Parse.
func NewParser(name string, opt *Options) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: name}, opt)
}

// ParseArgs parses argv into opt and validates the result. arg.ErrHelp and
// arg.ErrVersion are returned unchanged for the caller to act on.
func ParseArgs(p *arg.Parser, opt *Options, argv []string) error {
	if err := p.Parse(argv); err != nil {
		return err
	}
	return Validate(opt)
}

// Validate applies cross-flag invariants. Precision is checked by the grid
// builder, which owns that rule.
func Validate(o *Options) error {
	if o.File1 == "-" && o.File2 == "-" {
		return errors.New("only one input may be read from stdin")
	}
	if !writers.Has(o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(writers.Formats(), " | "))
	}
	if o.Quiet && (o.Verbose || o.Trace) {
		return errors.New("--quiet conflicts with --verbose/--trace")
	}
	return nil
}
