// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	arg "github.com/alexflint/go-arg"

	"cnvdist/internal/appcore"
	"cnvdist/internal/cli"
	"cnvdist/internal/cmdutil"
	"cnvdist/internal/writers"
)

// Exit codes
const (
	ExitOK     = 0
	ExitInput  = 1 // unreadable/malformed input or bad configuration
	ExitUsage  = 2
	ExitOutput = 3
)

// Run parses argv, compares the two profiles and writes the report to
// stdout. Diagnostics go to stderr. It returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	var opts cli.Options
	p, err := cli.NewParser("cnvdist", &opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if err := cli.ParseArgs(p, &opts, argv); err != nil {
		switch {
		case errors.Is(err, arg.ErrHelp):
			p.WriteHelp(outw)
			return flush(outw, stderr, ExitOK)
		case errors.Is(err, arg.ErrVersion):
			_, _ = fmt.Fprintln(outw, opts.Version())
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		p.WriteUsage(stderr)
		return ExitUsage
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose, opts.Trace)
	rep, err := appcore.Run(appcore.Options{
		File1:      opts.File1,
		File2:      opts.File2,
		Precision:  opts.Precision,
		GenomeFile: opts.Genome,
	}, log)
	if err != nil {
		log.Error(err)
		return ExitInput
	}

	if err := writers.Write(opts.Output, outw, rep); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return flush(outw, stderr, ExitOK)
}

func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}
