// Package profile applies segment files onto reference grids.
package profile

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/feat"
	"github.com/sirupsen/logrus"

	"cnvdist/internal/grid"
	"cnvdist/internal/segment"
)

// Stats summarises one load.
type Stats struct {
	File    string
	Lines   int // segments read
	Applied int // segments written to the grid (segments with alterations)
	Skipped int // segments shorter than one bin
	Clamped int // applied segments reaching past the chromosome end
}

// UnknownChromosomeError is returned when a segment names a chromosome that
// is not in the length table.
type UnknownChromosomeError struct {
	File  string
	Line  int
	Chrom string
}

func (e *UnknownChromosomeError) Error() string {
	return fmt.Sprintf("%s:%d unknown chromosome %q (not in the length table)", e.File, e.Line, e.Chrom)
}

// OutOfRangeError is returned when a segment starts at or after the end of
// its chromosome, usually a sign of coordinates from another genome build.
type OutOfRangeError struct {
	File   string
	Line   int
	Chrom  string
	Start  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s:%d segment starts at %d, past the end of %s (%d bp)", e.File, e.Line, e.Start, e.Chrom, e.Length)
}

// Load opens path and applies its segments to g. The file is closed on
// every return path.
func Load(g *grid.Grid, path string, log logrus.FieldLogger) (Stats, error) {
	rc, err := segment.Open(path)
	if err != nil {
		return Stats{File: path}, err
	}
	defer rc.Close()
	return Apply(g, segment.NewReader(rc, path), log)
}

// Apply writes each segment's LRR over bins round(start/precision) ..
// round(end/precision) in file order, so later segments win. Segments
// spanning less than one bin width are skipped.
func Apply(g *grid.Grid, r *segment.Reader, log logrus.FieldLogger) (Stats, error) {
	st := Stats{File: r.Name()}
	prec := g.Precision()
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		st.Lines++

		if s.To-s.From < prec {
			st.Skipped++
			continue
		}
		c, ok := g.Table().Lookup(s.Chrom)
		if !ok {
			return st, &UnknownChromosomeError{File: st.File, Line: s.Line, Chrom: s.Chrom}
		}
		s.Ref = c
		if s.Start() >= c.End() {
			return st, &OutOfRangeError{File: st.File, Line: s.Line, Chrom: c.Name(), Start: s.Start(), Length: c.Len()}
		}
		clamped, err := fill(g, s, s.LRR)
		if err != nil {
			return st, fmt.Errorf("%s:%d %w", st.File, s.Line, err)
		}
		if clamped {
			st.Clamped++
			if log != nil {
				log.WithFields(logrus.Fields{
					"file":  st.File,
					"line":  s.Line,
					"chrom": s.Chrom,
				}).Warnf("segment %s extends past the end of %s; clamped", s.Name(), c)
			}
		}
		st.Applied++
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"file":    st.File,
			"lines":   st.Lines,
			"applied": st.Applied,
			"skipped": st.Skipped,
		}).Debug("profile loaded")
	}
	return st, nil
}

// fill writes lrr over the bins covered by f on its location.
func fill(g *grid.Grid, f feat.Feature, lrr float64) (clamped bool, err error) {
	loc := f.Location()
	prec := g.Precision()
	lo, hi := grid.BinIndex(f.Start(), prec), grid.BinIndex(f.End(), prec)
	clamped, err = g.Fill(loc.Name(), lo, hi, lrr)
	return clamped || f.End() > loc.End(), err
}
