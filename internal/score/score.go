// Package score computes the copy-number distance between two profiles.
//
// Each bin's LRR is converted to an estimated copy number, cn = 2 * 2^lrr,
// and the absolute differences are summed over the whole grid. The reported
// value is round(1000 * sum / bins) / 100, read as "<value> * 10^-1".
package score

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"cnvdist/internal/grid"
)

// ErrIncompatible is returned when two grids do not share a layout.
var ErrIncompatible = errors.New("score: grids are not comparable")

// Chromosome is the contribution of one chromosome.
type Chromosome struct {
	Name string
	Bins int
	CN   float64 // sum of |cn2 - cn1|
	LRR  float64 // sum of |lrr2 - lrr1|
}

// Result holds the accumulated distances of one comparison.
type Result struct {
	CN          float64 // sum over all bins of |cn2 - cn1|
	LRR         float64 // sum over all bins of |lrr2 - lrr1|; not part of Value
	TotalBins   int
	Precision   int
	Chromosomes []Chromosome // canonical order
}

// CopyNumber converts a log-R-ratio to an estimated copy number.
func CopyNumber(lrr float64) float64 { return 2 * math.Pow(2, lrr) }

// Value is the normalized score: round(1000*CN/TotalBins)/100.
func (r Result) Value() float64 {
	if r.TotalBins == 0 {
		return 0
	}
	return math.Round(1000*r.CN/float64(r.TotalBins)) / 100
}

// String renders the score line.
func (r Result) String() string {
	return fmt.Sprintf("Score: %s * 10^-1", FormatValue(r.Value()))
}

// FormatValue prints v in its shortest decimal form (2, 0.5, 0.07).
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Compare scores b against a. Chromosomes are walked in canonical order and
// bins in ascending order; when log is non-nil every differing bin is
// reported at trace level in that order.
func Compare(a, b *grid.Grid, log logrus.FieldLogger) (Result, error) {
	if err := a.Compatible(b); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	res := Result{TotalBins: a.Len(), Precision: a.Precision()}

	var cnA, cnB []float64
	for _, name := range a.Chromosomes() {
		la, lb := a.Bins(name), b.Bins(name)
		cnA = toCopyNumber(cnA[:0], la)
		cnB = toCopyNumber(cnB[:0], lb)

		c := Chromosome{
			Name: name,
			Bins: len(la),
			CN:   floats.Distance(cnB, cnA, 1),
			LRR:  floats.Distance(lb, la, 1),
		}
		res.CN += c.CN
		res.LRR += c.LRR
		res.Chromosomes = append(res.Chromosomes, c)

		if log != nil && c.LRR != 0 {
			traceBins(log, name, la, lb, cnA, cnB)
		}
	}
	return res, nil
}

func toCopyNumber(dst, lrr []float64) []float64 {
	for _, v := range lrr {
		dst = append(dst, CopyNumber(v))
	}
	return dst
}

func traceBins(log logrus.FieldLogger, chrom string, la, lb, cnA, cnB []float64) {
	for i := range la {
		if la[i] == lb[i] {
			continue
		}
		log.WithFields(logrus.Fields{
			"chrom": chrom,
			"bin":   i,
			"lrr1":  la[i],
			"lrr2":  lb[i],
			"cn1":   cnA[i],
			"cn2":   cnB[i],
		}).Trace("bin differs")
	}
}
