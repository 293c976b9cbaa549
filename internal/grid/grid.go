// Package grid holds the per-bin LRR values of one CNV profile.
//
// A Grid covers every chromosome of a genome.Table with bins
// 0..round(length/precision), stored in one flat slice laid out in canonical
// chromosome order. Two grids built from the same table and precision are
// directly comparable bin by bin.
package grid

import (
	"errors"
	"fmt"
	"math"

	"cnvdist/internal/genome"
)

// DefaultPrecision is the default bin width in base pairs.
const DefaultPrecision = 40000

var (
	// ErrInvalidPrecision is returned for a bin width <= 0.
	ErrInvalidPrecision = errors.New("grid: precision must be > 0")
	// ErrEmptyTable is returned when the length table has no chromosomes.
	ErrEmptyTable = errors.New("grid: empty chromosome length table")
	// ErrOutOfRange is returned by Fill when no bin of the range exists.
	ErrOutOfRange = errors.New("grid: bin range past chromosome end")
)

// BinIndex maps a base-pair position to its bin: round(pos/precision), with
// ties rounded away from zero.
func BinIndex(pos, precision int) int {
	return int(math.Round(float64(pos) / float64(precision)))
}

type span struct {
	offset int // index of bin 0 in lrr
	n      int // number of bins
}

// Grid is a fully populated profile.
type Grid struct {
	precision int
	table     *genome.Table
	spans     map[string]span
	lrr       []float64
}

// New builds an empty grid: every bin of every chromosome at LRR 0.
func New(table *genome.Table, precision int) (*Grid, error) {
	if precision <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidPrecision, precision)
	}
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyTable
	}
	g := &Grid{
		precision: precision,
		table:     table,
		spans:     make(map[string]span, table.Len()),
	}
	total := 0
	for _, c := range table.Chromosomes() {
		n := BinIndex(c.Length, precision) + 1
		g.spans[c.Chrom] = span{offset: total, n: n}
		total += n
	}
	g.lrr = make([]float64, total)
	return g, nil
}

// Precision returns the bin width in base pairs.
func (g *Grid) Precision() int { return g.precision }

// Table returns the length table the grid was built from.
func (g *Grid) Table() *genome.Table { return g.table }

// Len returns the total bin count over all chromosomes.
func (g *Grid) Len() int { return len(g.lrr) }

// Chromosomes returns chromosome names in canonical order.
func (g *Grid) Chromosomes() []string { return g.table.Names() }

// Has reports whether chrom is part of the grid.
func (g *Grid) Has(chrom string) bool {
	_, ok := g.spans[chrom]
	return ok
}

// MaxBin returns the last bin index of chrom, or -1 when chrom is unknown.
func (g *Grid) MaxBin(chrom string) int {
	s, ok := g.spans[chrom]
	if !ok {
		return -1
	}
	return s.n - 1
}

// Bins returns the LRR values of chrom indexed by bin. The slice aliases
// the grid; callers must not retain it across Fill.
func (g *Grid) Bins(chrom string) []float64 {
	s, ok := g.spans[chrom]
	if !ok {
		return nil
	}
	return g.lrr[s.offset : s.offset+s.n : s.offset+s.n]
}

// Fill sets bins lo..hi (inclusive) of chrom to lrr. A range overlapping the
// chromosome is clamped to it and clamped reports whether any part fell
// outside; a range starting after the last bin fails with ErrOutOfRange.
func (g *Grid) Fill(chrom string, lo, hi int, lrr float64) (clamped bool, err error) {
	s, ok := g.spans[chrom]
	if !ok {
		return false, fmt.Errorf("grid: unknown chromosome %q", chrom)
	}
	if lo > hi {
		return false, fmt.Errorf("grid: bad bin range %d..%d", lo, hi)
	}
	if lo > s.n-1 {
		return false, fmt.Errorf("%w: %s bins %d..%d, last bin %d", ErrOutOfRange, chrom, lo, hi, s.n-1)
	}
	if lo < 0 {
		lo, clamped = 0, true
	}
	if hi > s.n-1 {
		hi, clamped = s.n-1, true
	}
	for i := lo; i <= hi; i++ {
		g.lrr[s.offset+i] = lrr
	}
	return clamped, nil
}

// Compatible returns an error unless g and o share precision, chromosomes
// and bin layout.
func (g *Grid) Compatible(o *Grid) error {
	if g.precision != o.precision {
		return fmt.Errorf("grid: precision mismatch %d vs %d", g.precision, o.precision)
	}
	if len(g.spans) != len(o.spans) || len(g.lrr) != len(o.lrr) {
		return fmt.Errorf("grid: layout mismatch (%d/%d chromosomes, %d/%d bins)",
			len(g.spans), len(o.spans), len(g.lrr), len(o.lrr))
	}
	for name, s := range g.spans {
		if os2, ok := o.spans[name]; !ok || os2 != s {
			return fmt.Errorf("grid: layout mismatch at %s", name)
		}
	}
	return nil
}

// Equal reports whether both grids have the same layout and bin values.
func (g *Grid) Equal(o *Grid) bool {
	if g.Compatible(o) != nil {
		return false
	}
	for i, v := range g.lrr {
		if o.lrr[i] != v {
			return false
		}
	}
	return true
}
