// internal/genome/table.go
package genome

import (
	"fmt"

	"github.com/biogo/biogo/feat"
)

// Chromosome is a named reference sequence of known length.
type Chromosome struct {
	Chrom  string
	Length int
}

var _ feat.Feature = (*Chromosome)(nil)

func (c *Chromosome) Name() string           { return c.Chrom }
func (c *Chromosome) Start() int             { return 0 }
func (c *Chromosome) End() int               { return c.Length }
func (c *Chromosome) Len() int               { return c.Length }
func (c *Chromosome) Description() string    { return "chromosome" }
func (c *Chromosome) Location() feat.Feature { return nil }

func (c *Chromosome) String() string { return fmt.Sprintf("%s:0-%d", c.Chrom, c.Length) }

// Table is an immutable chromosome length table. Chromosomes are kept in
// canonical order (see Compare).
type Table struct {
	chroms []*Chromosome
	index  map[string]*Chromosome
}

// NewTable builds a Table from name → length pairs.
func NewTable(lengths map[string]int) (*Table, error) {
	list := make([]Chromosome, 0, len(lengths))
	for name, l := range lengths {
		list = append(list, Chromosome{Chrom: name, Length: l})
	}
	return newTable(list)
}

func newTable(list []Chromosome) (*Table, error) {
	t := &Table{index: make(map[string]*Chromosome, len(list))}
	for i := range list {
		c := list[i]
		if c.Chrom == "" {
			return nil, fmt.Errorf("genome: empty chromosome name")
		}
		if c.Length <= 0 {
			return nil, fmt.Errorf("genome: chromosome %s has non-positive length %d", c.Chrom, c.Length)
		}
		if _, dup := t.index[c.Chrom]; dup {
			return nil, fmt.Errorf("genome: duplicate chromosome %s", c.Chrom)
		}
		t.index[c.Chrom] = &c
		t.chroms = append(t.chroms, &c)
	}
	SortChromosomes(t.chroms)
	return t, nil
}

// Lookup returns the chromosome called name.
func (t *Table) Lookup(name string) (*Chromosome, bool) {
	c, ok := t.index[name]
	return c, ok
}

// Chromosomes returns the table in canonical order. The slice is shared.
func (t *Table) Chromosomes() []*Chromosome { return t.chroms }

// Len returns the number of chromosomes.
func (t *Table) Len() int { return len(t.chroms) }

// Names returns chromosome names in canonical order.
func (t *Table) Names() []string {
	names := make([]string, len(t.chroms))
	for i, c := range t.chroms {
		names[i] = c.Chrom
	}
	return names
}
