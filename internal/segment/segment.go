// Package segment reads CNV segment files.
//
// One segment per line, tab separated, no header:
//
//	chromosome	start-end	LRR	[copyNumber]
//
// The copy number column is optional and carried through untouched.
package segment

import (
	"fmt"

	"github.com/biogo/biogo/feat"
)

// Segment is one parsed input record.
type Segment struct {
	Chrom string
	From  int // start position, bp
	To    int // end position, bp

	LRR           float64
	CopyNumber    float64
	HasCopyNumber bool

	Line int // 1-based line number in the source

	// Ref is the reference sequence the segment lies on. The reader
	// leaves it nil; loaders resolve it against their length table.
	Ref feat.Feature
}

var _ feat.Feature = Segment{}

func (s Segment) Name() string           { return fmt.Sprintf("%s:%d-%d", s.Chrom, s.From, s.To) }
func (s Segment) Description() string    { return "CNV segment" }
func (s Segment) Start() int             { return s.From }
func (s Segment) End() int               { return s.To }
func (s Segment) Len() int               { return s.To - s.From }
func (s Segment) Location() feat.Feature { return s.Ref }
