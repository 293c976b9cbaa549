// internal/genome/compare.go
package genome

import (
	"sort"
	"strings"
)

// Compare orders chromosome names the way karyotypes are usually listed:
// chr1, chr2, ..., chr22, chrX, chrY. A leading "chr" is ignored regardless
// of case. Numeric names come before non-numeric ones, numeric names compare
// by value and the rest compare lexicographically. Names that tie on that
// key are ordered by their full spelling, so Compare is a total order.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := residual(a), residual(b)
	na, nb := isNumeric(ra), isNumeric(rb)
	var c int
	switch {
	case na && !nb:
		return -1
	case !na && nb:
		return 1
	case na && nb:
		c = compareDigits(ra, rb)
	default:
		c = strings.Compare(ra, rb)
	}
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Sort sorts names in place in canonical order.
func Sort(names []string) {
	sort.Slice(names, func(i, j int) bool { return Less(names[i], names[j]) })
}

// SortChromosomes sorts chromosomes in place by name in canonical order.
func SortChromosomes(cs []*Chromosome) {
	sort.Slice(cs, func(i, j int) bool { return Less(cs[i].Chrom, cs[j].Chrom) })
}

func residual(name string) string {
	if len(name) >= 3 && strings.EqualFold(name[:3], "chr") {
		return name[3:]
	}
	return name
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// compareDigits compares two decimal digit strings by value without
// converting them, so arbitrarily long names cannot overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
