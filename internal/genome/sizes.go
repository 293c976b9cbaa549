// internal/genome/sizes.go
package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SizesError reports a bad line in a chrom.sizes file.
type SizesError struct {
	File string
	Line int
	Msg  string
}

func (e *SizesError) Error() string {
	return fmt.Sprintf("%s:%d %s", e.File, e.Line, e.Msg)
}

// ReadSizes parses a chrom.sizes table: "name<whitespace>length" per line,
// extra columns ignored. Blank lines and '#' comments are skipped.
func ReadSizes(r io.Reader, name string) (*Table, error) {
	var list []Chromosome
	seen := map[string]bool{}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, &SizesError{File: name, Line: ln, Msg: "want name and length"}
		}
		l, err := strconv.Atoi(f[1])
		if err != nil || l <= 0 {
			return nil, &SizesError{File: name, Line: ln, Msg: fmt.Sprintf("bad length %q", f[1])}
		}
		if seen[f[0]] {
			return nil, &SizesError{File: name, Line: ln, Msg: fmt.Sprintf("duplicate chromosome %s", f[0])}
		}
		seen[f[0]] = true
		list = append(list, Chromosome{Chrom: f[0], Length: l})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &SizesError{File: name, Line: ln, Msg: "no chromosomes"}
	}
	return newTable(list)
}

// LoadSizes reads a chrom.sizes file from disk.
func LoadSizes(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadSizes(fh, path)
}
