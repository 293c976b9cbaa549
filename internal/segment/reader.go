// internal/segment/reader.go
package segment

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseError reports a malformed line.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d %s", e.File, e.Line, e.Msg)
}

const maxLine = 1 << 20

// Reader yields segments in file order.
type Reader struct {
	sc   *bufio.Scanner
	name string
	ln   int
}

// NewReader wraps r; name is used in error messages.
func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Reader{sc: sc, name: name}
}

// Name returns the source name given to NewReader.
func (r *Reader) Name() string { return r.name }

// Read returns the next segment, skipping blank lines. It returns io.EOF
// after the last segment.
func (r *Reader) Read() (Segment, error) {
	for r.sc.Scan() {
		r.ln++
		line := strings.TrimRight(r.sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, msg := parse(line)
		if msg != "" {
			return Segment{}, &ParseError{File: r.name, Line: r.ln, Msg: msg}
		}
		s.Line = r.ln
		return s, nil
	}
	if err := r.sc.Err(); err != nil {
		return Segment{}, fmt.Errorf("%s:%d %w", r.name, r.ln+1, err)
	}
	return Segment{}, io.EOF
}

func parse(line string) (Segment, string) {
	f := strings.Split(line, "\t")
	if len(f) == 4 && strings.TrimSpace(f[3]) == "" {
		f = f[:3]
	}
	if len(f) != 3 && len(f) != 4 {
		return Segment{}, fmt.Sprintf("bad field count: want 3 or 4 tab-separated fields, got %d", len(f))
	}
	var s Segment
	s.Chrom = strings.TrimSpace(f[0])
	if s.Chrom == "" {
		return s, "empty chromosome"
	}

	from, to, ok := strings.Cut(strings.TrimSpace(f[1]), "-")
	if !ok {
		return s, fmt.Sprintf("bad range %q: want start-end", f[1])
	}
	var err error
	if s.From, err = strconv.Atoi(from); err != nil || s.From < 0 {
		return s, fmt.Sprintf("bad start %q", from)
	}
	if s.To, err = strconv.Atoi(to); err != nil || s.To < 0 {
		return s, fmt.Sprintf("bad end %q", to)
	}
	if s.From > s.To {
		return s, fmt.Sprintf("start %d exceeds end %d", s.From, s.To)
	}

	if s.LRR, err = parseFinite(f[2]); err != nil {
		return s, fmt.Sprintf("bad LRR %q", f[2])
	}
	if len(f) == 4 {
		v := strings.TrimSpace(f[3])
		switch v {
		case "NA", ".":
		default:
			if s.CopyNumber, err = parseFinite(v); err != nil {
				return s, fmt.Sprintf("bad copy number %q", f[3])
			}
			s.HasCopyNumber = true
		}
	}
	return s, ""
}

func parseFinite(v string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("non-finite value %q", v)
	}
	return x, nil
}
