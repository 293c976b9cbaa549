package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"cnvdist/pkg/api"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func run(argv ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sizes := write(t, dir, "chr1.sizes", "chr1\t249250621\n")
	a := write(t, dir, "a.tsv", "chr1\t0-80000\t1.0\t3\n")
	b := write(t, dir, "b.tsv", "")

	code, out, errOut := run("--genome", sizes, a, b)
	if code != ExitOK {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	if out != "Score: 0.01 * 10^-1\n" {
		t.Fatalf("stdout %q", out)
	}
}

func TestSymmetricOutput(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", "chr1\t0-5000000\t0.9\nchr3\t100000-800000\t-2\t0\nchrX\t1000000-9000000\t0.58\n")
	b := write(t, dir, "b.tsv", "chr1\t2500000-7500000\t-0.4\t1\nchr17\t0-81195210\t0.3\n")

	_, ab, _ := run(a, b)
	_, ba, _ := run(b, a)
	if ab != ba || !strings.HasPrefix(ab, "Score: ") || !strings.HasSuffix(ab, " * 10^-1\n") {
		t.Fatalf("asymmetric or malformed: %q vs %q", ab, ba)
	}
	_, self, _ := run(a, a)
	if self != "Score: 0 * 10^-1\n" {
		t.Fatalf("self score %q", self)
	}
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", "chr2\t0-80000\t1\nchr2\t0-100\t5\n")
	b := write(t, dir, "b.tsv", "")

	code, out, errOut := run("-o", "json", a, b)
	if code != ExitOK {
		t.Fatalf("exit %d, err=%s", code, errOut)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	if rep.CNDistance != 6 || rep.Precision != 40000 || len(rep.Chromosomes) != 24 {
		t.Fatalf("report %+v", rep)
	}
	if rep.Profiles[0].Applied != 1 || rep.Profiles[0].Skipped != 1 {
		t.Fatalf("profile stats %+v", rep.Profiles[0])
	}
}

func TestGzipInput(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "a.tsv.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	_, _ = zw.Write([]byte("chr1\t0-80000\t1.0\n"))
	_ = zw.Close()
	_ = fh.Close()
	plain := write(t, dir, "a.tsv", "chr1\t0-80000\t1.0\n")
	empty := write(t, dir, "e.tsv", "")

	_, fromGz, _ := run(gz, empty)
	_, fromPlain, _ := run(plain, empty)
	if fromGz == "" || fromGz != fromPlain {
		t.Fatalf("gzip %q vs plain %q", fromGz, fromPlain)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, argv := range [][]string{nil, {"one.tsv"}, {"a", "b", "c"}, {"-o", "xml", "a", "b"}} {
		code, out, errOut := run(argv...)
		if code != ExitUsage {
			t.Fatalf("%v: exit %d want %d", argv, code, ExitUsage)
		}
		if out != "" {
			t.Fatalf("%v: nothing should reach stdout, got %q", argv, out)
		}
		if !strings.Contains(strings.ToLower(errOut), "usage") {
			t.Fatalf("%v: usage not printed on stderr: %q", argv, errOut)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run("--help")
	if code != ExitOK || !strings.Contains(out, "FILE1") {
		t.Fatalf("help: exit %d out %q", code, out)
	}
	code, out, _ = run("--version")
	if code != ExitOK || !strings.HasPrefix(out, "cnvdist version ") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
}

func TestInputErrors(t *testing.T) {
	dir := t.TempDir()
	good := write(t, dir, "good.tsv", "chr1\t0-80000\t1\n")
	bad := write(t, dir, "bad.tsv", "chr1\t0-80000\t1\nchr1\t0-80000\n")
	unknown := write(t, dir, "unknown.tsv", "chrZZ\t0-80000\t1\n")
	sizes := write(t, dir, "small.sizes", "chr1\t249250621\nchr2\t1000000\n")
	beyond := write(t, dir, "beyond.tsv", "chr2\t5000000-6000000\t1.5\n")

	cases := []struct {
		argv []string
		want string
	}{
		{[]string{good, filepath.Join(dir, "missing.tsv")}, "missing.tsv"},
		{[]string{good, bad}, "bad.tsv:2"},
		{[]string{unknown, good}, "chrZZ"},
		{[]string{"-g", sizes, good, beyond}, "beyond.tsv:1"},
		{[]string{"--precision=0", good, good}, "precision"},
	}
	for _, c := range cases {
		code, out, errOut := run(c.argv...)
		if code != ExitInput {
			t.Fatalf("%v: exit %d want %d (stderr %q)", c.argv, code, ExitInput, errOut)
		}
		if out != "" {
			t.Fatalf("%v: partial output %q", c.argv, out)
		}
		if !strings.Contains(errOut, c.want) {
			t.Fatalf("%v: stderr %q lacks %q", c.argv, errOut, c.want)
		}
	}
}

func TestVerboseLogsStats(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", "chr1\t0-80000\t1\n")
	code, _, errOut := run("-v", a, a)
	if code != ExitOK || !strings.Contains(errOut, "profile loaded") {
		t.Fatalf("exit %d stderr %q", code, errOut)
	}
	code, _, errOut = run("-q", a, a)
	if code != ExitOK || errOut != "" {
		t.Fatalf("quiet: exit %d stderr %q", code, errOut)
	}
}
