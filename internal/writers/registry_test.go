package writers

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", b.String())
	}
}

func TestRegisterLastWins(t *testing.T) {
	Register("x-test", func(w io.Writer, _ interface{}) error { _, err := io.WriteString(w, "one"); return err })
	Register("x-test", func(w io.Writer, p interface{}) error { _, err := fmt.Fprint(w, "two:", p); return err })
	defer delete(reportWriters, "x-test")

	var b bytes.Buffer
	if err := Write("x-test", &b, 7); err != nil {
		t.Fatal(err)
	}
	if b.String() != "two:7" {
		t.Fatalf("got %q", b.String())
	}
	if !Has("x-test") {
		t.Fatalf("Has should report registered format")
	}
	found := false
	for _, f := range Formats() {
		if f == "x-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Formats missing x-test: %v", Formats())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Fatal("nil is not a broken pipe")
	}
	if !IsBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)) {
		t.Fatal("wrapped ErrClosedPipe should count")
	}
	if IsBrokenPipe(io.EOF) {
		t.Fatal("EOF is not a broken pipe")
	}
}
