package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"cnvdist/internal/profile"
	"cnvdist/internal/score"
	"cnvdist/internal/writers"
	"cnvdist/pkg/api"
)

func sample() Report {
	return Report{
		Result: score.Result{
			CN:        6,
			LRR:       3,
			TotalBins: 6232,
			Precision: 40000,
			Chromosomes: []score.Chromosome{
				{Name: "chr1", Bins: 6232, CN: 6, LRR: 3},
			},
		},
		Profiles: []profile.Stats{
			{File: "a.tsv", Lines: 2, Applied: 1, Skipped: 1},
			{File: "b.tsv"},
		},
	}
}

func TestTextLine_Stable(t *testing.T) {
	var b bytes.Buffer
	if err := writers.Write(FormatText, &b, sample()); err != nil {
		t.Fatal(err)
	}
	const want = "Score: 0.01 * 10^-1\n"
	if b.String() != want {
		t.Fatalf("text output changed:\n got:  %q\n want: %q", b.String(), want)
	}
}

func TestJSONReport(t *testing.T) {
	var b bytes.Buffer
	if err := writers.Write(FormatJSON, &b, sample()); err != nil {
		t.Fatal(err)
	}
	var got api.ReportV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, b.String())
	}
	if got.Score != 0.01 || got.CNDistance != 6 || got.LRRDistance != 3 || got.TotalBins != 6232 || got.Precision != 40000 {
		t.Fatalf("report fields: %+v", got)
	}
	if len(got.Profiles) != 2 || got.Profiles[0].Applied != 1 || got.Profiles[0].Segments != 2 || got.Profiles[1].File != "b.tsv" {
		t.Fatalf("profiles: %+v", got.Profiles)
	}
	if len(got.Chromosomes) != 1 || got.Chromosomes[0].Name != "chr1" {
		t.Fatalf("chromosomes: %+v", got.Chromosomes)
	}
}

func TestJSONKeys_Stable(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, sample()); err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"score", "cn_distance", "lrr_distance", "total_bins", "precision", "profiles", "chromosomes"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing key %q in %s", k, b.String())
		}
	}
}

func TestWrongPayload(t *testing.T) {
	var b bytes.Buffer
	if err := writers.Write(FormatText, &b, 42); err == nil {
		t.Fatal("expected payload type error")
	}
}
