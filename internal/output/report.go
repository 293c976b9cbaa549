// internal/output/report.go
package output

import (
	"cnvdist/internal/profile"
	"cnvdist/internal/score"
	"cnvdist/pkg/api"
)

// Report is everything a renderer may print about one comparison.
type Report struct {
	Result   score.Result
	Profiles []profile.Stats
}

// ToAPI converts a Report into the public wire type.
func ToAPI(r Report) api.ReportV1 {
	v := api.ReportV1{
		Score:       r.Result.Value(),
		CNDistance:  r.Result.CN,
		LRRDistance: r.Result.LRR,
		TotalBins:   r.Result.TotalBins,
		Precision:   r.Result.Precision,
		Profiles:    make([]api.ProfileV1, 0, len(r.Profiles)),
	}
	for _, p := range r.Profiles {
		v.Profiles = append(v.Profiles, api.ProfileV1{
			File:     p.File,
			Segments: p.Lines,
			Applied:  p.Applied,
			Skipped:  p.Skipped,
			Clamped:  p.Clamped,
		})
	}
	for _, c := range r.Result.Chromosomes {
		v.Chromosomes = append(v.Chromosomes, api.ChromosomeV1{
			Name:        c.Name,
			Bins:        c.Bins,
			CNDistance:  c.CN,
			LRRDistance: c.LRR,
		})
	}
	return v
}
