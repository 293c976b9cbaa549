// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one profile comparison.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Score       float64        `json:"score"`       // round(1000*cn_distance/total_bins)/100, unit 10^-1
	CNDistance  float64        `json:"cn_distance"` // sum of |cn2-cn1| over all bins
	LRRDistance float64        `json:"lrr_distance"`
	TotalBins   int            `json:"total_bins"`
	Precision   int            `json:"precision"`
	Profiles    []ProfileV1    `json:"profiles"`
	Chromosomes []ChromosomeV1 `json:"chromosomes,omitempty"`
}

// ProfileV1 describes how one input file was loaded.
type ProfileV1 struct {
	File     string `json:"file"`
	Segments int    `json:"segments"`
	Applied  int    `json:"applied"`
	Skipped  int    `json:"skipped"`
	Clamped  int    `json:"clamped,omitempty"`
}

// ChromosomeV1 is one chromosome's share of the distance.
type ChromosomeV1 struct {
	Name        string  `json:"name"`
	Bins        int     `json:"bins"`
	CNDistance  float64 `json:"cn_distance"`
	LRRDistance float64 `json:"lrr_distance"`
}
