// internal/appcore/core.go
package appcore

import (
	"github.com/sirupsen/logrus"

	"cnvdist/internal/genome"
	"cnvdist/internal/grid"
	"cnvdist/internal/output"
	"cnvdist/internal/profile"
	"cnvdist/internal/score"
)

// Options configures one comparison.
type Options struct {
	File1, File2 string
	Precision    int
	GenomeFile   string // chrom.sizes; empty selects hg19
}

// Table resolves the chromosome length table for o.
func Table(o Options) (*genome.Table, error) {
	if o.GenomeFile == "" {
		return genome.HG19(), nil
	}
	return genome.LoadSizes(o.GenomeFile)
}

// Run builds a reference grid per profile, loads both files and scores
// profile 2 against profile 1.
func Run(o Options, log *logrus.Logger) (output.Report, error) {
	table, err := Table(o)
	if err != nil {
		return output.Report{}, err
	}

	var (
		grids [2]*grid.Grid
		stats [2]profile.Stats
	)
	for i, path := range [2]string{o.File1, o.File2} {
		if grids[i], err = grid.New(table, o.Precision); err != nil {
			return output.Report{}, err
		}
		if stats[i], err = profile.Load(grids[i], path, log); err != nil {
			return output.Report{}, err
		}
	}
	log.WithFields(logrus.Fields{
		"chromosomes": table.Len(),
		"bins":        grids[0].Len(),
		"precision":   o.Precision,
	}).Debug("grids ready")

	var trace logrus.FieldLogger
	if log.IsLevelEnabled(logrus.TraceLevel) {
		trace = log
	}
	res, err := score.Compare(grids[0], grids[1], trace)
	if err != nil {
		return output.Report{}, err
	}
	log.WithFields(logrus.Fields{
		"cn_distance":  res.CN,
		"lrr_distance": res.LRR,
	}).Debug("scored")
	return output.Report{Result: res, Profiles: stats[:]}, nil
}
