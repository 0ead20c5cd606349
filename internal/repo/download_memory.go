package repo

import (
	models "github.com/cratestats/cratestats/internal/models"
)

type seriesKey struct {
	name    string
	version string
}

// InMemoryDownloadRepository is an in-memory implementation of
// DownloadRepository, used in tests.
type InMemoryDownloadRepository struct {
	series map[seriesKey][]models.DownloadPoint
	crates map[string]bool
}

func NewInMemoryDownloadRepository() *InMemoryDownloadRepository {
	return &InMemoryDownloadRepository{
		series: map[seriesKey][]models.DownloadPoint{},
		crates: map[string]bool{},
	}
}

// AddSeries registers a download series for a crate. Use an empty version for
// the all-versions aggregate.
func (r *InMemoryDownloadRepository) AddSeries(name, version string, points []models.DownloadPoint) {
	r.crates[name] = true
	r.series[seriesKey{name, version}] = points
}

func (r *InMemoryDownloadRepository) GetDownloadTimeseries(name string, version string) ([]models.DownloadPoint, error) {
	if !r.crates[name] {
		return nil, ErrCrateNotFound
	}
	points := r.series[seriesKey{name, version}]
	out := make([]models.DownloadPoint, len(points))
	copy(out, points)
	return out, nil
}
