package repo

import (
	"errors"

	models "github.com/cratestats/cratestats/internal/models"
)

var ErrCrateNotFound = errors.New("crate not found")

// DownloadRepository serves per-day download counts for a crate, optionally
// restricted to a single version.
type DownloadRepository interface {
	GetDownloadTimeseries(name string, version string) ([]models.DownloadPoint, error)
}
