package repo

import (
	"errors"

	models "github.com/cratestats/cratestats/internal/models"
)

// ErrDataSource signals that the category aggregation query could not run.
// The dashboard has nothing to render without it, so startup treats this as
// fatal and does not retry.
var ErrDataSource = errors.New("data source unavailable")

// CategoryRepository provides the pre-aggregated crates-by-category rows.
type CategoryRepository interface {
	GetCategoryCounts() ([]models.CategoryCount, error)
}
