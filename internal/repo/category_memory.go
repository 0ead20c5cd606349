package repo

import (
	models "github.com/cratestats/cratestats/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository, used in tests.
type InMemoryCategoryRepository struct {
	counts []models.CategoryCount
	err    error
}

// NewInMemoryCategoryRepository creates a repository serving the given rows.
func NewInMemoryCategoryRepository(counts []models.CategoryCount) *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{counts: counts}
}

// GetCategoryCounts returns a copy of the seeded rows.
func (r *InMemoryCategoryRepository) GetCategoryCounts() ([]models.CategoryCount, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.CategoryCount, len(r.counts))
	copy(out, r.counts)
	return out, nil
}

// FailWith makes every subsequent call return err, for exercising the
// fatal-startup path.
func (r *InMemoryCategoryRepository) FailWith(err error) {
	r.err = err
}
