package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	models "github.com/cratestats/cratestats/internal/models"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetCategoryCounts runs the one aggregation the dashboard is built on:
// one row per category with the number of crates assigned to it. The
// secondary sort by category name keeps equal counts in a stable order
// across renders.
func (r *PostgresCategoryRepository) GetCategoryCounts() ([]models.CategoryCount, error) {
	query := `
		SELECT categories.category, COUNT(crates_categories.crate_id) AS crate_count
		FROM categories
		LEFT JOIN crates_categories ON categories.id = crates_categories.category_id
		GROUP BY categories.category
		ORDER BY crate_count DESC, categories.category ASC
	`
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.CrateCount); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return counts, nil
}
