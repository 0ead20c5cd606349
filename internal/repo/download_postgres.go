package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/cratestats/cratestats/internal/models"
)

type PostgresDownloadRepository struct {
	db *sql.DB
}

func NewPostgresDownloadRepository(db *sql.DB) *PostgresDownloadRepository {
	return &PostgresDownloadRepository{db: db}
}

// GetDownloadTimeseries aggregates version_downloads per day for the named
// crate. An empty version means all versions. A crate without download rows
// yields an empty series, not an error; only an unknown crate name is
// ErrCrateNotFound.
func (r *PostgresDownloadRepository) GetDownloadTimeseries(name string, version string) ([]models.DownloadPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var crateID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM crates WHERE name = $1`, name).Scan(&crateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCrateNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT version_downloads.date, SUM(version_downloads.downloads)
		FROM versions
		JOIN version_downloads ON versions.id = version_downloads.version_id
		WHERE versions.crate_id = $1
	`
	args := []any{crateID}
	if version != "" {
		query += ` AND versions.num = $2`
		args = append(args, version)
	}
	query += `
		GROUP BY version_downloads.date
		ORDER BY version_downloads.date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.DownloadPoint
	for rows.Next() {
		var date time.Time
		var downloads int64
		if err := rows.Scan(&date, &downloads); err != nil {
			return nil, err
		}
		points = append(points, models.DownloadPoint{
			Date:      date.Format("2006-01-02"),
			Downloads: downloads,
		})
	}
	return points, rows.Err()
}
