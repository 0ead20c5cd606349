package repo

import (
	"encoding/json"
	"log"
	"time"

	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/redissvc"
)

const downloadCacheTTL = 10 * time.Minute

// CachedDownloadRepository is a cache-aside wrapper around another
// DownloadRepository. Redis failures are treated as cache misses so the
// service keeps answering when the cache is down.
type CachedDownloadRepository struct {
	inner DownloadRepository
	rs    *redissvc.RedisService
}

func NewCachedDownloadRepository(inner DownloadRepository, rs *redissvc.RedisService) *CachedDownloadRepository {
	return &CachedDownloadRepository{inner: inner, rs: rs}
}

func (r *CachedDownloadRepository) GetDownloadTimeseries(name string, version string) ([]models.DownloadPoint, error) {
	key := "downloads:" + name + "@" + version

	if cached, err := r.rs.Rdb().Get(r.rs.Ctx(), key).Result(); err == nil {
		var points []models.DownloadPoint
		if err := json.Unmarshal([]byte(cached), &points); err == nil {
			return points, nil
		}
	}

	points, err := r.inner.GetDownloadTimeseries(name, version)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(points); err == nil {
		if err := r.rs.Rdb().Set(r.rs.Ctx(), key, payload, downloadCacheTTL).Err(); err != nil {
			log.Printf("Failed to cache download series for %s: %v", name, err)
		}
	}
	return points, nil
}
