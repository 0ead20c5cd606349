package handlers

import (
	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/view"
)

type TopCategoriesResult struct {
	Selected int          `json:"selected"`
	Total    int          `json:"total"`
	Bar      view.BarSpec `json:"bar"`
	Pie      view.PieSpec `json:"pie"`
}

type DownloadTimeseriesRequest struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type DownloadTimeseriesResult struct {
	Name      string                 `json:"name"`
	Version   string                 `json:"version,omitempty"`
	Downloads []models.DownloadPoint `json:"downloads"`
}
