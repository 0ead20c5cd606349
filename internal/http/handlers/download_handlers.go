package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	models "github.com/cratestats/cratestats/internal/models"
	repo "github.com/cratestats/cratestats/internal/repo"
)

// DownloadTimeseriesHandler godoc
// @Summary Per-day download counts for a crate
// @Tags downloads
// @Accept json
// @Produce json
// @Param request body DownloadTimeseriesRequest true "crate name and optional version"
// @Success 200 {object} DownloadTimeseriesResult
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Unknown crate"
// @Router /api/v1/downloads [post]
func DownloadTimeseriesHandler(w http.ResponseWriter, r *http.Request) {
	var req DownloadTimeseriesRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	points, err := downloadRepo.GetDownloadTimeseries(req.Name, req.Version)
	if err != nil {
		if errors.Is(err, repo.ErrCrateNotFound) {
			http.Error(w, "crate not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch downloads", http.StatusInternalServerError)
		return
	}
	if points == nil {
		points = []models.DownloadPoint{}
	}

	result := DownloadTimeseriesResult{
		Name:      req.Name,
		Version:   req.Version,
		Downloads: points,
	}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
