package handlers

import (
	"log"
	"net/http"
	"strconv"

	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/view"
)

// GetCategoriesHandler godoc
// @Summary Full crates-by-category table
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryCount
// @Router /api/v1/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	rows := table.Rows()
	response := make([]models.CategoryCount, len(rows))
	copy(response, rows)

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetTopCategoriesHandler godoc
// @Summary Chart specs for the top-N categories
// @Description N comes from the slider; out-of-range values are clamped, a
// missing or malformed value shows the full table.
// @Tags categories
// @Produce json
// @Param n query int false "number of categories to show"
// @Success 200 {object} TopCategoriesResult
// @Router /api/v1/categories/top [get]
func GetTopCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	n := table.Len()
	if raw := r.URL.Query().Get("n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}

	v := view.New(table)
	bar, pie := v.SetSelectedCount(n)

	result := TopCategoriesResult{
		Selected: v.SelectedCount(),
		Total:    table.Len(),
		Bar:      bar,
		Pie:      pie,
	}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
