package handlers

import (
	repo "github.com/cratestats/cratestats/internal/repo"
	"github.com/cratestats/cratestats/internal/view"
)

var (
	table        view.CategoryTable
	downloadRepo repo.DownloadRepository
)

// SetCategoryTable installs the category table loaded at startup. The table
// is read-only from here on; handlers only take prefix slices of it.
func SetCategoryTable(t view.CategoryTable) {
	table = t
}

func SetDownloadRepo(r repo.DownloadRepository) {
	downloadRepo = r
}
