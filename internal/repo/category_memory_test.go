package repo_test

import (
	"errors"
	"testing"

	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/repo"
)

func TestInMemoryCategoryRepositoryReturnsCopies(t *testing.T) {
	r := repo.NewInMemoryCategoryRepository([]models.CategoryCount{
		{Category: "games", CrateCount: 50},
	})

	first, err := r.GetCategoryCounts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Category = "mutated"

	second, _ := r.GetCategoryCounts()
	if second[0].Category != "games" {
		t.Errorf("repository leaked internal state: got %q", second[0].Category)
	}
}

func TestInMemoryCategoryRepositoryFailWith(t *testing.T) {
	r := repo.NewInMemoryCategoryRepository(nil)
	r.FailWith(repo.ErrDataSource)

	_, err := r.GetCategoryCounts()
	if !errors.Is(err, repo.ErrDataSource) {
		t.Errorf("expected ErrDataSource, got %v", err)
	}
}

func TestInMemoryDownloadRepositoryUnknownCrate(t *testing.T) {
	r := repo.NewInMemoryDownloadRepository()

	_, err := r.GetDownloadTimeseries("nope", "")
	if !errors.Is(err, repo.ErrCrateNotFound) {
		t.Errorf("expected ErrCrateNotFound, got %v", err)
	}
}
