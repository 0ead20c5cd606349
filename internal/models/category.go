package models

// CategoryCount is one row of the crates-by-category aggregation: a category
// label and the number of crates assigned to it.
type CategoryCount struct {
	Category   string `json:"category"`
	CrateCount int64  `json:"crate_count"`
}
