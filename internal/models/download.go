package models

// DownloadPoint is one day of download counts for a crate.
type DownloadPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Downloads int64  `json:"downloads"`
}
