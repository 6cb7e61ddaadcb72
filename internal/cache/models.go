package cache

import "github.com/matheuskafuri/verse/internal/verse"

// Entry is the persisted snapshot of one day's verse.
type Entry struct {
	Date string `json:"date"`
	verse.Record
}
