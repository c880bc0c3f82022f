package db

import "time"

// Extraction statuses.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// Extraction represents a row in the extractions table: one recorded
// extraction attempt, successful or not.
type Extraction struct {
	ID           int64
	SourcePath   string
	OutputPath   string
	StartSeconds int
	EndSeconds   int
	Status       string
	Error        string
	CreatedAt    time.Time
}
