package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
)

// ExtractionRun tracks one batch invocation over a set of source documents.
type ExtractionRun struct {
	ID          uuid.UUID
	StartedAt   time.Time
	FinishedAt  time.Time
	Status      constants.RunStatus
	SourceCount int
	RecordCount int
	Message     string
}
