// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"errors"
	"time"

	"github.com/Daniromero1410/Mentis/schema"
)

// ErrRecordNotFound is returned by stores when a lookup matches no row.
var ErrRecordNotFound = errors.New("record not found")

// StoreManager defines the interface for managing persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetProfileStore() ProfileStore
	GetConceptStore() ConceptStore
}

// ProfileStore defines the interface for tracking profile runs and their category scores.
type ProfileStore interface {
	// BeginRun creates a new profile run and returns its unique ID
	BeginRun(startTime time.Time, run schema.ProfileRunRecord) (int64, error)

	// EndRun updates the run with the classification outcome
	EndRun(runID int64, endTime time.Time, profile schema.ProfileSummary) error

	// RecordCategoryScore stores one aggregated category of a run
	RecordCategoryScore(runID int64, score schema.CategoryScore) error

	// GetStatus returns status information about the store
	GetStatus() (schema.StoreStatus, error)

	// GetAllProfileRuns retrieves all runs ordered by ID
	GetAllProfileRuns() ([]schema.ProfileRunRecord, error)

	// GetAllCategoryScores retrieves all category scores ordered by run
	GetAllCategoryScores() ([]schema.CategoryScoreRecord, error)

	// Close closes the underlying connection
	Close() error
}

// ConceptStore defines the interface for persisting generated concepts by evaluation.
type ConceptStore interface {
	// UpsertConcept inserts or replaces the concept of an evaluation
	UpsertConcept(record schema.ConceptRecord) error

	// GetConcept returns the stored concept of an evaluation
	GetConcept(evaluationID string) (schema.ConceptRecord, error)

	// CountConcepts returns the number of stored concepts
	CountConcepts() (int, error)

	// GetAllConcepts retrieves all stored concepts ordered by evaluation ID
	GetAllConcepts() ([]schema.ConceptRecord, error)

	// Close closes the underlying connection
	Close() error
}
