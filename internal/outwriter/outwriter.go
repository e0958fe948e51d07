// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// OutWriter provides a unified interface for all output operations.
// It hides the output formats from the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProfile prints a risk profile using the configured output format.
func (ow *OutWriter) WriteProfile(evaluationID, subjectName string, profile schema.ProfileSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteProfileResults(evaluationID, subjectName, profile, cfg, duration)
}

// WriteConcept prints a generated concept using the configured output format.
func (ow *OutWriter) WriteConcept(report schema.ConceptReport, cfg *contract.Config) error {
	return WriteConceptResults(report, cfg)
}

// WriteCatalog prints catalog questions using the configured output format.
func (ow *OutWriter) WriteCatalog(entries []schema.CatalogEntry, cfg *contract.Config) error {
	return WriteCatalogEntries(entries, cfg)
}

// WriteStatus prints the store status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return WriteStoreStatus(status, cfg)
}
