package core

import (
	"context"
	"errors"
	"time"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/internal/iocache"
	"github.com/Daniromero1410/Mentis/internal/outwriter"
	"github.com/Daniromero1410/Mentis/schema"
)

// ExecutorFunc defines the function signature shared by the command entry points.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ErrParquetOutput is returned when parquet output is requested outside of store export.
var ErrParquetOutput = errors.New("parquet output is only supported by store export")

// ExecuteProfile computes the risk profile of an assessment and prints it.
func ExecuteProfile(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if cfg.Output == schema.ParquetOut {
		return ErrParquetOutput
	}
	ev, err := runEvaluation(ctx, cfg, mgr, false)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteProfile(ev.assessment.EvaluationID, ev.assessment.SubjectName, ev.profile, cfg, duration)
}

// ExecuteConcept writes the concept of an assessment, stores it and prints it.
func ExecuteConcept(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetOutput
	}
	ev, err := runEvaluation(ctx, cfg, mgr, true)
	if err != nil {
		return err
	}
	report := ev.conceptReport()
	recordConcept(mgr, report)
	return outwriter.NewOutWriter().WriteConcept(report, cfg)
}

// GetProfileResults evaluates an in-memory assessment and returns its profile report.
// The run is recorded in mgr when a store is configured.
func GetProfileResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, a *schema.Assessment) (schema.ProfileReport, error) {
	ev, err := evaluateAssessment(ctx, cfg, mgr, a, false)
	if err != nil {
		return schema.ProfileReport{}, err
	}
	return schema.NewProfileReport(ev.assessment.EvaluationID, ev.assessment.SubjectName, ev.profile), nil
}

// GetConceptResults evaluates an in-memory assessment, stores its concept and returns it.
func GetConceptResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, a *schema.Assessment) (schema.ConceptReport, error) {
	ev, err := evaluateAssessment(ctx, cfg, mgr, a, true)
	if err != nil {
		return schema.ConceptReport{}, err
	}
	report := ev.conceptReport()
	recordConcept(mgr, report)
	return report, nil
}

// ExecuteCatalog prints the item catalog, optionally limited to one category.
func ExecuteCatalog(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetOutput
	}
	var entries []schema.CatalogEntry
	if cfg.Category != "" {
		entries = schema.Catalog(cfg.Category)
	} else {
		entries = schema.Catalog()
	}
	return outwriter.NewOutWriter().WriteCatalog(entries, cfg)
}

// ExecuteStoreStatus prints the status of the configured store.
func ExecuteStoreStatus(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.Output == schema.ParquetOut {
		return ErrParquetOutput
	}
	status, err := iocache.GetStoreStatus(mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStatus(status, cfg)
}
