package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/internal/parquet"
)

// ExecuteStoreExport writes every stored run, category score and concept to Parquet files
// named after outputFile. Progress is reported on w.
func ExecuteStoreExport(mgr contract.StoreManager, outputFile string, w io.Writer) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := GetStoreStatus(mgr)
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalRuns == 0 && status.TotalConcepts == 0 {
		return errors.New("no stored data found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)

	profiles := mgr.GetProfileStore()
	runs, err := profiles.GetAllProfileRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve profile runs: %w", err)
	}
	scores, err := profiles.GetAllCategoryScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve category scores: %w", err)
	}
	concepts, err := mgr.GetConceptStore().GetAllConcepts()
	if err != nil {
		return fmt.Errorf("failed to retrieve concepts: %w", err)
	}

	runsFile := outputFile + ".profile_runs.parquet"
	if err := parquet.WriteProfileRunsParquet(parquet.ConvertProfileRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write profile runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d profile runs to: %s\n", len(runs), runsFile)

	scoresFile := outputFile + ".category_scores.parquet"
	if err := parquet.WriteCategoryScoresParquet(parquet.ConvertCategoryScoreRecords(scores), scoresFile); err != nil {
		return fmt.Errorf("failed to write category scores: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d category scores to: %s\n", len(scores), scoresFile)

	conceptsFile := outputFile + ".concepts.parquet"
	if err := parquet.WriteConceptsParquet(parquet.ConvertConceptRecords(concepts), conceptsFile); err != nil {
		return fmt.Errorf("failed to write concepts: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d concepts to: %s\n", len(concepts), conceptsFile)

	return nil
}
