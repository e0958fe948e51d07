package outwriter

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

const statusTimeFormat = "2006-01-02 15:04:05"

// WriteStoreStatus outputs the store status as JSON or text.
func WriteStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeStatusText(w, status)
	}, "Wrote text")
}

func writeStatusText(w io.Writer, status schema.StoreStatus) error {
	lines := []string{
		fmt.Sprintf("Store Backend: %s", status.Backend),
		fmt.Sprintf("Connected: %t", status.Connected),
	}
	if status.Connected {
		lines = append(lines, fmt.Sprintf("Total Runs: %d", status.TotalRuns))
		if status.TotalRuns > 0 {
			lines = append(lines,
				fmt.Sprintf("Last Run ID: %d", status.LastRunID),
				fmt.Sprintf("Last Run: %s", status.LastRunTime.Format(statusTimeFormat)),
				fmt.Sprintf("Oldest Run: %s", status.OldestRunTime.Format(statusTimeFormat)),
			)
		}
		lines = append(lines, fmt.Sprintf("Total Concepts: %d", status.TotalConcepts))
		if len(status.TableSizes) > 0 {
			lines = append(lines, "Table Sizes:")
			for _, table := range slices.Sorted(maps.Keys(status.TableSizes)) {
				lines = append(lines, fmt.Sprintf("  %s: %d rows", table, status.TableSizes[table]))
			}
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
