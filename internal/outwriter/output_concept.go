package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// WriteConceptResults outputs a generated concept, dispatching on the configured output format.
func WriteConceptResults(report schema.ConceptReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConceptCSV(w, report)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConceptText(w, report, cfg)
		}, "Wrote text")
	}
	return nil
}

// writeConceptCSV writes the concept as a single row.
func writeConceptCSV(w io.Writer, report schema.ConceptReport) error {
	header := []string{"evaluation_id", "subject", "variant", "nivel_global", "analysis", "recommendations", "full"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			report.EvaluationID,
			report.SubjectName,
			string(report.Variant),
			string(report.GlobalSeverity),
			report.Analysis,
			report.Recommendations,
			report.Full,
		})
	})
}

// writeConceptText writes a heading followed by the wrapped concept.
// Text written to a file is not wrapped.
func writeConceptText(w io.Writer, report schema.ConceptReport, cfg *contract.Config) error {
	heading := fmt.Sprintf("Concepto %s | %s | Nivel global: %s",
		report.Variant, report.SubjectName, contract.GetColorLabel(report.GlobalSeverity))
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	body := report.Full
	if cfg.OutputFile == "" {
		body = wrapText(body, getTextWidth(cfg))
	}
	_, err := fmt.Fprintln(w, body)
	return err
}
