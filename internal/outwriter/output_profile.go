package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// jsonProfile is the JSON document of a profile: the compact summary plus the full category detail.
type jsonProfile struct {
	schema.ProfileReport
	CategoryScores []schema.CategoryScore `json:"category_scores"`
}

// WriteProfileResults outputs a risk profile, dispatching on the configured output format.
func WriteProfileResults(evaluationID, subjectName string, profile schema.ProfileSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileJSON(w, evaluationID, subjectName, profile)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileCSV(w, evaluationID, subjectName, profile, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProfileTable(w, evaluationID, subjectName, profile, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// writeProfileJSON writes the profile report with the category detail.
func writeProfileJSON(w io.Writer, evaluationID, subjectName string, profile schema.ProfileSummary) error {
	scores := profile.CategoryScores
	if scores == nil {
		scores = []schema.CategoryScore{}
	}
	return writeJSON(w, jsonProfile{
		ProfileReport:  schema.NewProfileReport(evaluationID, subjectName, profile),
		CategoryScores: scores,
	})
}

// writeProfileCSV writes one row per scored category, repeating the global outcome on each row.
func writeProfileCSV(w io.Writer, evaluationID, subjectName string, profile schema.ProfileSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"evaluation_id",
		"subject",
		"category",
		"score",
		"raw_mean",
		"tier",
		"count_alto",
		"count_medio",
		"count_bajo",
		"pct_alto",
		"pct_medio",
		"pct_bajo",
		"item_count",
		"global_score",
		"global_severity",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cs := range profile.CategoryScores {
			rec := []string{
				evaluationID,
				subjectName,
				string(cs.Category),
				fmtFloat(cs.Score),
				fmtFloat(cs.RawMean),
				string(cs.Tier),
				fmt.Sprintf(intFmt, cs.Counts.Alto),
				fmt.Sprintf(intFmt, cs.Counts.Medio),
				fmt.Sprintf(intFmt, cs.Counts.Bajo),
				fmtFloat(cs.Percentages.Alto),
				fmtFloat(cs.Percentages.Medio),
				fmtFloat(cs.Percentages.Bajo),
				fmt.Sprintf(intFmt, cs.ItemCount),
				fmtFloat(profile.GlobalScore),
				string(profile.GlobalSeverity),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeProfileTable writes the human-readable table and the severity summary.
func writeProfileTable(w io.Writer, evaluationID, subjectName string, profile schema.ProfileSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Evaluación: %s | Afiliado: %s\n", evaluationID, subjectName); err != nil {
		return err
	}

	if profile.IsEmpty() {
		if _, err := fmt.Fprintln(w, "Sin ítems calificados: no hay categorías para mostrar."); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Categoría", "Score", "Media", "Nivel", "%Alto", "%Medio", "%Bajo", "Ítems"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, cs := range profile.CategoryScores {
			data = append(data, []string{
				schema.ShortName(cs.Category),
				fmtFloat(cs.Score),
				fmtFloat(cs.RawMean),
				contract.GetTierColorLabel(cs.Tier),
				fmtFloat(cs.Percentages.Alto),
				fmtFloat(cs.Percentages.Medio),
				fmtFloat(cs.Percentages.Bajo),
				fmt.Sprintf(intFmt, cs.ItemCount),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	lines := []string{
		fmt.Sprintf("Nivel global: %s (score %s)", contract.GetColorLabel(profile.GlobalSeverity), fmtFloat(profile.GlobalScore)),
		fmt.Sprintf("Categorías críticas: %s", joinShortNames(profile.CriticalCategories)),
		fmt.Sprintf("Categorías altas: %s", joinShortNames(profile.HighCategories)),
		fmt.Sprintf("Categorías medias: %s", joinShortNames(profile.MediumCategories)),
		fmt.Sprintf("Perfil calculado en %v. Store backend: %s", duration, cfg.StoreBackend),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// joinShortNames lists categories by short name, or "ninguna" for an empty list.
func joinShortNames(cats []schema.Category) string {
	if len(cats) == 0 {
		return "ninguna"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = schema.ShortName(c)
	}
	return schema.JoinSpanish(names)
}
