// Package parquet provides the row types and writers used to export stored
// mentis runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/parquet-go/parquet-go"
)

// ProfileRun is one profile or concept run.
// This struct maps to the mentis_profile_runs database table.
type ProfileRun struct {
	// RunID is the unique identifier of the run
	RunID int64 `parquet:"run_id,snappy"`

	// EvaluationID groups runs of the same assessment
	EvaluationID string `parquet:"evaluation_id,snappy"`

	SubjectName  string `parquet:"subject_name,snappy"`
	Variant      string `parquet:"variant,snappy"`
	HasDiagnosis bool   `parquet:"has_diagnosis,snappy"`
	ItemCount    int32  `parquet:"item_count,snappy"`

	// GlobalScore and GlobalSeverity are set once the run ends
	GlobalScore    float64 `parquet:"global_score,snappy"`
	GlobalSeverity string  `parquet:"global_severity,snappy"`

	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime and RunDurationMs are null for runs that never ended
	EndTime       *time.Time `parquet:"end_time,optional,snappy"`
	RunDurationMs *int64     `parquet:"run_duration_ms,optional,snappy"`
}

// CategoryScore is one aggregated category of a run.
// This struct maps to the mentis_category_scores database table.
type CategoryScore struct {
	RunID        int64     `parquet:"run_id,snappy"`
	Category     string    `parquet:"category,snappy"`
	Score        float64   `parquet:"score,snappy"`
	RawMean      float64   `parquet:"raw_mean,snappy"`
	Tier         string    `parquet:"tier,snappy"`
	CountAlto    int32     `parquet:"count_alto,snappy"`
	CountMedio   int32     `parquet:"count_medio,snappy"`
	CountBajo    int32     `parquet:"count_bajo,snappy"`
	PctAlto      float64   `parquet:"pct_alto,snappy"`
	PctMedio     float64   `parquet:"pct_medio,snappy"`
	PctBajo      float64   `parquet:"pct_bajo,snappy"`
	ItemCount    int32     `parquet:"item_count,snappy"`
	RecordedTime time.Time `parquet:"recorded_time,snappy"`
}

// Concept is the latest generated concept of an evaluation.
// This struct maps to the mentis_concepts database table.
type Concept struct {
	EvaluationID    string    `parquet:"evaluation_id,snappy"`
	SubjectName     string    `parquet:"subject_name,snappy"`
	Variant         string    `parquet:"variant,snappy"`
	GlobalSeverity  string    `parquet:"global_severity,snappy"`
	Analysis        string    `parquet:"analysis,snappy"`
	Recommendations string    `parquet:"recommendations,snappy"`
	FullText        string    `parquet:"full_text,snappy"`
	UpdatedTime     time.Time `parquet:"updated_time,snappy"`
}

// WriteProfileRunsParquet writes a slice of ProfileRun structs to a Parquet file.
func WriteProfileRunsParquet(data []ProfileRun, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteCategoryScoresParquet writes a slice of CategoryScore structs to a Parquet file.
func WriteCategoryScoresParquet(data []CategoryScore, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteConceptsParquet writes a slice of Concept structs to a Parquet file.
func WriteConceptsParquet(data []Concept, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows infers the schema from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to flush parquet file: %w", err)
	}
	return nil
}

// ConvertProfileRunRecords converts schema.ProfileRunRecord to ProfileRun for Parquet export.
func ConvertProfileRunRecords(records []schema.ProfileRunRecord) []ProfileRun {
	result := make([]ProfileRun, len(records))
	for i, record := range records {
		result[i] = ProfileRun{
			RunID:          record.RunID,
			EvaluationID:   record.EvaluationID,
			SubjectName:    record.SubjectName,
			Variant:        record.Variant,
			HasDiagnosis:   record.HasDiagnosis,
			ItemCount:      record.ItemCount,
			GlobalScore:    record.GlobalScore,
			GlobalSeverity: record.GlobalSeverity,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			RunDurationMs:  record.RunDurationMs,
		}
	}
	return result
}

// ConvertCategoryScoreRecords converts schema.CategoryScoreRecord to CategoryScore for Parquet export.
func ConvertCategoryScoreRecords(records []schema.CategoryScoreRecord) []CategoryScore {
	result := make([]CategoryScore, len(records))
	for i, record := range records {
		result[i] = CategoryScore(record)
	}
	return result
}

// ConvertConceptRecords converts schema.ConceptRecord to Concept for Parquet export.
func ConvertConceptRecords(records []schema.ConceptRecord) []Concept {
	result := make([]Concept, len(records))
	for i, record := range records {
		result[i] = Concept(record)
	}
	return result
}
