package schema

import "time"

// StoreStatus represents the status of the persistence store.
type StoreStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	TotalConcepts int              `json:"total_concepts"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ProfileRunRecord represents a row from the mentis_profile_runs table.
type ProfileRunRecord struct {
	RunID          int64
	EvaluationID   string
	SubjectName    string
	Variant        string
	HasDiagnosis   bool
	ItemCount      int32
	GlobalScore    float64
	GlobalSeverity string
	StartTime      time.Time
	EndTime        *time.Time
	RunDurationMs  *int64
}

// CategoryScoreRecord represents a row from the mentis_category_scores table.
type CategoryScoreRecord struct {
	RunID        int64
	Category     string
	Score        float64
	RawMean      float64
	Tier         string
	CountAlto    int32
	CountMedio   int32
	CountBajo    int32
	PctAlto      float64
	PctMedio     float64
	PctBajo      float64
	ItemCount    int32
	RecordedTime time.Time
}

// ConceptRecord represents a row from the mentis_concepts table.
type ConceptRecord struct {
	EvaluationID    string
	SubjectName     string
	Variant         string
	GlobalSeverity  string
	Analysis        string
	Recommendations string
	FullText        string
	UpdatedTime     time.Time
}
