package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// ProfileStoreImpl implements the ProfileStore interface.
type ProfileStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	now     func() time.Time
}

var _ contract.ProfileStore = &ProfileStoreImpl{} // Compile-time check

// NewProfileStore creates a new ProfileStore with the specified backend.
func NewProfileStore(backend schema.DatabaseBackend, connStr string) (contract.ProfileStore, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled tracking
		return &ProfileStoreImpl{backend: backend, now: time.Now}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := createTables(db, backend, profileRunsTable, categoryScoresTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create profile tables: %w", err)
	}

	return &ProfileStoreImpl{db: db, backend: backend, now: time.Now}, nil
}

func (ps *ProfileStoreImpl) disabled() bool {
	return ps.backend == schema.NoneBackend || ps.db == nil
}

// BeginRun creates a new profile run and returns its unique ID.
func (ps *ProfileStoreImpl) BeginRun(startTime time.Time, run schema.ProfileRunRecord) (int64, error) {
	if ps.disabled() {
		return 0, nil
	}

	table := quoteTableName(profileRunsTable, ps.backend)
	query := fmt.Sprintf(`INSERT INTO %s (evaluation_id, subject_name, variant, has_diagnosis, item_count, global_score, start_time)
		VALUES (?, ?, ?, ?, ?, 0, ?)`, table)
	args := []any{run.EvaluationID, run.SubjectName, run.Variant, run.HasDiagnosis, run.ItemCount, formatTime(startTime, ps.backend)}

	var runID int64
	var err error
	switch ps.backend {
	case schema.PostgreSQLBackend:
		err = ps.db.QueryRow(rebind(query+" RETURNING run_id", ps.backend), args...).Scan(&runID)
	default: // SQLite and MySQL
		var result sql.Result
		result, err = ps.db.Exec(query, args...)
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert profile run: %w", err)
	}
	return runID, nil
}

// EndRun updates the run with the classification outcome and its duration.
func (ps *ProfileStoreImpl) EndRun(runID int64, endTime time.Time, profile schema.ProfileSummary) error {
	if ps.disabled() {
		return nil
	}

	table := quoteTableName(profileRunsTable, ps.backend)
	var start timeScanner
	row := ps.db.QueryRow(rebind(fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, table), ps.backend), runID)
	if err := row.Scan(&start); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("profile run %d: %w", runID, contract.ErrRecordNotFound)
		}
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}

	durationMs := endTime.Sub(start.Time).Milliseconds()
	query := fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, global_score = ?, global_severity = ? WHERE run_id = ?`, table)
	_, err := ps.db.Exec(rebind(query, ps.backend),
		formatTime(endTime, ps.backend), durationMs, profile.GlobalScore, string(profile.GlobalSeverity), runID)
	if err != nil {
		return fmt.Errorf("failed to update profile run: %w", err)
	}
	return nil
}

// RecordCategoryScore stores one aggregated category of a run.
func (ps *ProfileStoreImpl) RecordCategoryScore(runID int64, score schema.CategoryScore) error {
	if ps.disabled() {
		return nil
	}

	table := quoteTableName(categoryScoresTable, ps.backend)
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, category, score, raw_mean, tier, count_alto, count_medio, count_bajo,
		                pct_alto, pct_medio, pct_bajo, item_count, recorded_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, table)
	_, err := ps.db.Exec(rebind(query, ps.backend),
		runID, string(score.Category), score.Score, score.RawMean, string(score.Tier),
		score.Counts.Alto, score.Counts.Medio, score.Counts.Bajo,
		score.Percentages.Alto, score.Percentages.Medio, score.Percentages.Bajo,
		score.ItemCount, formatTime(ps.now(), ps.backend))
	if err != nil {
		return fmt.Errorf("failed to insert category score %s: %w", score.Category, err)
	}
	return nil
}

// GetStatus returns status information about the profile tables.
func (ps *ProfileStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(ps.backend),
		Connected:  ps.db != nil,
		TableSizes: make(map[string]int64),
	}
	if ps.disabled() {
		return status, nil
	}

	table := quoteTableName(profileRunsTable, ps.backend)
	if err := ps.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		var last, oldest timeScanner
		row := ps.db.QueryRow(fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", table))
		if err := row.Scan(&status.LastRunID, &last); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		row = ps.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", table))
		if err := row.Scan(&oldest); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		status.LastRunTime = last.Time
		status.OldestRunTime = oldest.Time
	}

	for _, name := range []string{profileRunsTable, categoryScoresTable} {
		var count int64
		if err := ps.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(name, ps.backend))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", name, err)
		}
		status.TableSizes[name] = count
	}
	return status, nil
}

// GetAllProfileRuns retrieves all runs from the store.
func (ps *ProfileStoreImpl) GetAllProfileRuns() ([]schema.ProfileRunRecord, error) {
	if ps.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, evaluation_id, subject_name, variant, has_diagnosis, item_count,
		global_score, global_severity, start_time, end_time, run_duration_ms
		FROM %s ORDER BY run_id`, quoteTableName(profileRunsTable, ps.backend))
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ProfileRunRecord
	for rows.Next() {
		var (
			record     schema.ProfileRunRecord
			severity   sql.NullString
			start, end timeScanner
		)
		if err := rows.Scan(&record.RunID, &record.EvaluationID, &record.SubjectName, &record.Variant,
			&record.HasDiagnosis, &record.ItemCount, &record.GlobalScore, &severity,
			&start, &end, &record.RunDurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan profile run: %w", err)
		}
		record.GlobalSeverity = severity.String
		record.StartTime = start.Time
		record.EndTime = end.ptr()
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile runs: %w", err)
	}
	return results, nil
}

// GetAllCategoryScores retrieves all category scores from the store.
func (ps *ProfileStoreImpl) GetAllCategoryScores() ([]schema.CategoryScoreRecord, error) {
	if ps.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, category, score, raw_mean, tier, count_alto, count_medio, count_bajo,
		pct_alto, pct_medio, pct_bajo, item_count, recorded_time
		FROM %s ORDER BY run_id, category`, quoteTableName(categoryScoresTable, ps.backend))
	rows, err := ps.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CategoryScoreRecord
	for rows.Next() {
		var (
			record   schema.CategoryScoreRecord
			recorded timeScanner
		)
		if err := rows.Scan(&record.RunID, &record.Category, &record.Score, &record.RawMean, &record.Tier,
			&record.CountAlto, &record.CountMedio, &record.CountBajo,
			&record.PctAlto, &record.PctMedio, &record.PctBajo, &record.ItemCount, &recorded); err != nil {
			return nil, fmt.Errorf("failed to scan category score: %w", err)
		}
		record.RecordedTime = recorded.Time
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category scores: %w", err)
	}
	return results, nil
}

// Close closes the underlying connection.
func (ps *ProfileStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}
