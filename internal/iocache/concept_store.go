package iocache

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// ConceptStoreImpl implements the ConceptStore interface.
// It keeps the latest concept of each evaluation.
type ConceptStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.ConceptStore = &ConceptStoreImpl{} // Compile-time check

// NewConceptStore creates a new ConceptStore with the specified backend.
func NewConceptStore(backend schema.DatabaseBackend, connStr string) (contract.ConceptStore, error) {
	if backend == schema.NoneBackend {
		return &ConceptStoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := createTables(db, backend, conceptsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create concept table: %w", err)
	}
	return &ConceptStoreImpl{db: db, backend: backend}, nil
}

// getUpsertQuery returns the insert-or-replace statement for the backend.
func (cs *ConceptStoreImpl) getUpsertQuery() string {
	table := quoteTableName(conceptsTable, cs.backend)
	insert := fmt.Sprintf(`INSERT INTO %s (evaluation_id, subject_name, variant, global_severity, analysis, recommendations, full_text, updated_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, table)

	switch cs.backend {
	case schema.MySQLBackend:
		return insert + ` ON DUPLICATE KEY UPDATE subject_name = VALUES(subject_name), variant = VALUES(variant),
		global_severity = VALUES(global_severity), analysis = VALUES(analysis), recommendations = VALUES(recommendations),
		full_text = VALUES(full_text), updated_time = VALUES(updated_time)`
	default: // SQLite and PostgreSQL
		return rebind(insert+` ON CONFLICT (evaluation_id) DO UPDATE SET subject_name = excluded.subject_name,
		variant = excluded.variant, global_severity = excluded.global_severity, analysis = excluded.analysis,
		recommendations = excluded.recommendations, full_text = excluded.full_text, updated_time = excluded.updated_time`, cs.backend)
	}
}

// UpsertConcept inserts or replaces the concept of an evaluation.
func (cs *ConceptStoreImpl) UpsertConcept(record schema.ConceptRecord) error {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return nil
	}
	if record.EvaluationID == "" {
		return errors.New("concept record requires an evaluation id")
	}

	_, err := cs.db.Exec(cs.getUpsertQuery(),
		record.EvaluationID, record.SubjectName, record.Variant, record.GlobalSeverity,
		record.Analysis, record.Recommendations, record.FullText, formatTime(record.UpdatedTime, cs.backend))
	if err != nil {
		return fmt.Errorf("failed to upsert concept %s: %w", record.EvaluationID, err)
	}
	return nil
}

const conceptColumns = `evaluation_id, subject_name, variant, global_severity, analysis, recommendations, full_text, updated_time`

func scanConcept(scan func(dest ...any) error) (schema.ConceptRecord, error) {
	var (
		record  schema.ConceptRecord
		updated timeScanner
	)
	err := scan(&record.EvaluationID, &record.SubjectName, &record.Variant, &record.GlobalSeverity,
		&record.Analysis, &record.Recommendations, &record.FullText, &updated)
	record.UpdatedTime = updated.Time
	return record, err
}

// GetConcept returns the stored concept of an evaluation.
func (cs *ConceptStoreImpl) GetConcept(evaluationID string) (schema.ConceptRecord, error) {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return schema.ConceptRecord{}, fmt.Errorf("concept %s: %w", evaluationID, contract.ErrRecordNotFound)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE evaluation_id = ?`, conceptColumns, quoteTableName(conceptsTable, cs.backend))
	record, err := scanConcept(cs.db.QueryRow(rebind(query, cs.backend), evaluationID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.ConceptRecord{}, fmt.Errorf("concept %s: %w", evaluationID, contract.ErrRecordNotFound)
	}
	if err != nil {
		return schema.ConceptRecord{}, fmt.Errorf("failed to get concept %s: %w", evaluationID, err)
	}
	return record, nil
}

// CountConcepts returns the number of stored concepts.
func (cs *ConceptStoreImpl) CountConcepts() (int, error) {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return 0, nil
	}
	var count int
	if err := cs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(conceptsTable, cs.backend))).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count concepts: %w", err)
	}
	return count, nil
}

// GetAllConcepts retrieves all stored concepts ordered by evaluation ID.
func (cs *ConceptStoreImpl) GetAllConcepts() ([]schema.ConceptRecord, error) {
	if cs.backend == schema.NoneBackend || cs.db == nil {
		return nil, nil
	}

	rows, err := cs.db.Query(fmt.Sprintf(`SELECT %s FROM %s ORDER BY evaluation_id`, conceptColumns, quoteTableName(conceptsTable, cs.backend)))
	if err != nil {
		return nil, fmt.Errorf("failed to query concepts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ConceptRecord
	for rows.Next() {
		record, err := scanConcept(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan concept: %w", err)
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating concepts: %w", err)
	}
	return results, nil
}

// Close closes the underlying connection.
func (cs *ConceptStoreImpl) Close() error {
	if cs.db != nil {
		return cs.db.Close()
	}
	return nil
}
