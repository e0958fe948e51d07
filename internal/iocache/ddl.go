package iocache

import (
	"database/sql"
	"fmt"

	"github.com/Daniromero1410/Mentis/schema"
)

// column type names per backend.
type dialect struct {
	serialKey string
	text      string
	shortText string
	boolean   string
	integer   string
	bigint    string
	float     string
	timestamp string
}

func dialectFor(backend schema.DatabaseBackend) dialect {
	switch backend {
	case schema.MySQLBackend:
		return dialect{
			serialKey: "BIGINT AUTO_INCREMENT PRIMARY KEY",
			text:      "TEXT",
			shortText: "VARCHAR(255)",
			boolean:   "BOOLEAN",
			integer:   "INT",
			bigint:    "BIGINT",
			float:     "DOUBLE",
			timestamp: "DATETIME(6)",
		}
	case schema.PostgreSQLBackend:
		return dialect{
			serialKey: "BIGSERIAL PRIMARY KEY",
			text:      "TEXT",
			shortText: "TEXT",
			boolean:   "BOOLEAN",
			integer:   "INT",
			bigint:    "BIGINT",
			float:     "DOUBLE PRECISION",
			timestamp: "TIMESTAMPTZ",
		}
	default: // SQLite
		return dialect{
			serialKey: "INTEGER PRIMARY KEY AUTOINCREMENT",
			text:      "TEXT",
			shortText: "TEXT",
			boolean:   "INTEGER",
			integer:   "INTEGER",
			bigint:    "INTEGER",
			float:     "REAL",
			timestamp: "TEXT",
		}
	}
}

// getCreateTableQuery returns the CREATE TABLE query of a store table.
func getCreateTableQuery(table string, backend schema.DatabaseBackend) (string, error) {
	if err := validateTableName(table); err != nil {
		return "", err
	}
	d := dialectFor(backend)
	quoted := quoteTableName(table, backend)

	switch table {
	case profileRunsTable:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id %s,
				evaluation_id %s NOT NULL,
				subject_name %s NOT NULL,
				variant %s NOT NULL,
				has_diagnosis %s NOT NULL,
				item_count %s NOT NULL,
				global_score %s NOT NULL DEFAULT 0,
				global_severity %s,
				start_time %s NOT NULL,
				end_time %s,
				run_duration_ms %s
			)`, quoted, d.serialKey, d.shortText, d.shortText, d.shortText, d.boolean,
			d.integer, d.float, d.shortText, d.timestamp, d.timestamp, d.bigint), nil

	case categoryScoresTable:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				run_id %s NOT NULL,
				category %s NOT NULL,
				score %s NOT NULL,
				raw_mean %s NOT NULL,
				tier %s NOT NULL,
				count_alto %s NOT NULL,
				count_medio %s NOT NULL,
				count_bajo %s NOT NULL,
				pct_alto %s NOT NULL,
				pct_medio %s NOT NULL,
				pct_bajo %s NOT NULL,
				item_count %s NOT NULL,
				recorded_time %s NOT NULL,
				PRIMARY KEY (run_id, category)
			)`, quoted, d.bigint, varcharKey(backend, 64), d.float, d.float, d.shortText,
			d.integer, d.integer, d.integer, d.float, d.float, d.float, d.integer, d.timestamp), nil

	case conceptsTable:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				evaluation_id %s PRIMARY KEY,
				subject_name %s NOT NULL,
				variant %s NOT NULL,
				global_severity %s NOT NULL,
				analysis %s NOT NULL,
				recommendations %s NOT NULL,
				full_text %s NOT NULL,
				updated_time %s NOT NULL
			)`, quoted, varcharKey(backend, 64), d.shortText, d.shortText, d.shortText,
			d.text, d.text, d.text, d.timestamp), nil

	default:
		return "", fmt.Errorf("unknown store table: %s", table)
	}
}

// varcharKey is the type of a text column used in a key. MySQL cannot index TEXT.
func varcharKey(backend schema.DatabaseBackend, size int) string {
	if backend == schema.MySQLBackend {
		return fmt.Sprintf("VARCHAR(%d)", size)
	}
	return "TEXT"
}

// createTables creates the given store tables if they are missing.
func createTables(db *sql.DB, backend schema.DatabaseBackend, tables ...string) error {
	for _, table := range tables {
		query, err := getCreateTableQuery(table, backend)
		if err != nil {
			return err
		}
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}
	return nil
}
