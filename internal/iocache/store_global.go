package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// NewStoreManager opens both stores on the same backend.
// The none backend yields stores whose writes are no-ops.
func NewStoreManager(backend schema.DatabaseBackend, connStr string) (*StoreManagerImpl, error) {
	if backend == "" {
		backend = schema.NoneBackend
	}

	profile, err := NewProfileStore(backend, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize profile store: %w", err)
	}
	concept, err := NewConceptStore(backend, connStr)
	if err != nil {
		_ = profile.Close()
		return nil, fmt.Errorf("failed to initialize concept store: %w", err)
	}
	return &StoreManagerImpl{profile: profile, concept: concept}, nil
}

// Close closes both stores.
func (mgr *StoreManagerImpl) Close() {
	mgr.Lock()
	defer mgr.Unlock()
	if mgr.profile != nil {
		_ = mgr.profile.Close()
	}
	if mgr.concept != nil {
		_ = mgr.concept.Close()
	}
}

// InitStores initializes the global manager. Only the first call has an effect.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		mgr, err := NewStoreManager(backend, connStr)
		if err != nil {
			initErr = err
			return
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.profile = mgr.profile
		Manager.concept = mgr.concept
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(Manager.Close)
}

// ClearStores removes all stored data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the store tables.
// For NoneBackend, it does nothing.
func ClearStores(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		return dropTables(backend, connStr, storeTables...)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropTables connects to the SQL database and drops the tables if they exist.
func dropTables(backend schema.DatabaseBackend, connStr string, tables ...string) error {
	driver, err := driverName(backend)
	if err != nil {
		return err
	}
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", backend, err)
	}

	// Reverse creation order
	for i := len(tables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(tables[i], backend))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tables[i], err)
		}
	}
	return nil
}

// GetStoreStatus combines the status of both stores of a manager.
func GetStoreStatus(mgr contract.StoreManager) (schema.StoreStatus, error) {
	if mgr == nil || mgr.GetProfileStore() == nil || mgr.GetConceptStore() == nil {
		return schema.StoreStatus{}, errors.New("store is not initialized")
	}
	status, err := mgr.GetProfileStore().GetStatus()
	if err != nil {
		return status, err
	}
	if !status.Connected {
		return status, nil
	}
	count, err := mgr.GetConceptStore().CountConcepts()
	if err != nil {
		return status, err
	}
	status.TotalConcepts = count
	status.TableSizes[conceptsTable] = int64(count)
	return status, nil
}
