package cmd

import (
	"fmt"
	"os"

	"github.com/Daniromero1410/Mentis/core"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/internal/iocache"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/spf13/cobra"
)

// storeSetup validates the configuration and opens the store without an assessment.
func storeSetup(_ *cobra.Command, args []string) error {
	if err := resolveConfig(args); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	return nil
}

// storeConfigOnly validates the configuration but leaves the store closed,
// so clear and migrate work on missing or outdated schemas.
func storeConfigOnly(_ *cobra.Command, args []string) error {
	return resolveConfig(args)
}

// sqliteFilePath returns the database file a SQLite store lives in.
func sqliteFilePath() string {
	if cfg.StoreDBConnect != "" {
		return cfg.StoreDBConnect
	}
	return contract.GetDBFilePath()
}

// storeCmd focused on stored runs and concepts.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage recorded profile runs and generated concepts",
	Long: `Manage the store that records every profile and concept run.

When a backend is configured, mentis records:
- Run metadata (evaluation, subject, variant, global severity, duration)
- The aggregated score and tier of every category
- The latest concept generated for each evaluation

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show store statistics
  clear   - Remove all stored data
  migrate - Run database schema migrations
  export  - Export data to Parquet for analytics

Examples:
  # Check the local SQLite store
  mentis store status --store-backend sqlite

  # Export for analysis in pandas/DuckDB
  mentis store export --store-backend sqlite --output-file mentis-data.parquet`,
}

// storeStatusCmd shows store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display store statistics and connection details",
	Long: `Show the backend, the connection state, the number of runs and concepts,
the timestamps of the oldest and latest run and the size of every table.

Examples:
  mentis store status --store-backend sqlite
  mentis store status --store-backend sqlite --output json`,
	Args:    cobra.NoArgs,
	PreRunE: storeSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStoreStatus(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
	},
}

// storeClearCmd clears the store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded runs and concepts",
	Long: `Delete every recorded run, category score and concept.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the store tables

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  mentis store export --store-backend sqlite --output-file backup.parquet
  mentis store clear --store-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: storeConfigOnly,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearStores(cfg.StoreBackend, sqliteFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear store", err)
		}
		fmt.Println("Store cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage the schema version of the store tables.

--target-version -1 migrates to the latest version (default),
0 rolls every migration back, and any other value migrates to that version.

MySQL connection strings need multiStatements=true.

Examples:
  # Upgrade to the latest schema
  mentis store migrate --store-backend sqlite

  # Roll back to an empty database
  mentis store migrate --store-backend sqlite --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: storeConfigOnly,
	Run: func(_ *cobra.Command, _ []string) {
		connStr := cfg.StoreDBConnect
		if cfg.StoreBackend == schema.SQLiteBackend {
			connStr = sqliteFilePath()
		}
		if err := iocache.MigrateStore(cfg.StoreBackend, connStr, cfg.TargetVersion); err != nil {
			contract.LogFatal("Failed to migrate store", err)
		}
	},
}

// storeExportCmd exports stored data to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded data to Parquet for BI tools and analytics",
	Long: `Export every recorded run, category score and concept to Parquet files.

Requires: --output-file parameter. Three files are written next to it:
runs, category scores and concepts.

Examples:
  mentis store export --store-backend sqlite --output-file mentis-data.parquet
  duckdb -c "SELECT * FROM read_parquet('mentis-data.parquet.profile_runs.parquet') LIMIT 10"`,
	Args:    cobra.NoArgs,
	PreRunE: storeSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteStoreExport(storeManager, cfg.OutputFile, os.Stdout); err != nil {
			contract.LogFatal("Failed to export store data", err)
		}
	},
}
