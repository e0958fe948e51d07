// Package cmd defines the command-line interface for mentis.
package cmd

import (
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)
	storeCmd.AddCommand(storeExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json (parquet for store export)")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.NoneBackend), "Store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("variant", string(schema.ValoracionVariant), "Concept variant: valoracion or prueba_trabajo")
	rootCmd.PersistentFlags().String("subject", "", "Override the subject name of the assessment")
	rootCmd.PersistentFlags().String("diagnosis", "", "Override the diagnosis of the assessment")
	rootCmd.PersistentFlags().String("has-diagnosis", "", "Override whether the subject has a diagnosis (yes/no)")
	rootCmd.PersistentFlags().String("banks-file", "", "YAML file overriding the narrative text banks")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	catalogCmd.Flags().String("category", "", "Only list the items of this category")
	if err := viper.BindPFlags(catalogCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog flags", err)
	}

	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
