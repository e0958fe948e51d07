package cmd

import (
	"github.com/Daniromero1410/Mentis/core"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/spf13/cobra"
)

// catalogCmd lists the questionnaire items.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the canonical questionnaire items per category.",
	Long: `Print the item catalog of the questionnaire. Assessment items without text
are filled from this catalog by category and item number.

Examples:
  # Every item
  mentis catalog

  # Only the working-hours items as CSV
  mentis catalog --category demandas_jornada --output csv`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, args []string) error {
		return resolveConfig(args)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCatalog(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list catalog", err)
		}
	},
}
