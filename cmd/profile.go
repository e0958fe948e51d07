package cmd

import (
	"github.com/Daniromero1410/Mentis/core"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/spf13/cobra"
)

// profileCmd aggregates and classifies an assessment.
var profileCmd = &cobra.Command{
	Use:   "profile <assessment-file>",
	Short: "Show the per-category risk profile and the global severity.",
	Long: `Aggregate the rated items of an assessment into one score per category,
classify each category into a risk tier and derive the global severity.

The assessment is a YAML or JSON document with the evaluation ID, the subject
and the rated items. Items rated "na" or left empty are not counted.

Examples:
  # Show the profile as a table
  mentis profile evaluacion.yaml

  # Emit the risk summary as JSON
  mentis profile evaluacion.yaml --output json

  # Record the run in the local store
  mentis profile evaluacion.yaml --store-backend sqlite`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute profile", err)
		}
	},
}
