package cmd

import (
	"github.com/Daniromero1410/Mentis/core"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/spf13/cobra"
)

// conceptCmd writes the professional concept of an assessment.
var conceptCmd = &cobra.Command{
	Use:   "concept <assessment-file>",
	Short: "Write the Spanish professional concept with recommendations.",
	Long: `Compose the occupational-health concept of an assessment: the analysis of the
critical and high-risk categories with their evidence, followed by
recommendations for the worker, the company and the health insurer.

Two variants are available:
- valoracion: psychological valuation with fixed connectors
- prueba_trabajo: work test with rotating phrasing

Examples:
  # Valuation concept wrapped to the terminal
  mentis concept evaluacion.yaml

  # Work test concept for a subject with a diagnosis
  mentis concept evaluacion.yaml --variant prueba_trabajo --has-diagnosis yes

  # Keep the latest concept per evaluation in PostgreSQL
  MENTIS_STORE_BACKEND=postgresql MENTIS_STORE_DB_CONNECT="..." mentis concept evaluacion.yaml`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteConcept(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot generate concept", err)
		}
	},
}
