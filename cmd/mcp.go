package cmd

import (
	"github.com/Daniromero1410/Mentis/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Mentis MCP server",
	Long:    `Launch an MCP server over stdio that lets AI agents compute risk profiles and concepts via standard tools.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}
