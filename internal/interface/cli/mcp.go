package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/quocthai179/my-succulent-store/cmd/senda/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing the storefront",
	Long: `Start an MCP (Model Context Protocol) server that lets an external
assistant browse the catalog and edit the same cart session as the TUI.

Configure in your assistant's MCP config:
  {
    "mcpServers": {
      "senda": {
        "command": "senda",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := mcp.StartServer(a.catalog, a.carts); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
