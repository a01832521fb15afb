package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/greenscore/internal/logging"
	"github.com/theirongolddev/greenscore/internal/mcpserver"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the estimator as MCP tools over stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	// stdout carries the protocol; logs go to stderr.
	logger := logging.New(logLevel(in.cfg), os.Stderr)

	s := mcpserver.New(version, mcpserver.Options{
		Project:   in.project,
		Defaults:  in.usage,
		Estimator: in.est,
		Logger:    logger,
	})

	logger.Info().Str("version", version).Msg("mcp server starting on stdio")
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
