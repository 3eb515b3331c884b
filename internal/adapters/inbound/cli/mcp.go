package cli

import (
	"fmt"
	"path/filepath"

	mcpadapter "github.com/arena/gotofix/internal/adapters/inbound/mcp"
	"github.com/arena/gotofix/internal/adapters/outbound/logging"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the gotofix MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Start gotofix MCP server (stdio)",
		Long:  "Start the gotofix MCP server using stdio transport. Tools preview and apply the reordering on the target directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			var dirArg string
			if len(args) > 0 {
				dirArg = args[0]
			}
			dir, glob := cfg.Resolve(dirArg, "")

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			s := mcpadapter.NewGotofixMCPServer(absDir, glob, logger)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file, or a directory holding .gotofix.yaml (not read unless set)")

	return cmd
}
