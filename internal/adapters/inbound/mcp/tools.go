package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/arena/gotofix/internal/adapters/outbound/filestore"
	"github.com/arena/gotofix/internal/adapters/outbound/gitinfo"
	"github.com/arena/gotofix/internal/adapters/outbound/scanner"
	"github.com/arena/gotofix/internal/adapters/outbound/tui"
	"github.com/arena/gotofix/internal/application"
	"github.com/arena/gotofix/internal/domain"
	"github.com/arena/gotofix/internal/domain/rewrite"
)

type target struct {
	dir  string
	glob string
}

// registerTools registers the gotofix MCP tools on the given server.
func registerTools(s *server.MCPServer, t target, logger *zap.Logger) {
	s.AddTool(
		mcplib.NewTool("gotofix_preview",
			mcplib.WithDescription("Report which spec files would be reordered, with a unified diff per file. Nothing is written."),
			mcplib.WithString("glob", mcplib.Description("File name filter inside the target directory (default: *.spec.js)")),
		),
		handleRun(t, true, logger),
	)

	s.AddTool(
		mcplib.NewTool("gotofix_apply",
			mcplib.WithDescription("Move page.goto ahead of installHeadlessWallet in every matching spec file and return the report"),
			mcplib.WithString("glob", mcplib.Description("File name filter inside the target directory (default: *.spec.js)")),
		),
		handleRun(t, false, logger),
	)
}

func handleRun(t target, dryRun bool, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		glob := t.glob
		if g, _ := request.GetArguments()["glob"].(string); g != "" {
			glob = g
		}
		if strings.ContainsAny(glob, `/\`) {
			return errorResult(fmt.Sprintf("glob %q must not contain a path separator", glob)), nil
		}

		svc := application.NewFixService(scanner.New(), filestore.New(), gitinfo.New(), rewrite.Default(), logger)
		opts := domain.FixOptions{
			Dir:         t.dir,
			Glob:        glob,
			DryRun:      dryRun,
			KeepContent: true,
		}

		report, err := svc.Run(ctx, opts, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		for i := range report.Files {
			report.Files[i].Diff = tui.UnifiedDiff(report.Files[i])
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
