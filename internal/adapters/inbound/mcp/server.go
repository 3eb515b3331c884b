package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewGotofixMCPServer creates an MCP server exposing the rewriter. dir is
// the directory whose spec files the tools operate on.
func NewGotofixMCPServer(dir, glob string, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"gotofix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	if logger == nil {
		logger = zap.NewNop()
	}
	registerTools(s, target{dir: dir, glob: glob}, logger)
	registerResources(s)

	return s
}
