package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arena/gotofix/internal/domain"
)

const ruleURI = "gotofix://rule"

type ruleResource struct {
	domain.Rule
	Description string `json:"description"`
}

// registerResources registers the gotofix MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			ruleURI,
			"Rewrite Rule",
			mcplib.WithResourceDescription("The pattern and replacement applied to spec files"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRuleResource,
	)
}

func handleRuleResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	rule := domain.DefaultRule()
	data, err := json.MarshalIndent(ruleResource{Rule: rule, Description: rule.Describe()}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling rule: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      ruleURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
