package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/pipeline"
)

// handleSearchKnowledge performs keyword search over the catalog.
func (s *Server) handleSearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	language := request.GetString("language", s.defaultLanguage)
	category := request.GetString("category", "")
	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	results := s.index.Search(query, language, category)
	if len(results) > limit {
		results = results[:limit]
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No matching knowledge items."), nil
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// handleAskAssistant runs one full turn through the pipeline.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	resp := s.pipe.Process(ctx, pipeline.ChatRequest{
		Message:   message,
		Language:  request.GetString("language", s.defaultLanguage),
		SessionID: sessionID,
	})

	var b strings.Builder
	fmt.Fprintf(&b, "session: %s\nintent: %s (confidence %.2f)\n\n%s\n", sessionID, resp.Intent, resp.Confidence, resp.Message)
	if len(resp.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, sug := range resp.Suggestions {
			b.WriteString("- " + sug + "\n")
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleListLeads lists captured leads.
func (s *Server) handleListLeads(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.leadStore == nil {
		return mcp.NewToolResultError("lead capture is not configured"), nil
	}

	limit := request.GetInt("limit", 20)
	results, err := s.leadStore.List(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing leads failed: %v", err)), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No leads captured yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d lead(s):\n", len(results))
	for _, l := range results {
		fmt.Fprintf(&b, "\n- session %s", l.SessionID)
		if l.Name != "" {
			fmt.Fprintf(&b, "\n  name: %s", l.Name)
		}
		if l.Email != "" {
			fmt.Fprintf(&b, "\n  email: %s", l.Email)
		}
		if l.Phone != "" {
			fmt.Fprintf(&b, "\n  phone: %s", l.Phone)
		}
		if l.Company != "" {
			fmt.Fprintf(&b, "\n  company: %s", l.Company)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// formatSearchResults renders ranked knowledge items as readable text.
func formatSearchResults(results []knowledge.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s):\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "\n## %s [%s, priority %d]\n", r.Item.Title, r.Item.Category, r.Item.Priority)
		fmt.Fprintf(&b, "matched: %s\n", strings.Join(r.MatchedKeywords, ", "))
		fmt.Fprintf(&b, "%s\n", r.Snippet)
	}
	return b.String()
}
