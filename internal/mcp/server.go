// Package mcp exposes the assistant over the Model Context Protocol so
// editor agents can query the knowledge base and run turns.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/site-assist/internal/knowledge"
	"github.com/ziadkadry99/site-assist/internal/leads"
	"github.com/ziadkadry99/site-assist/internal/pipeline"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing assistant tools over stdio.
type Server struct {
	index           *knowledge.Index
	pipe            *pipeline.Pipeline
	leadStore       *leads.Store
	defaultLanguage string
	mcp             *server.MCPServer
}

// NewServer creates an MCP server. The lead store may be nil; the
// list_leads tool then reports that lead capture is disabled.
func NewServer(index *knowledge.Index, pipe *pipeline.Pipeline, leadStore *leads.Store, defaultLanguage string) *Server {
	if defaultLanguage == "" {
		defaultLanguage = "en"
	}
	s := &Server{
		index:           index,
		pipe:            pipe,
		leadStore:       leadStore,
		defaultLanguage: defaultLanguage,
	}

	s.mcp = server.NewMCPServer(
		"siteassist",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchKnowledgeTool, s.handleSearchKnowledge)
	s.mcp.AddTool(askAssistantTool, s.handleAskAssistant)
	s.mcp.AddTool(listLeadsTool, s.handleListLeads)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
