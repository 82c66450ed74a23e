package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchKnowledgeTool defines the search_knowledge MCP tool.
var searchKnowledgeTool = mcp.NewTool("search_knowledge",
	mcp.WithDescription("Search the assistant's knowledge catalog by keyword. Returns ranked items with snippets."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Keyword search query"),
	),
	mcp.WithString("language",
		mcp.Description("Content language (default en)"),
		mcp.Enum("en", "ar"),
	),
	mcp.WithString("category",
		mcp.Description("Restrict results to one category (products, pricing, support, company, sales)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)

// askAssistantTool defines the ask_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_assistant",
	mcp.WithDescription("Run one conversational turn through the assistant pipeline and return the reply."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The visitor message to process"),
	),
	mcp.WithString("language",
		mcp.Description("Conversation language (default en)"),
		mcp.Enum("en", "ar"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session id to continue; a new session is created when omitted"),
	),
)

// listLeadsTool defines the list_leads MCP tool.
var listLeadsTool = mcp.NewTool("list_leads",
	mcp.WithDescription("List contact leads captured from conversations, most recent first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of leads to return (default 20)"),
	),
)
