package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. Names follow the "type_action" pattern so tools can be
// disabled per type via configuration.

var generateToolDef = mcp.NewTool("password_generate",
	mcp.WithDescription("Generate one random password and record it in the session history. Lowercase letters are always included; each enabled class is guaranteed at least one character."),
	mcp.WithNumber("length",
		mcp.Description("Password length, 8-128 (default from config, normally 12)"),
	),
	mcp.WithBoolean("use_uppercase",
		mcp.Description("Include uppercase letters (default true)"),
	),
	mcp.WithBoolean("use_numbers",
		mcp.Description("Include digits (default true)"),
	),
	mcp.WithBoolean("use_special",
		mcp.Description("Include special characters (default true)"),
	),
)

var generateManyToolDef = mcp.NewTool("password_generate_many",
	mcp.WithDescription("Generate several passwords with the same criteria. Each password gets its own history record."),
	mcp.WithNumber("count",
		mcp.Required(),
		mcp.Description("Number of passwords to generate (1-100)"),
	),
	mcp.WithNumber("length",
		mcp.Description("Password length, 8-128 (default from config, normally 12)"),
	),
	mcp.WithBoolean("use_uppercase",
		mcp.Description("Include uppercase letters (default true)"),
	),
	mcp.WithBoolean("use_numbers",
		mcp.Description("Include digits (default true)"),
	),
	mcp.WithBoolean("use_special",
		mcp.Description("Include special characters (default true)"),
	),
)

var evaluateToolDef = mcp.NewTool("password_evaluate",
	mcp.WithDescription("Score a password's strength heuristically and, unless disabled, check it against the breach database. Returns score, rating, and suggestions."),
	mcp.WithString("password",
		mcp.Required(),
		mcp.Description("Password to evaluate"),
	),
	mcp.WithBoolean("skip_breach",
		mcp.Description("Skip the online breach lookup for this call"),
	),
)

var listToolDef = mcp.NewTool("history_list",
	mcp.WithDescription("List the passwords generated in this session, oldest first."),
)

var exportToolDef = mcp.NewTool("history_export",
	mcp.WithDescription("Export the session history to a JSON or CSV file."),
	mcp.WithString("format",
		mcp.Required(),
		mcp.Description("Export format: json or csv"),
	),
	mcp.WithString("path",
		mcp.Description("Destination path (default: passwords_<timestamp>.<ext>)"),
	),
)

var importToolDef = mcp.NewTool("history_import",
	mcp.WithDescription("Import records from a JSON or CSV export file into the session history."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path of the file to import"),
	),
)
