package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// StartMCPServer starts the MCP server for schema rendering
func StartMCPServer() error {
	s := server.NewMCPServer(
		"schemagen",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	renderSchemaTool := mcp.NewTool("render_schema",
		mcp.WithDescription("Render a YAML schema definition file into DDL statements"),
		mcp.WithString("schema_file",
			mcp.Required(),
			mcp.Description("Path to the YAML schema definition file"),
		),
		mcp.WithString("dialect",
			mcp.Description("Target dialect (default: postgres)"),
			mcp.Enum("postgres"),
		),
	)

	s.AddTool(renderSchemaTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRenderSchema(ctx, request)
	})

	validateSchemaTool := mcp.NewTool("validate_schema",
		mcp.WithDescription("Validate a YAML schema definition file without rendering DDL"),
		mcp.WithString("schema_file",
			mcp.Required(),
			mcp.Description("Path to the YAML schema definition file"),
		),
	)

	s.AddTool(validateSchemaTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateSchema(ctx, request)
	})

	slog.Info("starting schemagen mcp server")
	return server.ServeStdio(s)
}

// handleRenderSchema processes the render_schema tool request
func handleRenderSchema(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	schemaPath, err := request.RequireString("schema_file")
	if err != nil {
		return mcp.NewToolResultError("schema_file parameter is required"), nil
	}

	dialect := request.GetString("dialect", "postgres")

	output, err := renderSchemaCore(schemaPath, dialect)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("schema rendered successfully:\n\n%s", output)), nil
}

// renderSchemaCore contains the core logic for schema rendering, separated for testing
func renderSchemaCore(schemaPath, dialect string) (string, error) {
	renderer, err := NewRenderer(dialect)
	if err != nil {
		return "", err
	}

	return renderSchemaCoreWithDeps(schemaPath, NewFileSchemaLoader(), renderer)
}

// renderSchemaCoreWithDeps is the testable version with dependency injection
func renderSchemaCoreWithDeps(schemaPath string, loader SchemaLoader, renderer SchemaRenderer) (string, error) {
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file does not exist: %s", schemaPath)
	}

	migration, err := loader.LoadSchema(schemaPath)
	if err != nil {
		return "", fmt.Errorf("failed to load schema: %v", err)
	}

	statements, err := renderer.Render(migration)
	if err != nil {
		return "", fmt.Errorf("failed to render schema: %v", err)
	}

	if len(statements) == 0 {
		return "", fmt.Errorf("schema file declares no changes")
	}

	return strings.Join(statements, "\n"), nil
}

// handleValidateSchema processes the validate_schema tool request
func handleValidateSchema(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	schemaPath, err := request.RequireString("schema_file")
	if err != nil {
		return mcp.NewToolResultError("schema_file parameter is required"), nil
	}

	output, err := validateSchemaCore(schemaPath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("schema validation completed:\n\n%s", output)), nil
}

// validateSchemaCore contains the core logic for schema validation, separated for testing
func validateSchemaCore(schemaPath string) (string, error) {
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return "", fmt.Errorf("schema file does not exist: %s", schemaPath)
	}

	migration, err := ParseSchemaFile(schemaPath)
	if err != nil {
		return "", fmt.Errorf("failed to parse schema: %v", err)
	}

	validationErr := migration.Validate()

	tables := migration.Tables()
	result := map[string]interface{}{
		"valid":       validationErr == nil,
		"table_count": len(tables),
		"tables":      make([]map[string]interface{}, len(tables)),
	}
	if validationErr != nil {
		result["error"] = validationErr.Error()
	}

	for i, table := range tables {
		columns := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			columns[j] = col.Name
		}
		result["tables"].([]map[string]interface{})[i] = map[string]interface{}{
			"name":         table.Name,
			"column_count": len(table.Columns),
			"columns":      columns,
		}
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	return string(jsonOutput), nil
}
