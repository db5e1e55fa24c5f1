package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dialectName string
	verifyMode  bool
	mcpMode     bool
)

var rootCmd = &cobra.Command{
	Use:   "schemagen [schema-file]",
	Short: "Render database-agnostic schema definitions into DDL",
	Long: `schemagen takes a YAML schema definition describing tables and columns in a
database-agnostic vocabulary and renders the DDL statements for a concrete
backend dialect.

Modes:
  render mode (default): Prints the generated statements
  verify mode (--verify): Additionally executes the statements against a
    throwaway PostgreSQL instance started with testcontainers
  mcp mode (--mcp): Run as Model Context Protocol server`,
	Args: func(cmd *cobra.Command, args []string) error {
		if mcpMode {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runSchemagen,
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	if rootCmd.Flags().Lookup("dialect") == nil {
		rootCmd.Flags().StringVarP(&dialectName, "dialect", "d", "postgres", "Target dialect for the generated DDL")
	}
	if rootCmd.Flags().Lookup("verify") == nil {
		rootCmd.Flags().BoolVar(&verifyMode, "verify", false, "Execute the generated DDL against a throwaway database")
	}
	if rootCmd.Flags().Lookup("mcp") == nil {
		rootCmd.Flags().BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
	}

	return rootCmd.Execute()
}

func runSchemagen(cmd *cobra.Command, args []string) {
	if mcpMode {
		slog.Info("starting mcp server")
		if err := StartMCPServer(); err != nil {
			slog.Error("failed to start mcp server", "error", err)
			os.Exit(1)
		}
		return
	}

	schemaPath := args[0]

	loader := NewFileSchemaLoader()
	renderer, err := NewRenderer(dialectName)
	if err != nil {
		slog.Error("failed to resolve dialect", "error", err)
		os.Exit(1)
	}

	var verifier DatabaseVerifier
	if verifyMode {
		verifier = NewPostgreSQLVerifier("postgres:16-alpine")
	}

	if err := processSchema(schemaPath, loader, renderer, verifier); err != nil {
		slog.Error("failed to process schema", "error", err)
		os.Exit(1)
	}
}

func processSchema(schemaPath string, loader SchemaLoader, renderer SchemaRenderer, verifier DatabaseVerifier) error {
	slog.Info("processing schema definition", "path", schemaPath, "dialect", renderer.Dialect())

	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file does not exist: %s", schemaPath)
	}

	migration, err := loader.LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	slog.Info("rendering statements")
	statements, err := renderer.Render(migration)
	if err != nil {
		return fmt.Errorf("failed to render schema: %w", err)
	}

	if len(statements) == 0 {
		return fmt.Errorf("schema file declares no changes: %s", schemaPath)
	}

	if verifier != nil {
		ctx := context.Background()

		slog.Info("setting up database")
		if err := verifier.Setup(ctx); err != nil {
			return fmt.Errorf("failed to setup database: %w", err)
		}
		defer func() {
			if err := verifier.Close(ctx); err != nil {
				slog.Error("failed to cleanup", "error", err)
			}
		}()

		slog.Info("verifying statements", "count", len(statements))
		if err := verifier.Apply(statements); err != nil {
			return fmt.Errorf("failed to verify schema: %w", err)
		}
	}

	fmt.Println(strings.Join(statements, "\n"))

	return nil
}
