package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alc6/schemagen/mocks"
	"github.com/alc6/schemagen/schema"
	"github.com/alc6/schemagen/types"
)

const sampleSchema = `
tables:
  - name: users
    columns:
      - name: id
        kind: primary
      - name: email
        kind: varchar
        size: 255
        unique: true
`

func sampleMigration() *schema.Migration {
	return schema.New().CreateTable("users", func(t *schema.Table) {
		t.AddColumn("id", types.Primary())
		t.AddColumn("email", types.Varchar().Size(255).Unique(true))
	})
}

func TestProcessSchema(t *testing.T) {
	path := writeSchemaFile(t, sampleSchema)

	t.Run("render_only", func(t *testing.T) {
		loader := &MockSchemaLoader{}
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return []string{`CREATE TABLE "users" ();`}, nil
			},
		}

		err := processSchema(path, loader, renderer, nil)
		require.NoError(t, err)
		assert.True(t, loader.LoadSchemaCalled)
		assert.True(t, renderer.RenderCalled)
	})

	t.Run("with_verifier", func(t *testing.T) {
		loader := &MockSchemaLoader{
			LoadSchemaFunc: func(string) (*schema.Migration, error) {
				return sampleMigration(), nil
			},
		}
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return []string{"stmt-1", "stmt-2"}, nil
			},
		}
		verifier := &MockDatabaseVerifier{}

		err := processSchema(path, loader, renderer, verifier)
		require.NoError(t, err)
		assert.True(t, verifier.SetupCalled)
		assert.True(t, verifier.ApplyCalled)
		assert.True(t, verifier.CloseCalled)
		assert.Equal(t, []string{"stmt-1", "stmt-2"}, verifier.Applied)
	})

	t.Run("schema_file_missing", func(t *testing.T) {
		loader := &MockSchemaLoader{}

		err := processSchema(filepath.Join(t.TempDir(), "absent.yaml"), loader, &MockSchemaRenderer{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
		assert.False(t, loader.LoadSchemaCalled)
	})

	t.Run("loader_error", func(t *testing.T) {
		loader := &MockSchemaLoader{
			LoadSchemaFunc: func(string) (*schema.Migration, error) {
				return nil, fmt.Errorf("broken yaml")
			},
		}

		err := processSchema(path, loader, &MockSchemaRenderer{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})

	t.Run("renderer_error", func(t *testing.T) {
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return nil, fmt.Errorf("invalid metadata")
			},
		}

		err := processSchema(path, &MockSchemaLoader{}, renderer, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to render schema")
	})

	t.Run("no_statements", func(t *testing.T) {
		err := processSchema(path, &MockSchemaLoader{}, &MockSchemaRenderer{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declares no changes")
	})

	t.Run("verifier_setup_error", func(t *testing.T) {
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return []string{"stmt"}, nil
			},
		}
		verifier := &MockDatabaseVerifier{
			SetupFunc: func(context.Context) error { return SimulateError("connection") },
		}

		err := processSchema(path, &MockSchemaLoader{}, renderer, verifier)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to setup database")
		assert.False(t, verifier.ApplyCalled)
	})

	t.Run("verifier_apply_error", func(t *testing.T) {
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return []string{"stmt"}, nil
			},
		}
		verifier := &MockDatabaseVerifier{
			ApplyFunc: func([]string) error { return SimulateError("syntax") },
		}

		err := processSchema(path, &MockSchemaLoader{}, renderer, verifier)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to verify schema")
		assert.True(t, verifier.CloseCalled)
	})

	t.Run("close_error_is_not_fatal", func(t *testing.T) {
		renderer := &MockSchemaRenderer{
			RenderFunc: func(m *schema.Migration) ([]string, error) {
				return []string{"stmt"}, nil
			},
		}
		verifier := &MockDatabaseVerifier{
			CloseFunc: func(context.Context) error { return SimulateError("connection") },
		}

		err := processSchema(path, &MockSchemaLoader{}, renderer, verifier)
		assert.NoError(t, err)
	})
}

func TestProcessSchemaWithGomock(t *testing.T) {
	path := writeSchemaFile(t, sampleSchema)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	migration := sampleMigration()

	loader := mocks.NewMockSchemaLoader(ctrl)
	renderer := mocks.NewMockSchemaRenderer(ctrl)
	verifier := mocks.NewMockDatabaseVerifier(ctrl)

	loader.EXPECT().LoadSchema(path).Return(migration, nil)
	renderer.EXPECT().Dialect().Return("postgres")
	renderer.EXPECT().Render(migration).Return([]string{"stmt-1"}, nil)
	verifier.EXPECT().Setup(gomock.Any()).Return(nil)
	verifier.EXPECT().Apply([]string{"stmt-1"}).Return(nil)
	verifier.EXPECT().Close(gomock.Any()).Return(nil)

	require.NoError(t, processSchema(path, loader, renderer, verifier))
}

func TestEndToEndRender(t *testing.T) {
	path := writeSchemaFile(t, sampleSchema)

	loader := NewFileSchemaLoader()
	renderer := NewPostgresRenderer()

	migration, err := loader.LoadSchema(path)
	require.NoError(t, err)

	stmts, err := renderer.Render(migration)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Contains(t, stmts[0], `CREATE TABLE "users"`)
	assert.Contains(t, stmts[0], `"email" VARCHAR(255) NOT NULL UNIQUE`)
}

func resetCommand() {
	dialectName = "postgres"
	verifyMode = false
	mcpMode = false
	rootCmd.ResetFlags()
	rootCmd.Flags().StringVarP(&dialectName, "dialect", "d", "postgres", "Target dialect for the generated DDL")
	rootCmd.Flags().BoolVar(&verifyMode, "verify", false, "Execute the generated DDL against a throwaway database")
	rootCmd.Flags().BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
}

func isDockerAvailable() bool {
	return os.Getenv("SCHEMAGEN_SKIP_DOCKER") == ""
}
