package main

import (
	"context"
	"fmt"

	"github.com/alc6/schemagen/schema"
)

// MockSchemaLoader is a mock implementation of SchemaLoader for testing
type MockSchemaLoader struct {
	LoadSchemaFunc func(path string) (*schema.Migration, error)

	LoadSchemaCalled bool
}

func (m *MockSchemaLoader) LoadSchema(path string) (*schema.Migration, error) {
	m.LoadSchemaCalled = true
	if m.LoadSchemaFunc != nil {
		return m.LoadSchemaFunc(path)
	}
	return schema.New(), nil
}

// MockSchemaRenderer is a mock implementation of SchemaRenderer for testing
type MockSchemaRenderer struct {
	RenderFunc  func(m *schema.Migration) ([]string, error)
	DialectFunc func() string

	RenderCalled bool
}

func (m *MockSchemaRenderer) Render(mig *schema.Migration) ([]string, error) {
	m.RenderCalled = true
	if m.RenderFunc != nil {
		return m.RenderFunc(mig)
	}
	return []string{}, nil
}

func (m *MockSchemaRenderer) Dialect() string {
	if m.DialectFunc != nil {
		return m.DialectFunc()
	}
	return "mock"
}

// MockDatabaseVerifier is a mock implementation of DatabaseVerifier for testing
type MockDatabaseVerifier struct {
	SetupFunc func(ctx context.Context) error
	CloseFunc func(ctx context.Context) error
	ApplyFunc func(statements []string) error

	// Track calls for verification
	SetupCalled bool
	CloseCalled bool
	ApplyCalled bool
	Applied     []string
}

func (m *MockDatabaseVerifier) Setup(ctx context.Context) error {
	m.SetupCalled = true
	if m.SetupFunc != nil {
		return m.SetupFunc(ctx)
	}
	return nil
}

func (m *MockDatabaseVerifier) Close(ctx context.Context) error {
	m.CloseCalled = true
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx)
	}
	return nil
}

func (m *MockDatabaseVerifier) Apply(statements []string) error {
	m.ApplyCalled = true
	m.Applied = append(m.Applied, statements...)
	if m.ApplyFunc != nil {
		return m.ApplyFunc(statements)
	}
	return nil
}

// SimulateError simulates various database errors for testing
func SimulateError(errType string) error {
	switch errType {
	case "connection":
		return fmt.Errorf("connection refused")
	case "syntax":
		return fmt.Errorf("syntax error at or near 'INVALID'")
	case "permission":
		return fmt.Errorf("permission denied")
	default:
		return fmt.Errorf("simulated error: %s", errType)
	}
}
