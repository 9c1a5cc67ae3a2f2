package mocks

import (
	"context"
	"errors"

	"github.com/godilite/windrose/internal/dataset"
)

// MockDatasetLoader is a mock implementation of the DatasetLoader interface
// for testing the service layer.
type MockDatasetLoader struct {
	LoadFunc func(ctx context.Context, path string) (*dataset.Dataset, error)
	Calls    []string
}

// Load implements the DatasetLoader interface
func (m *MockDatasetLoader) Load(ctx context.Context, path string) (*dataset.Dataset, error) {
	m.Calls = append(m.Calls, path)
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, path)
	}
	return nil, errors.New("LoadFunc not implemented")
}
