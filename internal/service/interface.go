package service

import (
	"context"

	"github.com/godilite/windrose/internal/dataset"
)

// DatasetLoader defines how the tracker reads a rating dataset from a path.
type DatasetLoader interface {
	Load(ctx context.Context, path string) (*dataset.Dataset, error)
}
