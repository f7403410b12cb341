package ports

import (
	"context"

	"go.trai.ch/atlas/internal/core/domain"
)

// DatasetLoader reads every category dataset from a directory.
//
//go:generate mockgen -source=dataset.go -destination=mocks/mock_dataset.go -package=mocks
type DatasetLoader interface {
	// Load reads all datasets in dir. A category that fails is left empty and
	// reported in Catalog.Failures; only an unusable directory is an error.
	Load(ctx context.Context, dir string) (*domain.Catalog, error)
}
