package domain

import "context"

// DatasetLoader loads the four report sources into memory
type DatasetLoader interface {
	Load(ctx context.Context) (*Dataset, error)
}
