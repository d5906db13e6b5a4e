package service

import (
	"context"

	"koerplan/internal/domain/entity"
)

// Geocoder looks up free-text addresses
type Geocoder interface {
	// Search returns candidates best match first. An empty slice with a nil
	// error means the address was not found; an error means the service failed.
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}
