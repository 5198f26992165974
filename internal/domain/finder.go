package domain

import "context"

// Finder fetches raw records from a category's upstream dataset.
type Finder interface {
	// FindFacilities returns every record matching a city name or postal
	// code. An empty slice means no match.
	FindFacilities(ctx context.Context, c Category, location string) ([]RawRecord, error)

	// FindByIdentifier returns the first record with the given provider
	// identifier, or ErrNotFound.
	FindByIdentifier(ctx context.Context, c Category, id string) (RawRecord, error)
}
