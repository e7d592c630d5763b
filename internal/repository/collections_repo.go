package repository

import (
	"context"
	"errors"

	"tolet-api/internal/domain"
)

// ErrNotFound is returned when no collection row matches the given id.
// Callers distinguish it from storage failures with errors.Is.
var ErrNotFound = errors.New("collection not found")

// CollectionsRepository is the storage contract for collections. Both the
// Postgres implementation and the in-memory substitute satisfy it, so the
// HTTP layer can be exercised without a database.
type CollectionsRepository interface {
	// ListCollections returns the whole table in storage order (no ORDER BY;
	// callers must not depend on the ordering).
	ListCollections(ctx context.Context) ([]domain.Collection, error)

	// GetCollection returns the collection with the given id, or ErrNotFound.
	GetCollection(ctx context.Context, id int) (*domain.Collection, error)

	// InsertCollection persists a new collection and returns it with the
	// server-assigned id and createdAt, in a single round trip.
	InsertCollection(ctx context.Context, in domain.CreateCollection) (*domain.Collection, error)

	// UpdateCollection applies a partial update in a single conditional
	// statement: fields absent from the patch keep their stored values, and
	// createdAt is refreshed to the update time. Returns ErrNotFound when no
	// row matches.
	UpdateCollection(ctx context.Context, id int, in domain.UpdateCollection) (*domain.Collection, error)

	// DeleteCollection removes the row with the given id (hard delete).
	// Returns ErrNotFound when no row matches.
	DeleteCollection(ctx context.Context, id int) error
}
