package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tolet-api/internal/domain"
	"tolet-api/internal/repository"
)

// CollectionService exposes the five CRUD operations over the collections
// repository. Each operation is stateless and maps to a single storage
// round trip; repository.ErrNotFound passes through for the HTTP layer to
// translate, everything else is a storage failure.
type CollectionService struct {
	repo   repository.CollectionsRepository
	logger *zap.Logger
}

func NewCollectionService(repo repository.CollectionsRepository, logger *zap.Logger) *CollectionService {
	return &CollectionService{
		repo:   repo,
		logger: logger,
	}
}

// ListAll returns every collection in storage order. No pagination.
func (s *CollectionService) ListAll(ctx context.Context) ([]domain.Collection, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		s.logger.Error("ListAll failed", zap.Error(err))
		return nil, err
	}
	return collections, nil
}

// GetByID returns the collection with the given id.
func (s *CollectionService) GetByID(ctx context.Context, id int) (*domain.Collection, error) {
	if id <= 0 {
		return nil, repository.ErrNotFound
	}
	c, err := s.repo.GetCollection(ctx, id)
	if err != nil {
		if err != repository.ErrNotFound {
			s.logger.Error("GetByID failed", zap.Int("id", id), zap.Error(err))
		}
		return nil, err
	}
	return c, nil
}

// Create persists a new collection and returns it with the server-assigned
// id and createdAt.
func (s *CollectionService) Create(ctx context.Context, in domain.CreateCollection) (*domain.Collection, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create schema: %w", err)
	}
	c, err := s.repo.InsertCollection(ctx, in)
	if err != nil {
		s.logger.Error("Create failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("collection created", zap.Int("id", c.ID))
	return c, nil
}

// Update applies a partial update; absent fields keep their stored values and
// createdAt is refreshed to the update time.
func (s *CollectionService) Update(ctx context.Context, id int, in domain.UpdateCollection) (*domain.Collection, error) {
	if id <= 0 {
		return nil, repository.ErrNotFound
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update schema: %w", err)
	}
	c, err := s.repo.UpdateCollection(ctx, id, in)
	if err != nil {
		if err != repository.ErrNotFound {
			s.logger.Error("Update failed", zap.Int("id", id), zap.Error(err))
		}
		return nil, err
	}
	s.logger.Info("collection updated", zap.Int("id", id))
	return c, nil
}

// Delete removes the collection with the given id (hard delete).
func (s *CollectionService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return repository.ErrNotFound
	}
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		if err != repository.ErrNotFound {
			s.logger.Error("Delete failed", zap.Int("id", id), zap.Error(err))
		}
		return err
	}
	s.logger.Info("collection deleted", zap.Int("id", id))
	return nil
}
