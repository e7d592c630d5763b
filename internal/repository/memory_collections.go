package repository

import (
	"context"
	"sync"
	"time"

	"tolet-api/internal/domain"
)

// MemoryCollectionsRepository is an in-memory CollectionsRepository used by
// tests as a database-free substitute. Iteration order is insertion order,
// matching the natural order of an append-only table.
type MemoryCollectionsRepository struct {
	mu     sync.RWMutex
	nextID int
	order  []int
	items  map[int]domain.Collection
}

func NewMemoryCollectionsRepository() *MemoryCollectionsRepository {
	return &MemoryCollectionsRepository{
		nextID: 1,
		items:  map[int]domain.Collection{},
	}
}

var _ CollectionsRepository = (*MemoryCollectionsRepository)(nil)

func (r *MemoryCollectionsRepository) ListCollections(_ context.Context) ([]domain.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Collection, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, cloneCollection(r.items[id]))
	}
	return all, nil
}

func (r *MemoryCollectionsRepository) GetCollection(_ context.Context, id int) (*domain.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneCollection(c)
	return &out, nil
}

func (r *MemoryCollectionsRepository) InsertCollection(_ context.Context, in domain.CreateCollection) (*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := domain.Collection{
		ID:                 r.nextID,
		Title:              derefString(in.Title),
		DisplayImageURL:    derefString(in.DisplayImageURL),
		Description:        in.Description,
		Location:           derefString(in.Location),
		ContactInformation: derefString(in.ContactInformation),
		Amenities:          append([]domain.Amenity{}, in.Amenities...),
		Listings:           append([]domain.Listing{}, in.Listings...),
		Rules:              append([]string{}, in.Rules...),
		CreatedAt:          time.Now().UTC(),
	}
	r.nextID++
	r.items[c.ID] = c
	r.order = append(r.order, c.ID)

	out := cloneCollection(c)
	return &out, nil
}

func (r *MemoryCollectionsRepository) UpdateCollection(_ context.Context, id int, in domain.UpdateCollection) (*domain.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.Title != nil {
		c.Title = *in.Title
	}
	if in.DisplayImageURL != nil {
		c.DisplayImageURL = *in.DisplayImageURL
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.ContactInformation != nil {
		c.ContactInformation = *in.ContactInformation
	}
	if in.Amenities != nil {
		c.Amenities = append([]domain.Amenity{}, in.Amenities...)
	}
	if in.Listings != nil {
		c.Listings = append([]domain.Listing{}, in.Listings...)
	}
	if in.Rules != nil {
		c.Rules = append([]string{}, in.Rules...)
	}
	// Every update refreshes the creation timestamp (preserved policy).
	c.CreatedAt = time.Now().UTC()

	r.items[id] = c
	out := cloneCollection(c)
	return &out, nil
}

func (r *MemoryCollectionsRepository) DeleteCollection(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneCollection(c domain.Collection) domain.Collection {
	out := c
	out.Amenities = append([]domain.Amenity{}, c.Amenities...)
	out.Listings = append([]domain.Listing{}, c.Listings...)
	out.Rules = append([]string{}, c.Rules...)
	if c.Description != nil {
		d := *c.Description
		out.Description = &d
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
