// Package items implements the inventory CRUD endpoints.
package items

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
)

const msgItemNotFound = "Item not found."

// Service applies inventory operations to a Store and maps store failures onto apperror types.
type Service struct {
	store Store
	log   *zap.Logger
}

// NewService creates a new Service.
func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// List returns all items ordered by id.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to fetch items.", err)
	}
	return list, nil
}

// Get returns one item.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, s.mapErr(err, "Failed to fetch item.")
	}
	return item, nil
}

// Create inserts a new item built from req.
func (s *Service) Create(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	item := &Item{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	}
	if err := s.store.Create(ctx, item); err != nil {
		return nil, apperror.NewDatabaseError("Failed to add item.", err)
	}
	return item, nil
}

// Update overwrites the item named by req.ID.
func (s *Service) Update(ctx context.Context, req *UpdateItemRequest) (*Item, error) {
	item := &Item{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	}
	if err := s.store.Update(ctx, item); err != nil {
		return nil, s.mapErr(err, "Failed to update item.")
	}
	return item, nil
}

// Delete removes the item with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return s.mapErr(err, "Failed to delete item.")
	}
	return nil
}

func (s *Service) mapErr(err error, dbMsg string) error {
	if errors.Is(err, ErrItemNotFound) {
		return apperror.NewNotFoundError(msgItemNotFound, nil)
	}
	return apperror.NewDatabaseError(dbMsg, err)
}
