package service

import (
	"context"

	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/repository"
	"github.com/helix90/list-handler/internal/notify"
)

// ItemService defines the interface for item operations within a list the
// principal owns.
type ItemService interface {
	GetAll(ctx context.Context, ownerID, listID int64) ([]models.Item, error)
	Add(ctx context.Context, ownerID, listID int64, req *models.CreateItemRequest) (*models.Item, error)
	Update(ctx context.Context, ownerID, listID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error)
	Delete(ctx context.Context, ownerID, listID, itemID int64) error
	Toggle(ctx context.Context, ownerID, listID, itemID int64) (*models.Item, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	hub      *notify.Hub
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, hub *notify.Hub) ItemService {
	return &itemService{itemRepo: itemRepo, hub: hub}
}

func (s *itemService) GetAll(ctx context.Context, ownerID, listID int64) ([]models.Item, error) {
	return s.itemRepo.ListItems(ctx, ownerID, listID)
}

func (s *itemService) Add(ctx context.Context, ownerID, listID int64, req *models.CreateItemRequest) (*models.Item, error) {
	item, err := s.itemRepo.AddItem(ctx, ownerID, listID, req.Content, req.IsCompleted)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventItemAdded, ListID: listID, ItemID: item.ID})
	return item, nil
}

func (s *itemService) Update(ctx context.Context, ownerID, listID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.itemRepo.UpdateItem(ctx, ownerID, listID, itemID, req.Content, req.IsCompleted)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventItemUpdated, ListID: listID, ItemID: itemID})
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, ownerID, listID, itemID int64) error {
	if err := s.itemRepo.DeleteItem(ctx, ownerID, listID, itemID); err != nil {
		return err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventItemDeleted, ListID: listID, ItemID: itemID})
	return nil
}

func (s *itemService) Toggle(ctx context.Context, ownerID, listID, itemID int64) (*models.Item, error) {
	item, err := s.itemRepo.ToggleItem(ctx, ownerID, listID, itemID)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventItemToggled, ListID: listID, ItemID: itemID})
	return item, nil
}
