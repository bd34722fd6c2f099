package service

import (
	"context"

	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/repository"
	"github.com/helix90/list-handler/internal/notify"
)

// ListService defines the interface for list operations. The owner is the
// authenticated principal; ownership itself is enforced by the repository.
type ListService interface {
	Create(ctx context.Context, ownerID int64, req *models.CreateListRequest) (*models.List, error)
	GetAll(ctx context.Context, ownerID int64) ([]models.List, error)
	Get(ctx context.Context, ownerID, listID int64) (*models.ListWithItems, error)
	Update(ctx context.Context, ownerID, listID int64, req *models.UpdateListRequest) (*models.List, error)
	Delete(ctx context.Context, ownerID, listID int64) error
}

type listService struct {
	listRepo repository.ListRepository
	hub      *notify.Hub
}

// NewListService creates a new ListService.
func NewListService(listRepo repository.ListRepository, hub *notify.Hub) ListService {
	return &listService{listRepo: listRepo, hub: hub}
}

func (s *listService) Create(ctx context.Context, ownerID int64, req *models.CreateListRequest) (*models.List, error) {
	list, err := s.listRepo.CreateList(ctx, ownerID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventListCreated, ListID: list.ID})
	return list, nil
}

func (s *listService) GetAll(ctx context.Context, ownerID int64) ([]models.List, error) {
	return s.listRepo.ListLists(ctx, ownerID)
}

func (s *listService) Get(ctx context.Context, ownerID, listID int64) (*models.ListWithItems, error) {
	return s.listRepo.GetList(ctx, ownerID, listID)
}

func (s *listService) Update(ctx context.Context, ownerID, listID int64, req *models.UpdateListRequest) (*models.List, error) {
	list, err := s.listRepo.UpdateList(ctx, ownerID, listID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventListUpdated, ListID: list.ID})
	return list, nil
}

func (s *listService) Delete(ctx context.Context, ownerID, listID int64) error {
	if err := s.listRepo.DeleteList(ctx, ownerID, listID); err != nil {
		return err
	}
	s.hub.Publish(ownerID, notify.Event{Type: notify.EventListDeleted, ListID: listID})
	return nil
}
