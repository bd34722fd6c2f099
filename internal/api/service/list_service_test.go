package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/notify"
)

type fakeListRepo struct {
	lists  map[int64]*models.List
	nextID int64
}

func (r *fakeListRepo) CreateList(ctx context.Context, ownerID int64, name string, description *string) (*models.List, error) {
	r.nextID++
	list := &models.List{ID: r.nextID, OwnerID: ownerID, Name: name, Description: description, CreatedAt: time.Now()}
	r.lists[list.ID] = list
	return list, nil
}

func (r *fakeListRepo) ListLists(ctx context.Context, ownerID int64) ([]models.List, error) {
	return nil, nil
}

func (r *fakeListRepo) GetList(ctx context.Context, ownerID, listID int64) (*models.ListWithItems, error) {
	return nil, nil
}

func (r *fakeListRepo) UpdateList(ctx context.Context, ownerID, listID int64, name, description *string) (*models.List, error) {
	return r.lists[listID], nil
}

func (r *fakeListRepo) DeleteList(ctx context.Context, ownerID, listID int64) error {
	delete(r.lists, listID)
	return nil
}

func TestListMutationsPublishEvents(t *testing.T) {
	hub := notify.NewHub()
	svc := NewListService(&fakeListRepo{lists: map[int64]*models.List{}}, hub)
	ctx := context.Background()

	events, cancel := hub.Subscribe(1)
	defer cancel()

	list, err := svc.Create(ctx, 1, &models.CreateListRequest{Name: "Groceries"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, 1, list.ID, &models.UpdateListRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1, list.ID))

	want := []string{notify.EventListCreated, notify.EventListUpdated, notify.EventListDeleted}
	for _, wantType := range want {
		select {
		case data := <-events:
			var ev notify.Event
			require.NoError(t, json.Unmarshal(data, &ev))
			assert.Equal(t, wantType, ev.Type)
			assert.Equal(t, list.ID, ev.ListID)
		default:
			t.Fatalf("missing %s event", wantType)
		}
	}
}
