package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/outbox"
)

// memStore fakes the postgres repositories: an append-only order
// table with store-assigned ids and a kitchen outbox, sorted on read
// the same way the SQL listing query sorts.
type memStore struct {
	orders    []order.Order
	events    []*outbox.Event
	nextID    int64
	insertErr error
	listErr   error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) Insert(_ context.Context, o *order.Order) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	o.ID = s.nextID
	s.nextID++
	s.orders = append(s.orders, *o)
	return o.ID, nil
}

func (s *memStore) ListAll(_ context.Context) ([]order.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	sort.SliceStable(out, func(i, j int) bool { return order.Less(out[i], out[j]) })
	return out, nil
}

func (s *memStore) Create(_ context.Context, e *outbox.Event) error {
	s.events = append(s.events, e)
	return nil
}

func (s *memStore) FetchBatch(_ context.Context, limit int) ([]*outbox.Event, error) {
	if limit > len(s.events) {
		limit = len(s.events)
	}
	return s.events[:limit], nil
}

func (s *memStore) MarkPublished(_ context.Context, ids []string) error { return nil }
func (s *memStore) MarkFailed(_ context.Context, ids []string) error    { return nil }

// passTx runs the function without a real transaction.
type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validFields() map[string]string {
	return map[string]string{
		"room_number":    "101",
		"guests_count":   "2",
		"service_date":   "2024-06-01",
		"preferred_time": "08:00",
		"main_option":    "Sunny-side-up egg on rustic bread",
		"extra_option":   "",
		"notes":          "",
	}
}

func Test_SubmitOrder_PersistsRecord(t *testing.T) {
	store := newMemStore()
	uc := NewSubmitOrder(passTx{}, store, store)

	id, err := uc.Execute(context.Background(), order.Breakfast, validFields())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.orders, 1)
	got := store.orders[0]
	assert.Equal(t, order.Breakfast, got.MealType)
	assert.Equal(t, "101", got.RoomNumber)
	assert.Equal(t, 2, got.GuestsCount)
	assert.Equal(t, "2024-06-01", got.ServiceDate)
	assert.Equal(t, "08:00", got.PreferredTime)

	_, err = time.Parse(order.CreatedAtLayout, got.CreatedAt)
	assert.NoError(t, err, "created_at must be a valid timestamp string")
}

func Test_SubmitOrder_ValidationFailureWritesNothing(t *testing.T) {
	store := newMemStore()
	uc := NewSubmitOrder(passTx{}, store, store)

	fields := validFields()
	fields["main_option"] = "   "

	_, err := uc.Execute(context.Background(), order.Dinner, fields)

	var vErr *order.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, store.orders, "no partial write on validation failure")
	assert.Empty(t, store.events)
}

func Test_SubmitOrder_GuestsCountSoftFallback(t *testing.T) {
	store := newMemStore()
	uc := NewSubmitOrder(passTx{}, store, store)

	fields := validFields()
	fields["guests_count"] = "abc"

	_, err := uc.Execute(context.Background(), order.Lunch, fields)
	require.NoError(t, err)

	require.Len(t, store.orders, 1)
	assert.Equal(t, 1, store.orders[0].GuestsCount)
}

func Test_SubmitOrder_AssignsSequentialIDs(t *testing.T) {
	store := newMemStore()
	uc := NewSubmitOrder(passTx{}, store, store)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), order.Breakfast, validFields())
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), store.orders[0].ID)
	assert.Equal(t, int64(2), store.orders[1].ID)
	assert.Equal(t, int64(3), store.orders[2].ID)
}

func Test_SubmitOrder_QueuesKitchenNotification(t *testing.T) {
	store := newMemStore()
	uc := NewSubmitOrder(passTx{}, store, store)

	id, err := uc.Execute(context.Background(), order.Dinner, validFields())
	require.NoError(t, err)

	require.Len(t, store.events, 1)
	e := store.events[0]
	assert.Equal(t, outbox.EventTypeOrderReceived, e.EventType)
	assert.Equal(t, outbox.StatusNew, e.Status)
	assert.Equal(t, id, e.OrderID)
	assert.NotEmpty(t, e.ID)

	var payload order.Order
	require.NoError(t, json.Unmarshal(e.Payload, &payload))
	assert.Equal(t, id, payload.ID)
	assert.Equal(t, order.Dinner, payload.MealType)
}

func Test_SubmitOrder_StoreFailurePropagates(t *testing.T) {
	store := newMemStore()
	store.insertErr = errors.New("connection refused")
	uc := NewSubmitOrder(passTx{}, store, store)

	_, err := uc.Execute(context.Background(), order.Breakfast, validFields())
	require.Error(t, err)

	var vErr *order.ValidationError
	assert.False(t, errors.As(err, &vErr), "store failure is not a validation error")
}

func Test_ListOrders_ReadsAreIdempotent(t *testing.T) {
	store := newMemStore()
	submit := NewSubmitOrder(passTx{}, store, store)
	list := NewListOrders(store)

	ctx := context.Background()
	_, err := submit.Execute(ctx, order.Breakfast, validFields())
	require.NoError(t, err)

	first, err := list.Execute(ctx)
	require.NoError(t, err)
	second, err := list.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_ListOrders_Ordering(t *testing.T) {
	store := newMemStore()
	submit := NewSubmitOrder(passTx{}, store, store)
	list := NewListOrders(store)
	ctx := context.Background()

	later := validFields()
	later["preferred_time"] = "09:00"
	_, err := submit.Execute(ctx, order.Breakfast, later)
	require.NoError(t, err)

	lunch := validFields()
	lunch["preferred_time"] = "08:00"
	_, err = submit.Execute(ctx, order.Lunch, lunch)
	require.NoError(t, err)

	_, err = submit.Execute(ctx, order.Breakfast, validFields())
	require.NoError(t, err)

	orders, err := list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// 08:00 before 09:00; breakfast before lunch at the same time
	assert.Equal(t, order.Breakfast, orders[0].MealType)
	assert.Equal(t, "08:00", orders[0].PreferredTime)
	assert.Equal(t, order.Lunch, orders[1].MealType)
	assert.Equal(t, "09:00", orders[2].PreferredTime)
}

func Test_ListOrders_StoreFailurePropagates(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("connection refused")
	list := NewListOrders(store)

	_, err := list.Execute(context.Background())
	assert.Error(t, err)
}
