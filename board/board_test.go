package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/comanda/models"
)

type fakeAPI struct {
	orders    []models.Order
	patchErr  error
	patched   map[string]models.OrderStatus
	loadCalls int
}

func (f *fakeAPI) Orders(ctx context.Context) ([]models.Order, error) {
	f.loadCalls++
	return f.orders, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	if f.patched == nil {
		f.patched = make(map[string]models.OrderStatus)
	}
	f.patched[orderID] = status
	return nil
}

func loadedBoard(t *testing.T, api *fakeAPI) *Board {
	t.Helper()
	b := New(api)
	require.NoError(t, b.Load(context.Background()))
	return b
}

func testOrders() []models.Order {
	return []models.Order{
		{ID: "abc123", Table: "Table 4", Status: models.StatusWaiting},
		{ID: "def456", Table: "Table 12", Status: models.StatusInProduction},
		{ID: "ghi789", Table: "Counter", Status: models.StatusDone},
	}
}

func TestSearchMatchesIDOrTable(t *testing.T) {
	b := loadedBoard(t, &fakeAPI{orders: testOrders()})

	got := b.Search("ABC")
	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].ID)

	got = b.Search("table")
	assert.Len(t, got, 2)

	got = b.Search("counter")
	require.Len(t, got, 1)
	assert.Equal(t, "ghi789", got[0].ID)

	assert.Empty(t, b.Search("biro"))
}

func TestAdvanceMovesForward(t *testing.T) {
	api := &fakeAPI{orders: testOrders()}
	b := loadedBoard(t, api)

	status, err := b.Advance(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProduction, status)
	assert.Equal(t, models.StatusInProduction, api.patched["abc123"])
	assert.Equal(t, models.StatusInProduction, b.Orders()[0].Status)

	status, err = b.Advance(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, status)
}

func TestAdvanceDoneIsNoOp(t *testing.T) {
	api := &fakeAPI{orders: testOrders()}
	b := loadedBoard(t, api)

	status, err := b.Advance(context.Background(), "ghi789")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, status)
	assert.Empty(t, api.patched) // no update was issued
}

func TestAdvanceFailureKeepsPriorStatus(t *testing.T) {
	api := &fakeAPI{orders: testOrders(), patchErr: errors.New("backend down")}
	b := loadedBoard(t, api)

	status, err := b.Advance(context.Background(), "abc123")
	require.Error(t, err)
	assert.Equal(t, models.StatusWaiting, status)
	assert.Equal(t, models.StatusWaiting, b.Orders()[0].Status)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	b := loadedBoard(t, &fakeAPI{orders: testOrders()})

	_, err := b.Advance(context.Background(), "missing")
	assert.Error(t, err)
}
