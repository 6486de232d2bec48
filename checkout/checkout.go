// Package checkout drives order submission: it turns the cart into an order
// creation request and keeps the user's order history.
package checkout

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/ray-remotestate/comanda/cart"
	"github.com/ray-remotestate/comanda/models"
)

var (
	// ErrEmptyCart rejects checkout of an empty cart before anything is sent.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSubmitting rejects a second submission while one is in flight, so a
	// double-triggered checkout cannot create two orders.
	ErrSubmitting = errors.New("order submission already in progress")
)

// OrderAPI is the slice of the backend client the flow needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, table string, items []models.CartItem) (*models.Order, error)
	OrderHistory(ctx context.Context) ([]models.Order, error)
}

type Flow struct {
	api      OrderAPI
	cart     *cart.Cart
	history  []models.Order
	inFlight atomic.Bool
}

func New(api OrderAPI, c *cart.Cart) *Flow {
	return &Flow{api: api, cart: c}
}

func (f *Flow) Submitting() bool {
	return f.inFlight.Load()
}

// Submit sends the cart as an order for the given table. On success the cart
// is cleared and the returned order (status WAITING, server-computed total)
// is appended to the history. On any failure the cart is left untouched and
// nothing is retried.
func (f *Flow) Submit(ctx context.Context, table string) (*models.Order, error) {
	if !f.inFlight.CAS(false, true) {
		return nil, ErrSubmitting
	}
	defer f.inFlight.Store(false)

	if f.cart.Empty() {
		return nil, ErrEmptyCart
	}

	order, err := f.api.CreateOrder(ctx, table, f.cart.Items())
	if err != nil {
		return nil, err
	}

	f.cart.Clear()
	f.history = append(f.history, *order)
	logrus.Printf("order %s created for table %s", order.ID, order.Table)
	return order, nil
}

// History returns the orders seen this session, oldest first.
func (f *Flow) History() []models.Order {
	history := make([]models.Order, len(f.history))
	copy(history, f.history)
	return history
}

// RefreshHistory replaces the local history with the backend's record of the
// user's orders.
func (f *Flow) RefreshHistory(ctx context.Context) error {
	orders, err := f.api.OrderHistory(ctx)
	if err != nil {
		return err
	}
	f.history = orders
	return nil
}
