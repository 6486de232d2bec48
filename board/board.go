// Package board is the admin order board: the full order list with search
// and the forward-only status advance.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/comanda/models"
)

// OrderAPI is the slice of the backend client the board needs.
type OrderAPI interface {
	Orders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}

type Board struct {
	api    OrderAPI
	orders []models.Order
}

func New(api OrderAPI) *Board {
	return &Board{api: api}
}

func (b *Board) Load(ctx context.Context) error {
	orders, err := b.api.Orders(ctx)
	if err != nil {
		return err
	}
	b.orders = orders
	return nil
}

func (b *Board) Orders() []models.Order {
	return b.orders
}

// Search matches the term against order id or table, case-insensitive; an
// order qualifies when either field contains it.
func (b *Board) Search(term string) []models.Order {
	needle := strings.ToLower(term)

	var out []models.Order
	for _, o := range b.orders {
		if strings.Contains(strings.ToLower(o.ID), needle) ||
			strings.Contains(strings.ToLower(o.Table), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Advance moves an order to its next status. The backend is updated first;
// the local list is only patched once the server confirms, so a failed update
// leaves the prior status visible. Orders already DONE stay as they are.
func (b *Board) Advance(ctx context.Context, orderID string) (models.OrderStatus, error) {
	i := b.indexOf(orderID)
	if i < 0 {
		return "", fmt.Errorf("unknown order %s", orderID)
	}

	next, ok := b.orders[i].Status.Next()
	if !ok {
		return b.orders[i].Status, nil
	}

	if err := b.api.UpdateOrderStatus(ctx, orderID, next); err != nil {
		logrus.Printf("failed to advance order %s: %v", orderID, err)
		return b.orders[i].Status, err
	}

	b.orders[i].Status = next
	return next, nil
}

func (b *Board) indexOf(orderID string) int {
	for i, o := range b.orders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}
