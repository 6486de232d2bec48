package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ray-remotestate/comanda/models"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "R$ 32.90", Price(32.9))
	assert.Equal(t, "R$ 0.00", Price(0))
}

func TestImagePath(t *testing.T) {
	p := models.Product{ImagePath: "dragon-burger.png"}
	assert.Equal(t, "/images/dragon-burger.png", ImagePath(p))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Waiting", StatusLabel(models.StatusWaiting))
	assert.Equal(t, "In production", StatusLabel(models.StatusInProduction))
	assert.Equal(t, "Done", StatusLabel(models.StatusDone))
	assert.Equal(t, "ODD", StatusLabel(models.OrderStatus("ODD")))
}

func TestCartEmpty(t *testing.T) {
	assert.Equal(t, "Your cart is empty.\n", Cart(nil, 0))
}

func TestCartListsLinesAndTotal(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{ID: "p1", Name: "Dragon Burger", Price: 32.90}, Quantity: 2},
		{Product: models.Product{ID: "p2", Name: "Guarana", Price: 7.00}, Quantity: 1},
	}
	out := Cart(items, 72.80)

	assert.Contains(t, out, "Dragon Burger")
	assert.Contains(t, out, "Guarana")
	assert.Contains(t, out, "R$ 65.80")
	assert.Contains(t, out, "R$ 72.80")
}

func TestOrders(t *testing.T) {
	orders := []models.Order{{
		ID: "o1", Table: "12", Status: models.StatusWaiting, Total: 25,
		Products: []models.OrderItem{
			{Product: models.OrderProduct{Name: "Margherita", Price: 25}, Quantity: 1},
		},
	}}
	out := Orders(orders)

	assert.Contains(t, out, "Order o1")
	assert.Contains(t, out, "table 12")
	assert.Contains(t, out, "Waiting")
	assert.Contains(t, out, "Margherita")
	assert.Contains(t, out, "R$ 25.00")
}

func TestProductsEmpty(t *testing.T) {
	assert.Equal(t, "No products found.\n", Products(nil))
}
