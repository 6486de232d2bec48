package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/comanda/models"
)

type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Login authenticates against the backend and, only on success, stores the
// returned token: durably when remember is set, in process memory otherwise.
func (c *Client) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		logrus.Printf("login failed for %s: %v", email, err)
		return nil, err
	}

	if err := c.session.Save(result.Token, remember); err != nil {
		return nil, err
	}
	return &result, nil
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Register creates a new account. Validation failures never reach the wire.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	if err := validateRegister(in); err != nil {
		return err
	}

	if err := c.do(ctx, http.MethodPost, "/users", in, nil); err != nil {
		logrus.Printf("registration failed for %s: %v", in.Email, err)
		return err
	}
	return nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	path := "/categories/" + url.PathEscape(categoryID) + "/products"
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Orders lists every order; the backend restricts this to admin sessions.
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderHistory lists the current user's own orders.
func (c *Client) OrderHistory(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/user/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits the cart as an order for the given table. Lines carry
// product ids and quantities; the server owns the total.
func (c *Client) CreateOrder(ctx context.Context, table string, items []models.CartItem) (*models.Order, error) {
	type line struct {
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}
	body := struct {
		Table    string `json:"table"`
		Products []line `json:"products"`
	}{Table: table, Products: make([]line, 0, len(items))}

	for _, item := range items {
		body.Products = append(body.Products, line{Product: item.Product.ID, Quantity: item.Quantity})
	}

	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", body, &order); err != nil {
		logrus.Printf("order creation failed: %v", err)
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	body := struct {
		Status models.OrderStatus `json:"status"`
	}{Status: status}

	path := "/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		logrus.Printf("status update failed for order %s: %v", orderID, err)
		return err
	}
	return nil
}
