package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/comanda/models"
	"github.com/ray-remotestate/comanda/session"
)

func newTestClient(t *testing.T, baseURL string) (*Client, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	c := New(Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Session: store,
	})
	return c, store
}

func TestBearerHeaderAttachedWhenAuthenticated(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer server.Close()

	c, store := newTestClient(t, server.URL)
	require.NoError(t, store.Save("tok-123", false))

	_, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	_, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	err := c.Register(context.Background(), RegisterInput{
		Name: "Maria", Email: "maria@example.com", Password: "secret1",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "user already exists", apiErr.Message)
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	_, err := c.Products(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestRequestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	c := New(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond, Session: store})

	_, err := c.Products(context.Background())
	assert.Error(t, err)
}

func TestLoginValidation(t *testing.T) {
	c, store := newTestClient(t, "http://unused")

	_, err := c.Login(context.Background(), "", "", false)
	require.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestLoginFailureStoresNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer server.Close()

	c, store := newTestClient(t, server.URL)

	_, err := c.Login(context.Background(), "maria@example.com", "wrong", true)
	require.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestLoginSuccessStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"token": "tok-abc", "name": "Maria", "email": "maria@example.com",
		})
	}))
	defer server.Close()

	c, store := newTestClient(t, server.URL)

	result, err := c.Login(context.Background(), "maria@example.com", "secret1", false)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", result.Token)
	assert.Equal(t, "tok-abc", store.Token())
	assert.Equal(t, session.ScopeEphemeral, store.CurrentScope())
}

func TestRegisterValidationAggregatesErrors(t *testing.T) {
	c, _ := newTestClient(t, "http://unused")

	err := c.Register(context.Background(), RegisterInput{
		Password:        "abc",
		ConfirmPassword: "abd",
	})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "email is required")
	assert.Contains(t, msg, "at least 6 characters")
	assert.Contains(t, msg, "do not match")
}

func TestCreateOrderSendsCartLines(t *testing.T) {
	var got struct {
		Table    string `json:"table"`
		Products []struct {
			Product  string `json:"product"`
			Quantity int    `json:"quantity"`
		} `json:"products"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Table: got.Table, Status: models.StatusWaiting, Total: 72.80})
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	items := []models.CartItem{
		{Product: models.Product{ID: "p1", Price: 32.90}, Quantity: 2},
		{Product: models.Product{ID: "p2", Price: 7.00}, Quantity: 1},
	}
	order, err := c.CreateOrder(context.Background(), "12", items)
	require.NoError(t, err)

	assert.Equal(t, "12", got.Table)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "p1", got.Products[0].Product)
	assert.Equal(t, 2, got.Products[0].Quantity)

	// the server's total is authoritative; the client does not recompute it
	assert.InDelta(t, 72.80, order.Total, 1e-9)
}

func TestUpdateOrderStatusPatches(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "status updated"})
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	err := c.UpdateOrderStatus(context.Background(), "o1", models.StatusInProduction)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/orders/o1", gotPath)
	assert.Equal(t, "IN_PRODUCTION", gotBody["status"])
}
