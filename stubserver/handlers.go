package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/comanda/models"
)

// OrderLine is the wire shape of one ordered product in POST /orders.
type OrderLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	userID, err := s.store.CreateUser(req.Name, req.Email, req.Password)
	if errors.Is(err, ErrUserExists) {
		writeError(w, http.StatusBadRequest, "user already exists")
		return
	}
	if err != nil {
		logrus.Printf("failed to create user, error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"user_id": userID.String(),
		"email":   req.Email,
		"name":    req.Name,
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	u, err := s.store.Authenticate(req.Email, req.Password)
	if errors.Is(err, ErrUnknownUser) || errors.Is(err, ErrWrongPassword) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	token, err := s.generateToken(u.ID)
	if err != nil {
		logrus.Printf("failed to generate token, error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"name":  u.Name,
		"email": u.Email,
	})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticatedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := s.store.UserByID(claims.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, models.User{Email: u.Email, Name: u.Name})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Products())
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories())
}

func (s *Server) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, s.store.ProductsByCategory(categoryID))
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticatedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	type request struct {
		Table    string      `json:"table"`
		Products []OrderLine `json:"products"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if len(req.Products) == 0 {
		writeError(w, http.StatusBadRequest, "order has no products")
		return
	}
	for _, line := range req.Products {
		if line.Quantity < 1 {
			writeError(w, http.StatusBadRequest, "quantity must be at least 1")
			return
		}
	}

	order, err := s.store.CreateOrder(claims.UserID, req.Table, req.Products)
	if errors.Is(err, ErrUnknownProduct) {
		writeError(w, http.StatusBadRequest, "unknown product in order")
		return
	}
	if err != nil {
		logrus.Printf("failed to create order, error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Orders())
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	type request struct {
		Status models.OrderStatus `json:"status"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if !req.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	err := s.store.UpdateOrderStatus(orderID, req.Status)
	switch {
	case errors.Is(err, ErrUnknownOrder):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, ErrBadStatusChange):
		writeError(w, http.StatusConflict, "status can only move forward")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update order")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
	}
}

func (s *Server) listUserOrders(w http.ResponseWriter, r *http.Request) {
	claims, err := authenticatedUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, s.store.OrdersByUser(claims.UserID))
}
