// Package stubserver is an in-memory implementation of the backend REST
// surface the storefront consumes. It backs local development and the
// client-side tests; the real backend remains a separate system.
package stubserver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Server struct {
	Router *mux.Router
	server *http.Server
	store  *Store
	secret []byte
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func New(secret string) *Server {
	s := &Server{
		store:  NewStore(),
		secret: []byte(secret),
	}

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/users", s.register).Methods("POST")
	router.HandleFunc("/login", s.login).Methods("POST")

	authRoutes := router.PathPrefix("/").Subrouter()
	authRoutes.Use(s.authMiddleware)

	authRoutes.HandleFunc("/user/profile", s.profile).Methods("GET")
	authRoutes.HandleFunc("/user/orders", s.listUserOrders).Methods("GET")
	authRoutes.HandleFunc("/products", s.listProducts).Methods("GET")
	authRoutes.HandleFunc("/categories", s.listCategories).Methods("GET")
	authRoutes.HandleFunc("/categories/{id}/products", s.listCategoryProducts).Methods("GET")
	authRoutes.HandleFunc("/orders", s.listOrders).Methods("GET")
	authRoutes.HandleFunc("/orders", s.createOrder).Methods("POST")
	authRoutes.HandleFunc("/orders/{id}", s.updateOrderStatus).Methods("PATCH")

	s.Router = router
	return s
}

// Store exposes the backing data, mainly so tests can inspect and seed it.
func (s *Server) Store() *Store {
	return s.store
}

func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
