package stubserver

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ray-remotestate/comanda/models"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUnknownUser     = errors.New("unknown user")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrUnknownOrder    = errors.New("unknown order")
	ErrBadStatusChange = errors.New("status can only move forward")
)

type user struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

// Store is the in-memory stand-in for the backend's persistence. It is safe
// for concurrent handlers.
type Store struct {
	mu         sync.Mutex
	users      map[string]*user // keyed by lowercased email
	products   []models.Product
	categories []models.Category
	orders     []models.Order
	orderUser  map[string]uuid.UUID
}

func NewStore() *Store {
	s := &Store{
		users:     make(map[string]*user),
		orderUser: make(map[string]uuid.UUID),
	}
	s.seed()
	return s
}

func (s *Store) CreateUser(name, email, password string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.users[key]; ok {
		return uuid.Nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	u := &user{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	s.users[key] = u
	return u.ID, nil
}

func (s *Store) Authenticate(email, password string) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrUnknownUser
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}

func (s *Store) UserByID(id uuid.UUID) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUnknownUser
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) ProductsByCategory(categoryID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// CreateOrder builds the order from product ids, snapshotting name and price
// and computing the total server-side.
func (s *Store) CreateOrder(userID uuid.UUID, table string, lines []OrderLine) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:        uuid.New().String(),
		Table:     table,
		Status:    models.StatusWaiting,
		CreatedAt: time.Now().UTC(),
	}

	for _, line := range lines {
		p, ok := s.productByID(line.Product)
		if !ok {
			return models.Order{}, ErrUnknownProduct
		}
		order.Products = append(order.Products, models.OrderItem{
			Product:  models.OrderProduct{ID: p.ID, Name: p.Name, Price: p.Price},
			Quantity: line.Quantity,
		})
		order.Total += p.Price * float64(line.Quantity)
	}

	s.orders = append(s.orders, order)
	s.orderUser[order.ID] = userID
	return order, nil
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrdersByUser(userID uuid.UUID) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if s.orderUser[o.ID] == userID {
			out = append(out, o)
		}
	}
	return out
}

// UpdateOrderStatus applies a status change, enforcing the forward-only
// sequence WAITING -> IN_PRODUCTION -> DONE.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID != orderID {
			continue
		}
		next, ok := o.Status.Next()
		if !ok || next != status {
			return ErrBadStatusChange
		}
		s.orders[i].Status = status
		return nil
	}
	return ErrUnknownOrder
}

func (s *Store) productByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) seed() {
	burgers := models.Category{ID: uuid.New().String(), Name: "Burgers"}
	pizzas := models.Category{ID: uuid.New().String(), Name: "Pizzas"}
	drinks := models.Category{ID: uuid.New().String(), Name: "Drinks"}
	s.categories = []models.Category{burgers, pizzas, drinks}

	s.products = []models.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Dragon Burger",
			Description: "House burger with pepper jam",
			ImagePath:   "dragon-burger.png",
			Price:       32.90,
			Category:    burgers.ID,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Cheese Burger",
			Description: "Classic with cheddar",
			ImagePath:   "cheese-burger.png",
			Price:       27.50,
			Category:    burgers.ID,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Margherita",
			Description: "Tomato, mozzarella and basil",
			ImagePath:   "margherita.png",
			Price:       45.00,
			Category:    pizzas.ID,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Calabresa",
			Description: "Calabresa sausage and onion",
			ImagePath:   "calabresa.png",
			Price:       48.00,
			Category:    pizzas.ID,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Guarana",
			Description: "Soft drink 350ml",
			ImagePath:   "guarana.png",
			Price:       7.00,
			Category:    drinks.ID,
		},
	}
}
