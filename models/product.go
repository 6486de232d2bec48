package models

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is the catalog entry as the backend returns it. Category holds the
// category id; CategoryName is only present on endpoints that join it in.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ImagePath    string  `json:"imagePath"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	CategoryName string  `json:"categoryName,omitempty"`
}

// CartItem is a product snapshot with the selected quantity. Quantity is at
// least 1 for any item held in a cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (ci CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
