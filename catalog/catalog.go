// Package catalog is the view-model behind the product listing: the fetched
// products and categories plus the active search term and category filter.
// Identity lookups live here so id comparisons are not scattered around.
package catalog

import (
	"context"
	"strings"

	"github.com/ray-remotestate/comanda/models"
)

// Source is the slice of the API the catalog reads from.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type Catalog struct {
	src        Source
	products   []models.Product
	categories []models.Category
	term       string
	categoryID string
}

func New(src Source) *Catalog {
	return &Catalog{src: src}
}

// Refresh reloads products and categories from the backend. On failure the
// previously loaded state is kept.
func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.src.Products(ctx)
	if err != nil {
		return err
	}
	categories, err := c.src.Categories(ctx)
	if err != nil {
		return err
	}
	c.products = products
	c.categories = categories
	return nil
}

func (c *Catalog) SetSearch(term string) {
	c.term = term
}

func (c *Catalog) Search() string {
	return c.term
}

func (c *Catalog) SetCategory(categoryID string) {
	c.categoryID = categoryID
}

func (c *Catalog) ClearCategory() {
	c.categoryID = ""
}

func (c *Catalog) ActiveCategory() string {
	return c.categoryID
}

func (c *Catalog) Products() []models.Product {
	return c.products
}

func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Filtered applies the current search term and category filter.
func (c *Catalog) Filtered() []models.Product {
	return Filter(c.products, c.term, c.categoryID)
}

func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) CategoryByID(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// Filter returns the products whose name contains term (case-insensitive)
// and, when categoryID is set, whose category matches it. Input order is
// preserved; an empty term matches everything and an unknown category just
// yields an empty result.
func Filter(products []models.Product, term, categoryID string) []models.Product {
	needle := strings.ToLower(term)

	var out []models.Product
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if categoryID != "" && p.Category != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}
