// Package render turns view state into terminal output. Everything here is a
// pure function of its arguments.
package render

import (
	"fmt"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/ray-remotestate/comanda/models"
)

const imagesDir = "/images"

func Price(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// ImagePath resolves a product's image reference under the fixed images
// directory.
func ImagePath(p models.Product) string {
	return path.Join(imagesDir, p.ImagePath)
}

func StatusLabel(s models.OrderStatus) string {
	switch s {
	case models.StatusWaiting:
		return "Waiting"
	case models.StatusInProduction:
		return "In production"
	case models.StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

func Products(products []models.Product) string {
	if len(products) == 0 {
		return "No products found.\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE")
	for _, p := range products {
		category := p.CategoryName
		if category == "" {
			category = p.Category
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, category, Price(p.Price))
	}
	w.Flush()
	return sb.String()
}

func ProductCard(p models.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&sb, "%s\n", p.Description)
	}
	fmt.Fprintf(&sb, "%s\n", Price(p.Price))
	fmt.Fprintf(&sb, "image: %s\n", ImagePath(p))
	return sb.String()
}

func Cart(items []models.CartItem, total float64) string {
	if len(items) == 0 {
		return "Your cart is empty.\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			item.Product.ID, item.Product.Name, item.Quantity,
			Price(item.Product.Price), Price(item.Subtotal()))
	}
	fmt.Fprintf(w, "\tTotal\t\t\t%s\n", Price(total))
	w.Flush()
	return sb.String()
}

func Orders(orders []models.Order) string {
	if len(orders) == 0 {
		return "No orders found.\n"
	}

	var sb strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&sb, "Order %s  table %s  %s  %s\n",
			o.ID, o.Table, StatusLabel(o.Status), o.CreatedAt.Format("02/01/2006 15:04"))
		for _, item := range o.Products {
			fmt.Fprintf(&sb, "  %dx %s  %s\n", item.Quantity, item.Product.Name, Price(item.Product.Price))
		}
		fmt.Fprintf(&sb, "  Total %s\n", Price(o.Total))
	}
	return sb.String()
}
