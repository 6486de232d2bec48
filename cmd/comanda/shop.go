package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ray-remotestate/comanda/cart"
	"github.com/ray-remotestate/comanda/catalog"
	"github.com/ray-remotestate/comanda/checkout"
	"github.com/ray-remotestate/comanda/client"
	"github.com/ray-remotestate/comanda/render"
)

// shopCmd runs the interactive storefront: browse the catalog, fill the cart
// and check out, all within one process so the cart never outlives the
// session.
func shopCmd(api *client.Client) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the menu and place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if email != "" {
				if _, err := api.Login(ctx, email, password, false); err != nil {
					return err
				}
			}

			cat := catalog.New(api)
			if err := cat.Refresh(ctx); err != nil {
				return err
			}

			crt := cart.New()
			flow := checkout.New(api, crt)

			fmt.Print(render.Products(cat.Filtered()))
			fmt.Println(`Commands: search <term> | categories | category <id> | all | show <id> | add <id> | remove <id> | qty <id> <n> | cart | checkout <table> | orders | quit`)

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				fields := strings.Fields(line)
				if fields[0] == "quit" {
					return nil
				}
				runShopCommand(ctx, fields, cat, crt, flow)
			}
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "log in with this email for the session")
	cmd.Flags().StringVar(&password, "password", "", "password for --email")
	return cmd
}

func runShopCommand(ctx context.Context, fields []string, cat *catalog.Catalog, crt *cart.Cart, flow *checkout.Flow) {
	switch fields[0] {
	case "search":
		cat.SetSearch(strings.Join(fields[1:], " "))
		fmt.Print(render.Products(cat.Filtered()))

	case "categories":
		for _, c := range cat.Categories() {
			fmt.Printf("%s  %s\n", c.ID, c.Name)
		}

	case "category":
		if len(fields) < 2 {
			fmt.Println("usage: category <id>")
			return
		}
		cat.SetCategory(fields[1])
		fmt.Print(render.Products(cat.Filtered()))

	case "all":
		cat.SetSearch("")
		cat.ClearCategory()
		fmt.Print(render.Products(cat.Filtered()))

	case "show":
		if len(fields) < 2 {
			fmt.Println("usage: show <product id>")
			return
		}
		p, ok := cat.ProductByID(fields[1])
		if !ok {
			fmt.Println("no such product")
			return
		}
		fmt.Print(render.ProductCard(p))

	case "add":
		if len(fields) < 2 {
			fmt.Println("usage: add <product id>")
			return
		}
		p, ok := cat.ProductByID(fields[1])
		if !ok {
			fmt.Println("no such product")
			return
		}
		crt.Add(p)
		fmt.Printf("%s added to cart\n", p.Name)

	case "remove":
		if len(fields) < 2 {
			fmt.Println("usage: remove <product id>")
			return
		}
		crt.Remove(fields[1])

	case "qty":
		if len(fields) < 3 {
			fmt.Println("usage: qty <product id> <quantity>")
			return
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			fmt.Println("quantity must be a number")
			return
		}
		crt.SetQuantity(fields[1], n)

	case "cart":
		fmt.Print(render.Cart(crt.Items(), crt.Total()))

	case "checkout":
		if len(fields) < 2 {
			fmt.Println("usage: checkout <table>")
			return
		}
		order, err := flow.Submit(ctx, fields[1])
		if errors.Is(err, checkout.ErrEmptyCart) {
			fmt.Println("Your cart is empty.")
			return
		}
		if err != nil {
			fmt.Println("Could not place the order:", err)
			return
		}
		fmt.Printf("Order %s placed, total %s.\n", order.ID, render.Price(order.Total))
		fmt.Print(render.Orders(flow.History()))

	case "orders":
		if err := flow.RefreshHistory(ctx); err != nil {
			fmt.Println("Could not load orders:", err)
			return
		}
		fmt.Print(render.Orders(flow.History()))

	default:
		fmt.Println("unknown command:", fields[0])
	}
}
