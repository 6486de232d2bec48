package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ray-remotestate/comanda/board"
	"github.com/ray-remotestate/comanda/client"
	"github.com/ray-remotestate/comanda/render"
)

func adminCmd(api *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin order board",
	}
	cmd.AddCommand(adminListCmd(api), adminAdvanceCmd(api))
	return cmd
}

func adminListCmd(api *client.Client) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all orders, optionally filtered by id or table",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := board.New(api)
			if err := b.Load(context.Background()); err != nil {
				return err
			}

			orders := b.Orders()
			if search != "" {
				orders = b.Search(search)
			}
			fmt.Print(render.Orders(orders))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by order id or table")
	return cmd
}

func adminAdvanceCmd(api *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <order id>",
		Short: "Move an order to its next status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			b := board.New(api)
			if err := b.Load(ctx); err != nil {
				return err
			}

			status, err := b.Advance(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Order %s is now %s.\n", args[0], render.StatusLabel(status))
			return nil
		},
	}
}
