package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ray-remotestate/comanda/client"
	"github.com/ray-remotestate/comanda/config"
	"github.com/ray-remotestate/comanda/render"
	"github.com/ray-remotestate/comanda/session"
)

func main() {
	config.Init()

	store := session.NewStore(config.TokenPath)
	if err := store.Load(); err != nil {
		logrus.Fatalf("failed to load session: %v", err)
	}

	api := client.New(client.Config{
		BaseURL:       config.BaseURL,
		LegacyBaseURL: config.LegacyBaseURL,
		Timeout:       config.RequestTimeout,
		Session:       store,
	})

	root := &cobra.Command{
		Use:           "comanda",
		Short:         "Restaurant ordering storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		loginCmd(api),
		registerCmd(api),
		logoutCmd(store),
		shopCmd(api),
		ordersCmd(api),
		adminCmd(api),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loginCmd(api *client.Client) *cobra.Command {
	var email, password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := api.Login(context.Background(), email, password, remember)
			if err != nil {
				return err
			}
			name := result.Name
			if name == "" {
				name = result.Email
			}
			fmt.Printf("Welcome, %s!\n", name)
			if !remember {
				fmt.Println("Session is not remembered; it ends with this process.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&remember, "remember", false, "keep the session across runs")
	return cmd
}

func registerCmd(api *client.Client) *cobra.Command {
	var in client.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Register(context.Background(), in); err != nil {
				return err
			}
			fmt.Println("Account created. You can log in now.")
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	cmd.Flags().StringVar(&in.ConfirmPassword, "confirm", "", "password confirmation")
	return cmd
}

func logoutCmd(store *session.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func ordersCmd(api *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Show your order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := api.OrderHistory(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(render.Orders(orders))
			return nil
		},
	}
}
