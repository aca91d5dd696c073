package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patternkit/patternkit/app"
	"github.com/patternkit/patternkit/config"
	"github.com/patternkit/patternkit/core/orders"
)

var (
	orderCustomer string
	orderAmount   int64
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Process a single order through the configured chain",
	RunE:  runOrders,
}

func init() {
	ordersCmd.Flags().StringVar(&orderCustomer, "customer", "cli", "customer name")
	ordersCmd.Flags().Int64Var(&orderAmount, "amount", 100, "order amount")
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	res, err := svc.ProcessOrder(orders.New(orderCustomer, orderAmount))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
	return err
}
