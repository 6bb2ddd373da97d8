package catering

import (
	"database/sql"
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage the working order",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List order lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			lines, err := service.ListLines(sqldb)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Order is empty. Add items with `catering add`.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tQTY\tITEM")
			for _, line := range lines {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n", line.ID, line.Qty, line.Label)
			}
			return nil
		})
	},
}

var setQty int

var orderSetQtyCmd = &cobra.Command{
	Use:   "set-qty <id>",
	Short: "Set a line's quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("line id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetLineQty(sqldb, id, setQty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated line %d to qty %d\n", id, setQty)
			return nil
		})
	},
}

var orderRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("line id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemoveLine(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed line %d\n", id)
			return nil
		})
	},
}

var orderClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the entire order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ClearOrder(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared order")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderSetQtyCmd)
	orderCmd.AddCommand(orderRemoveCmd)
	orderCmd.AddCommand(orderClearCmd)

	orderSetQtyCmd.Flags().IntVar(&setQty, "qty", 1, "New quantity")
}
