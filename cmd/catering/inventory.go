package catering

import (
	"database/sql"
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show the order's inventory impact",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.BuildReport(sqldb)
			if err != nil {
				return err
			}
			if len(report.Inventory) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tracked inventory items triggered by this order.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ITEM\tSKU\tIMPACT")
			for _, row := range report.Inventory {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", row.Item, row.SKU, row.Impact)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}
