package catering

import (
	"database/sql"
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/model"
	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add items to the working order",
}

var (
	comboTier    string
	comboProtein string
	comboGriddle string
	comboQty     int
)

var addComboCmd = &cobra.Command{
	Use:   "combo",
	Short: "Add a breakfast combo box",
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, err := resolveAlias("combo size", tierAliases, comboTier)
		if err != nil {
			return err
		}
		protein, err := resolveAlias("protein", proteinAliases, comboProtein)
		if err != nil {
			return err
		}
		griddle, err := resolveAlias("griddle item", griddleAliases, comboGriddle)
		if err != nil {
			return err
		}

		return withDB(func(sqldb *sql.DB) error {
			line, merged, err := service.AddOrMergeLine(sqldb, service.AddLineInput{
				Key: model.SelectionKey{
					Kind:    model.KindCombo,
					ItemID:  tier,
					Protein: protein,
					Griddle: griddle,
				},
				Qty: comboQty,
			})
			if err != nil {
				return err
			}
			printAdded(cmd, line, merged)
			return nil
		})
	},
}

var (
	itemBeverage string
	itemQty      int
)

var addItemCmd = &cobra.Command{
	Use:   "item <item-id>",
	Short: "Add an a la carte item (see `catering menu` for ids)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			line, merged, err := service.AddOrMergeLine(sqldb, service.AddLineInput{
				Key: model.SelectionKey{
					Kind:         model.KindAlaCarte,
					ItemID:       args[0],
					BeverageType: itemBeverage,
				},
				Qty: itemQty,
			})
			if err != nil {
				return err
			}
			printAdded(cmd, line, merged)
			return nil
		})
	},
}

func printAdded(cmd *cobra.Command, line model.OrderLine, merged bool) {
	if merged {
		fmt.Fprintf(cmd.OutOrStdout(), "Merged into line %d: %s (qty %d)\n", line.ID, line.Label, line.Qty)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added line %d: %s (qty %d)\n", line.ID, line.Label, line.Qty)
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addComboCmd)
	addCmd.AddCommand(addItemCmd)

	addComboCmd.Flags().StringVar(&comboTier, "tier", "small", "Combo size: small, medium, large")
	addComboCmd.Flags().StringVar(&comboProtein, "protein", "bacon", "Protein: bacon, sausage, ham")
	addComboCmd.Flags().StringVar(&comboGriddle, "griddle", "pancakes", "Griddle item: pancakes, french-toast")
	addComboCmd.Flags().IntVar(&comboQty, "qty", 1, "Quantity")

	addItemCmd.Flags().StringVar(&itemBeverage, "beverage", "", "Cold beverage type (cold_bag only)")
	addItemCmd.Flags().IntVar(&itemQty, "qty", 1, "Quantity")
}
