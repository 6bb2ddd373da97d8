package catering

import (
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List orderable items and their ids",
	Run: func(cmd *cobra.Command, args []string) {
		group := ""
		for _, item := range catalog.Items() {
			if item.Group != group {
				group = item.Group
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", group)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-22s %s\n", item.ItemID, item.Label)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nCombos take --tier, --protein, and --griddle; cold_bag takes --beverage (%s).\n", joinFlavors())
	},
}

func joinFlavors() string {
	out := ""
	for i, f := range catalog.ColdBevTypes {
		if i > 0 {
			out += ", "
		}
		out += f
	}
	return out
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
