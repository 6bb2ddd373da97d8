package catering

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/LumpsRGood/cateringcalulator/internal/engine"
	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Print the prep sheet for the working order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.BuildReport(sqldb)
			if err != nil {
				return err
			}
			if len(report.Lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Order is empty. Add items with `catering add`.")
				return nil
			}
			printSheet(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

func printSheet(w io.Writer, r service.Report) {
	fmt.Fprintln(w, "1) Order Summary")
	if !r.Meta.PickupAt.IsZero() {
		fmt.Fprintf(w, "  Ready time: %s\n", r.Meta.ReadyAt().Local().Format("2006-01-02 03:04 PM"))
		fmt.Fprintf(w, "  Pickup time: %s\n", r.Meta.PickupAt.Local().Format("2006-01-02 03:04 PM"))
	}
	fmt.Fprintf(w, "  Headcount: %d\n", r.Meta.Headcount)
	fmt.Fprintf(w, "  Utensil sets ordered: %d\n", r.Meta.UtensilSetsOrdered)
	fmt.Fprintf(w, "  Total servings: %d\n", r.TotalServings)
	for _, line := range r.Lines {
		fmt.Fprintf(w, "  %d x %s\n", line.Qty, line.Label)
	}
	if r.Advice.Status != engine.AdviceUnknown || r.Advice.Message != "" {
		fmt.Fprintf(w, "  Utensil check: %s\n", r.Advice.Message)
	}

	fmt.Fprintln(w, "\n2) Food Totals (Prep)")
	for _, line := range r.PrepLines {
		fmt.Fprintf(w, "  - %s\n", line)
	}

	fmt.Fprintln(w, "\n3) Packaging Totals")
	printCountRows(w, r.Packaging, "No packaging totals calculated for this order.")

	fmt.Fprintln(w, "\n4) Condiments")
	printCountRows(w, r.Condiments, "No condiment totals calculated for this order.")

	fmt.Fprintln(w, "\n5) Serveware")
	printCountRows(w, r.Serveware, "No serveware totals calculated for this order.")

	fmt.Fprintln(w, "\n6) Plating Reference (Guest-Facing)")
	if len(r.Plating) == 0 {
		fmt.Fprintln(w, "  No plating-specific items triggered.")
	}
	for _, line := range r.Plating {
		fmt.Fprintf(w, "  - %s\n", line)
	}

	fmt.Fprintln(w, "\n7) Inventory Impact")
	if len(r.Inventory) == 0 {
		fmt.Fprintln(w, "  No tracked inventory items triggered by this order.")
	}
	for _, row := range r.Inventory {
		fmt.Fprintf(w, "  %s (SKU %s): %s\n", row.Item, row.SKU, row.Impact)
	}
}

func printCountRows(w io.Writer, rows []service.CountRow, empty string) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-28s %d\n", row.Name, row.Count)
	}
}

func init() {
	rootCmd.AddCommand(sheetCmd)
}
