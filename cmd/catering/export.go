package catering

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full order output as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.BuildReport(sqldb)
			if err != nil {
				return err
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()

			if err := writeReportCSV(f, report); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported order output to %s\n", exportOut)
			return nil
		})
	},
}

func writeReportCSV(f *os.File, r service.Report) error {
	w := csv.NewWriter(f)
	write := func(section, name, total string) {
		_ = w.Write([]string{section, name, total})
	}

	write("Section", "Name", "Total")
	if !r.Meta.PickupAt.IsZero() {
		write("Order Meta", "Ready time", r.Meta.ReadyAt().Format(time.RFC3339))
		write("Order Meta", "Pickup time", r.Meta.PickupAt.Format(time.RFC3339))
	}
	write("Order Meta", "Headcount", strconv.Itoa(r.Meta.Headcount))
	write("Order Meta", "Utensil sets ordered", strconv.Itoa(r.Meta.UtensilSetsOrdered))
	write("Order Meta", "Total servings", strconv.Itoa(r.TotalServings))

	for _, line := range r.Lines {
		write("Order Lines", line.Label, strconv.Itoa(line.Qty))
	}

	var totalRows [][2]string
	for k, v := range r.Totals.Food {
		totalRows = append(totalRows, [2]string{string(k), strconv.FormatFloat(v, 'g', -1, 64)})
	}
	for k, v := range r.Totals.Packaging {
		totalRows = append(totalRows, [2]string{string(k), strconv.FormatFloat(v, 'g', -1, 64)})
	}
	for k, v := range r.Totals.Condiments {
		totalRows = append(totalRows, [2]string{string(k), strconv.FormatFloat(v, 'g', -1, 64)})
	}
	for k, v := range r.Totals.Guestware {
		totalRows = append(totalRows, [2]string{string(k), strconv.FormatFloat(v, 'g', -1, 64)})
	}
	for k, v := range r.Totals.Utensils {
		totalRows = append(totalRows, [2]string{string(k), strconv.FormatFloat(v, 'g', -1, 64)})
	}
	sort.Slice(totalRows, func(i, j int) bool { return totalRows[i][0] < totalRows[j][0] })
	for _, row := range totalRows {
		write("Computed Totals", row[0], row[1])
	}

	for _, row := range r.Inventory {
		write("Inventory Impact", fmt.Sprintf("%s (SKU %s)", row.Item, row.SKU), row.Impact)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write export csv: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "catering_output.csv", "Output CSV path")
}
