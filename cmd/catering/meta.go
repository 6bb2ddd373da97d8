package catering

import (
	"database/sql"
	"fmt"

	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/spf13/cobra"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Manage headcount, pickup time, and guest requests",
}

var (
	metaHeadcount   int
	metaUtensilSets int
	metaPickupDate  string
	metaPickupTime  string
	metaPlates      bool
	metaNapkins     bool
	metaUtensils    bool
)

var metaSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set order meta values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("headcount") {
				if err := service.SetHeadcount(sqldb, metaHeadcount); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("utensil-sets") {
				if err := service.SetUtensilSetsOrdered(sqldb, metaUtensilSets); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("date") || cmd.Flags().Changed("time") {
				pickup, err := parseDateTime(metaPickupDate, metaPickupTime)
				if err != nil {
					return err
				}
				if err := service.SetPickupAt(sqldb, pickup); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("plates") || cmd.Flags().Changed("napkins") || cmd.Flags().Changed("utensils") {
				meta, err := service.GetMeta(sqldb)
				if err != nil {
					return err
				}
				req := meta.Requests
				if cmd.Flags().Changed("plates") {
					req.Plates = metaPlates
				}
				if cmd.Flags().Changed("napkins") {
					req.Napkins = metaNapkins
				}
				if cmd.Flags().Changed("utensils") {
					req.Utensils = metaUtensils
				}
				if err := service.SetGuestRequests(sqldb, req); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("nothing to set; see `catering meta set --help`")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated order meta")
			return nil
		})
	},
}

var metaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show order meta",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			meta, err := service.GetMeta(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Headcount: %d\n", meta.Headcount)
			fmt.Fprintf(cmd.OutOrStdout(), "Utensil sets ordered: %d\n", meta.UtensilSetsOrdered)
			if meta.PickupAt.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "Pickup time: not set")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Pickup time: %s\n", meta.PickupAt.Local().Format("2006-01-02 03:04 PM"))
				fmt.Fprintf(cmd.OutOrStdout(), "Ready time: %s\n", meta.ReadyAt().Local().Format("2006-01-02 03:04 PM"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guest requested plates: %t\n", meta.Requests.Plates)
			fmt.Fprintf(cmd.OutOrStdout(), "Guest requested napkins: %t\n", meta.Requests.Napkins)
			fmt.Fprintf(cmd.OutOrStdout(), "Guest requested utensils: %t\n", meta.Requests.Utensils)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(metaCmd)
	metaCmd.AddCommand(metaSetCmd)
	metaCmd.AddCommand(metaShowCmd)

	metaSetCmd.Flags().IntVar(&metaHeadcount, "headcount", 0, "Guest headcount (informational)")
	metaSetCmd.Flags().IntVar(&metaUtensilSets, "utensil-sets", 0, "Utensil sets the guest ordered")
	metaSetCmd.Flags().StringVar(&metaPickupDate, "date", "", "Pickup date YYYY-MM-DD")
	metaSetCmd.Flags().StringVar(&metaPickupTime, "time", "", "Pickup time HH:MM")
	metaSetCmd.Flags().BoolVar(&metaPlates, "plates", false, "Guest requested plates")
	metaSetCmd.Flags().BoolVar(&metaNapkins, "napkins", false, "Guest requested napkins")
	metaSetCmd.Flags().BoolVar(&metaUtensils, "utensils", true, "Guest requested utensils")
}
