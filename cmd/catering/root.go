package catering

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "catering",
	Short: "catering turns a caterer's order into kitchen prep numbers",
	Long:  "catering is a local-first calculator that converts an order of combo boxes, a la carte items, and beverages into prep quantities, packaging, condiments, serveware, and inventory impact.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
