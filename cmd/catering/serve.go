package catering

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/LumpsRGood/cateringcalulator/internal/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the order calculator as a local HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; flags and defaults cover the common case.
		_ = godotenv.Load()

		addr := serveAddr
		if addr == "" {
			addr = os.Getenv("CATERING_ADDR")
		}
		if addr == "" {
			addr = ":8080"
		}

		return withDB(func(sqldb *sql.DB) error {
			r := server.NewRouter(sqldb)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving catering API on %s\n", addr)
			return r.Run(addr)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default $CATERING_ADDR or :8080)")
}
