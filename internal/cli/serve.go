package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/auth"
	"github.com/crewdeck-dev/crewdeck/internal/router"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the crewdeck API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, relying on environment")
			}

			tokens, err := auth.ManagerFromEnv()

			if err != nil {
				return err
			}

			dsn := os.Getenv("DATABASE_URL")

			if dsn == "" {
				return fmt.Errorf("DATABASE_URL environment variable is not set")
			}

			gdb, err := db.Connect(dsn)

			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			if err := db.Migrate(gdb); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			if err := db.SeedAdmin(gdb); err != nil {
				return fmt.Errorf("failed to seed admin user: %w", err)
			}

			r := router.New(gdb, tokens)

			port := os.Getenv("PORT")

			if port == "" {
				port = "3000"
				log.Println("PORT not set, defaulting to 3000")
			}

			return r.Run(":" + port)
		},
	}
}
