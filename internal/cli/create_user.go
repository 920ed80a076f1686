package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserCmd inserts a user directly into the database, for bootstrapping
// accounts without going through the API.
func CreateUserCmd() *cobra.Command {
	var (
		username string
		password string
		fullName string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a dashboard user directly in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, relying on environment")
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

			var existing models.User

			err = gdb.Where("username = ?", username).First(&existing).Error

			if err == nil {
				return fmt.Errorf("username %q already exists", username)
			}

			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

			if err != nil {
				return err
			}

			user := models.User{
				Username:     username,
				PasswordHash: string(hash),
				FullName:     fullName,
				Role:         role,
			}

			if err := gdb.Create(&user).Error; err != nil {
				return err
			}

			fmt.Printf("%s created user %s (id %d, role %s)\n",
				color.New(color.FgGreen).Sprint("OK"), user.Username, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username for the new user")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the new user")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name for the new user")
	cmd.Flags().StringVar(&role, "role", "admin", "role: admin or manager")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("full-name")

	return cmd
}
