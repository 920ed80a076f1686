package db

import (
	"log"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Default credentials seeded into an empty database.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminFullName = "Admin User"
)

// Connect opens the Postgres database and returns the handle. The handle is
// passed explicitly to everything that needs it; there is no package-level
// connection. TranslateError maps driver unique-violation errors onto
// gorm.ErrDuplicatedKey so handlers can match on them.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Operative{},
		&models.Job{},
		&models.RiskAssessment{},
		&models.MethodStatement{},
		&models.JobUpdate{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedAdmin inserts the default administrator account when the users table is
// empty. Subsequent calls are no-ops.
func SeedAdmin(db *gorm.DB) error {
	var count int64

	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.User{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		FullName:     DefaultAdminFullName,
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin user created: username=%s", DefaultAdminUsername)
	return nil
}
