package db_test

import (
	"testing"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return gdb
}

func TestMigrateCreatesAllTables(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, db.Migrate(gdb))

	migrator := gdb.Migrator()
	for _, table := range []interface{}{
		&models.User{}, &models.Operative{}, &models.Job{},
		&models.RiskAssessment{}, &models.MethodStatement{}, &models.JobUpdate{},
	} {
		assert.True(t, migrator.HasTable(table))
	}

	// Running it again must be a no-op, not a failure.
	require.NoError(t, db.Migrate(gdb))
}

// Handlers rely on the unique index surfacing as gorm.ErrDuplicatedKey when
// a duplicate slips past their pre-check.
func TestDuplicateUsernameSurfacesAsDuplicatedKey(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, db.Migrate(gdb))

	first := models.User{Username: "jsmith", PasswordHash: "x", FullName: "John Smith", Role: "admin"}
	require.NoError(t, gdb.Create(&first).Error)

	second := models.User{Username: "jsmith", PasswordHash: "y", FullName: "Jane Smith", Role: "admin"}
	err := gdb.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSeedAdminCreatesVerifiableAccount(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedAdmin(gdb))

	var admin models.User
	require.NoError(t, gdb.Where("username = ?", db.DefaultAdminUsername).First(&admin).Error)

	assert.Equal(t, db.DefaultAdminFullName, admin.FullName)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(db.DefaultAdminPassword)))
}

func TestSeedAdminSkipsNonEmptyUserTable(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, db.Migrate(gdb))

	existing := models.User{Username: "someone", PasswordHash: "x", FullName: "Someone", Role: "manager"}
	require.NoError(t, gdb.Create(&existing).Error)

	require.NoError(t, db.SeedAdmin(gdb))

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, db.SeedAdmin(gdb))
	require.NoError(t, db.SeedAdmin(gdb))

	var count int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
