package services

import (
	"fmt"
	"testing"

	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. cache=shared keeps
// the database alive across the connections gorm pools; naming it after
// the test keeps parallel tests isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.NutritionLog{},
		&models.WorkoutLog{},
		&models.ProgressEntry{},
		&models.Alert{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, height float64) *models.User {
	t.Helper()

	user := models.User{
		Name:          "Test User",
		Email:         email,
		Password:      "not-a-real-hash",
		Height:        height,
		Notifications: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return &user
}
