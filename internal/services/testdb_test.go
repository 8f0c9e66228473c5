package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/goodacts/goodacts-backend/internal/config"
	"github.com/goodacts/goodacts-backend/internal/database"
	"github.com/goodacts/goodacts-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "goodacts-test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, pseudo string) models.User {
	t.Helper()

	user := models.User{
		Pseudo:   pseudo,
		Email:    pseudo + "@example.com",
		Password: "test-hash",
	}
	if err := user.SetRoleList([]string{models.RoleUser}); err != nil {
		t.Fatalf("set roles: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestChallenge(t *testing.T, db *gorm.DB, title string, objective int) models.Challenge {
	t.Helper()

	challenge := models.Challenge{Title: title, Objective: objective}
	if err := db.Create(&challenge).Error; err != nil {
		t.Fatalf("create challenge: %v", err)
	}
	return challenge
}

func createTestAct(t *testing.T, db *gorm.DB, userID uint) models.Act {
	t.Helper()

	act := models.Act{
		Title:       "Plant a tree",
		Description: "Planted an oak in the park",
		Category:    "Nature",
		UserID:      userID,
	}
	if err := db.Create(&act).Error; err != nil {
		t.Fatalf("create act: %v", err)
	}
	return act
}

func newActService(db *gorm.DB) *ActService {
	return NewActService(db, NewChallengeService(db), NewChainService(db))
}
