package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/goodacts/goodacts-backend/internal/database"
	"github.com/goodacts/goodacts-backend/internal/models"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/goodacts/goodacts-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
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
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// asUser injects a parsed token the way the JWT middleware would, so
// handlers under test see an authenticated identity.
func asUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(id), 10),
		}})
		return c.Next()
	}
}

func newActHandler(t *testing.T, db *gorm.DB) *ActHandler {
	t.Helper()
	acts := services.NewActService(db, services.NewChallengeService(db), services.NewChainService(db))
	comments := services.NewCommentService(db)
	likes := services.NewLikeService(db)
	images, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("create image store: %v", err)
	}
	return NewActHandler(acts, comments, likes, images)
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

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, target, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body %q)", resp.StatusCode, want, raw)
	}
}
