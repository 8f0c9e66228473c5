package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/goodacts/goodacts-backend/internal/admin"
	"github.com/goodacts/goodacts-backend/internal/config"
	"github.com/goodacts/goodacts-backend/internal/database"
	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/handlers"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/goodacts/goodacts-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route table the way main does, against a
// throwaway sqlite database.
func newTestApp(t *testing.T) (*fiber.App, *services.AuthService) {
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

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		UploadDir:        t.TempDir(),
		CORSOrigins:      "*",
	}

	images, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		t.Fatalf("create image store: %v", err)
	}

	authService := services.NewAuthService(db, cfg)
	challengeService := services.NewChallengeService(db)
	chainService := services.NewChainService(db)
	actService := services.NewActService(db, challengeService, chainService)
	commentService := services.NewCommentService(db)
	likeService := services.NewLikeService(db)
	contactService := services.NewContactService(db)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewActHandler(actService, commentService, likeService, images),
		handlers.NewCommentHandler(commentService),
		handlers.NewLikeHandler(likeService),
		handlers.NewChallengeHandler(challengeService),
		handlers.NewContactHandler(contactService),
		handlers.NewUserHandler(db),
		handlers.NewChainHandler(chainService),
		handlers.NewHealthHandler(),
		admin.NewHandler(db, authService, actService))
	return app, authService
}

func multipartAct(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestMultipartActAnonymousIsDenied(t *testing.T) {
	app, _ := newTestApp(t)

	body, contentType := multipartAct(t, map[string]string{
		"title":       "Plant a tree",
		"description": "Planted an oak in the park",
		"category":    "Nature",
	})
	req, err := http.NewRequest(http.MethodPost, "/api/acts", body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body %q)", resp.StatusCode, fiber.StatusForbidden, raw)
	}
}

func TestMultipartActWithBearerTokenSucceeds(t *testing.T) {
	app, auth := newTestApp(t)

	if _, err := auth.Register(&dto.RegisterRequest{
		Pseudo:   "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	session, err := auth.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	body, contentType := multipartAct(t, map[string]string{
		"title":       "Plant a tree",
		"description": "Planted an oak in the park",
		"category":    "Nature",
	})
	req, err := http.NewRequest(http.MethodPost, "/api/acts", body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set(fiber.HeaderContentType, contentType)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+session.AccessToken)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body %q)", resp.StatusCode, fiber.StatusCreated, raw)
	}
}

func TestJSONActAnonymousGetsEnvelope(t *testing.T) {
	app, _ := newTestApp(t)

	payload, err := json.Marshal(dto.CreateActRequest{
		Title:       "Plant a tree",
		Description: "Planted an oak in the park",
		Category:    "Nature",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, "/act/new", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}

	var envelope dto.FailureEnvelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
	if envelope.Success || envelope.Message != "You must be logged in to publish an act" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}
