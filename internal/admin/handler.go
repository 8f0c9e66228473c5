// Package admin is the JSON back-office: a dashboard plus CRUD endpoints per
// entity, mounted behind the JWT and admin guards.
package admin

import (
	"time"

	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/models"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	db   *gorm.DB
	auth *services.AuthService
	acts *services.ActService
}

func NewHandler(db *gorm.DB, auth *services.AuthService, acts *services.ActService) *Handler {
	return &Handler{db: db, auth: auth, acts: acts}
}

// Dashboard returns per-entity record counts.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	counts := fiber.Map{}
	for name, model := range map[string]interface{}{
		"users":      &models.User{},
		"acts":       &models.Act{},
		"challenges": &models.Challenge{},
		"comments":   &models.Comment{},
		"likes":      &models.Like{},
		"locations":  &models.Location{},
		"chains":     &models.Chain{},
		"contacts":   &models.Contact{},
	} {
		var n int64
		h.db.Model(model).Count(&n)
		counts[name] = n
	}

	return c.JSON(fiber.Map{
		"counts":       counts,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// --- Users ---

// UserPayload uses pointer fields so an update can tell an omitted field
// from one deliberately set: nil leaves the stored value alone, an empty
// string clears an optional field.
type UserPayload struct {
	Pseudo   *string    `json:"pseudo"`
	Email    *string    `json:"email"`
	Roles    []string   `json:"roles"`
	ImgURL   *string    `json:"img_url"`
	Birthday *time.Time `json:"birthday"`
	// Password is optional: empty leaves the stored hash untouched, a
	// non-empty value is hashed as fresh plaintext.
	Password string `json:"password"`
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req UserPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Password == "" {
		return badRequest(c, "Password is required for a new user")
	}

	user := models.User{Birthday: req.Birthday}
	if req.Pseudo != nil {
		user.Pseudo = *req.Pseudo
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ImgURL != nil && *req.ImgURL != "" {
		user.ImgURL = req.ImgURL
	}
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{models.RoleUser}
	}
	if err := user.SetRoleList(roles); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.auth.ApplyPasswordChange(&user, req.Password); err != nil {
		return badRequest(c, err.Error())
	}
	if err := models.ValidateUser(&user); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Create(&user).Error; err != nil {
		return badRequest(c, "Could not create user")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ShapeAdminUser(&user))
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid user ID")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "User not found")
	}

	var req UserPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.Pseudo != nil {
		user.Pseudo = *req.Pseudo
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ImgURL != nil {
		if *req.ImgURL == "" {
			user.ImgURL = nil
		} else {
			user.ImgURL = req.ImgURL
		}
	}
	if req.Birthday != nil {
		if req.Birthday.IsZero() {
			user.Birthday = nil
		} else {
			user.Birthday = req.Birthday
		}
	}
	if len(req.Roles) > 0 {
		if err := user.SetRoleList(req.Roles); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if err := h.auth.ApplyPasswordChange(&user, req.Password); err != nil {
		return badRequest(c, err.Error())
	}
	if err := models.ValidateUser(&user); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Save(&user).Error; err != nil {
		return badRequest(c, "Could not update user")
	}
	return c.JSON(dto.ShapeAdminUser(&user))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid user ID")
	}
	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "User not found")
	}
	return c.JSON(dto.ShapeAdminUser(&user))
}

func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid user ID")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "User not found")
	}

	// Orphan removal: the user's acts, comments and likes go with the user.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		var acts []models.Act
		if err := tx.Where("user_id = ?", user.ID).Find(&acts).Error; err != nil {
			return err
		}
		for _, act := range acts {
			if err := h.acts.DeleteTx(tx, act.ID); err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return badRequest(c, "Could not delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: msg})
}
