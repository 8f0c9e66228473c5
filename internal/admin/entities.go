package admin

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/models"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Back-office CRUD for the non-user entities. No extra logic beyond
// validation and cascade rules.

// --- Acts ---

// Pointer fields on the payloads distinguish omitted from deliberately set:
// nil keeps the stored value, an empty string or zero id clears the optional
// field.
type ActPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImgURL      *string `json:"img_url"`
	ChallengeID *uint   `json:"challenge_id"`
}

func (h *Handler) ListActs(c *fiber.Ctx) error {
	return h.list(c, &[]models.Act{})
}

func (h *Handler) UpdateAct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid act ID")
	}

	var act models.Act
	if err := h.db.First(&act, "id = ?", id).Error; err != nil {
		return notFound(c, "Act not found")
	}

	var req ActPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title != nil {
		act.Title = *req.Title
	}
	if req.Description != nil {
		act.Description = *req.Description
	}
	if req.Category != nil {
		act.Category = *req.Category
	}
	if req.ImgURL != nil {
		if *req.ImgURL == "" {
			act.ImgURL = nil
		} else {
			act.ImgURL = req.ImgURL
		}
	}
	if req.ChallengeID != nil {
		if *req.ChallengeID == 0 {
			act.ChallengeID = nil
		} else {
			act.ChallengeID = req.ChallengeID
		}
	}
	if err := models.ValidateAct(&act); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Save(&act).Error; err != nil {
		return badRequest(c, "Could not update act")
	}
	return c.JSON(act)
}

func (h *Handler) DeleteAct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid act ID")
	}
	if err := h.acts.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrActNotFound) {
			return notFound(c, "Act not found")
		}
		return badRequest(c, "Could not delete act")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// --- Challenges ---

func (h *Handler) ListChallenges(c *fiber.Ctx) error {
	return h.list(c, &[]models.Challenge{})
}

func (h *Handler) DeleteChallenge(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Challenge{}, "Challenge")
}

// --- Comments ---

func (h *Handler) ListComments(c *fiber.Ctx) error {
	return h.list(c, &[]models.Comment{})
}

func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Comment{}, "Comment")
}

// --- Likes ---

func (h *Handler) ListLikes(c *fiber.Ctx) error {
	return h.list(c, &[]models.Like{})
}

func (h *Handler) DeleteLike(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Like{}, "Like")
}

// --- Locations ---

type LocationPayload struct {
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *Handler) ListLocations(c *fiber.Ctx) error {
	return h.list(c, &[]models.Location{})
}

func (h *Handler) CreateLocation(c *fiber.Ctx) error {
	var req LocationPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	location := models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Country != nil {
		location.Country = *req.Country
	}
	if err := models.ValidateLocation(&location); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Create(&location).Error; err != nil {
		return badRequest(c, "Could not create location")
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

func (h *Handler) UpdateLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid location ID")
	}

	var location models.Location
	if err := h.db.First(&location, "id = ?", id).Error; err != nil {
		return notFound(c, "Location not found")
	}

	var req LocationPayload
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Country != nil {
		location.Country = *req.Country
	}
	if req.Latitude != nil {
		location.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		location.Longitude = req.Longitude
	}
	if err := models.ValidateLocation(&location); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Save(&location).Error; err != nil {
		return badRequest(c, "Could not update location")
	}
	return c.JSON(location)
}

func (h *Handler) DeleteLocation(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Location{}, "Location")
}

// --- Chains ---

func (h *Handler) ListChains(c *fiber.Ctx) error {
	return h.list(c, &[]models.Chain{})
}

func (h *Handler) DeleteChain(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Chain{}, "Chain")
}

// --- Contacts ---

func (h *Handler) ListContacts(c *fiber.Ctx) error {
	return h.list(c, &[]models.Contact{})
}

func (h *Handler) DeleteContact(c *fiber.Ctx) error {
	return h.deleteByID(c, &models.Contact{}, "Contact")
}

// --- shared plumbing ---

func (h *Handler) list(c *fiber.Ctx, dest interface{}) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var total int64
	if err := h.db.Model(dest).Count(&total).Error; err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.db.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(dest).Error; err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": dest,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *Handler) deleteByID(c *fiber.Ctx, model interface{}, name string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid "+name+" ID")
	}

	result := h.db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return badRequest(c, "Could not delete "+name)
	}
	if result.RowsAffected == 0 {
		return notFound(c, name+" not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
