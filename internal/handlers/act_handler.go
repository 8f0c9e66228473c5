package handlers

import (
	"errors"
	"strings"

	"github.com/goodacts/goodacts-backend/internal/current"
	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/goodacts/goodacts-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

type ActHandler struct {
	acts     *services.ActService
	comments *services.CommentService
	likes    *services.LikeService
	images   storage.ImageStore
}

func NewActHandler(acts *services.ActService, comments *services.CommentService, likes *services.LikeService, images storage.ImageStore) *ActHandler {
	return &ActHandler{acts: acts, comments: comments, likes: likes, images: images}
}

// CreateJSON handles POST /act/new, the plain JSON variant. Responses use
// the success/message envelope the web client expects.
func (h *ActHandler) CreateJSON(c *fiber.Ctx) error {
	userID, err := current.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.FailureEnvelope{
			Success: false, Message: "You must be logged in to publish an act",
		})
	}

	var req dto.CreateActRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailureEnvelope{
			Success: false, Message: "Invalid request body",
		})
	}

	act, err := h.acts.Create(userID, services.CreateActInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImgURL:       req.ImgURL,
		ChallengeRef: req.Challenge,
		LocationRef:  req.Location,
		StartChain:   req.StartChain,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureEnvelope{
				Success: false, Message: "Please fill all required fields",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailureEnvelope{
			Success: false, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.Envelope{
		Success: true,
		Message: "Act published successfully",
		ID:      act.ID,
	})
}

// CreateMultipart handles POST /api/acts, the form variant with an image
// upload. Unauthenticated callers get 403 here: this path runs inside the
// generic API pipeline, not the plain controller.
func (h *ActHandler) CreateMultipart(c *fiber.Ctx) error {
	if !strings.Contains(c.Get(fiber.HeaderContentType), "multipart/form-data") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unsupported content type, expected multipart/form-data",
		})
	}

	userID, err := current.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	input := services.CreateActInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		ChallengeRef: c.FormValue("challenge"),
		LocationRef:  c.FormValue("location"),
		StartChain:   c.FormValue("start_chain") == "true",
	}

	if fileHeader, err := c.FormFile("imageFile"); err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not read uploaded image",
			})
		}
		defer f.Close()

		path, err := h.images.Save(fileHeader.Filename, f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		input.ImagePath = path
	}

	act, err := h.acts.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "The fields title, description and category are required",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(act)
}

func (h *ActHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid act ID",
		})
	}

	act, err := h.acts.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Act not found",
		})
	}

	likeCount, _ := h.likes.CountForAct(act.ID)
	return c.JSON(fiber.Map{"act": act, "like_count": likeCount})
}

func (h *ActHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	acts, total, err := h.acts.List(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"acts": acts,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": (total + int64(limit) - 1) / int64(limit),
			},
		},
	})
}
