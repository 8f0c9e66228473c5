package handlers

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChallengeHandler struct {
	challenges *services.ChallengeService
}

func NewChallengeHandler(challenges *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	challenges, total, err := h.challenges.List(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"challenges": challenges,
			"pagination": fiber.Map{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		},
	})
}

func (h *ChallengeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid challenge ID",
		})
	}

	challenge, err := h.challenges.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Challenge not found",
		})
	}
	return c.JSON(challenge)
}

func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	challenge, err := h.challenges.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(challenge)
}

func (h *ChallengeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid challenge ID",
		})
	}

	var req dto.UpdateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	challenge, err := h.challenges.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Challenge not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(challenge)
}
