package handlers

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/current"
	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) Like(c *fiber.Ctx) error {
	userID, err := current.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	actID, err := c.ParamsInt("id")
	if err != nil || actID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid act ID",
		})
	}

	like, err := h.likes.Like(userID, uint(actID))
	if err != nil {
		if errors.Is(err, services.ErrActNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Act not found",
			})
		}
		if errors.Is(err, services.ErrAlreadyLiked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to like act",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	userID, err := current.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	actID, err := c.ParamsInt("id")
	if err != nil || actID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid act ID",
		})
	}

	if err := h.likes.Unlike(userID, uint(actID)); err != nil {
		if errors.Is(err, services.ErrLikeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Like not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unlike act",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
