package handlers

import (
	"errors"

	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Create handles POST /contact/new. Public, envelope responses.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailureEnvelope{
			Success: false, Message: "Invalid request body",
		})
	}

	if _, err := h.contacts.Create(&req); err != nil {
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
		Message: "Message sent successfully",
	})
}
