package handlers

import (
	"github.com/goodacts/goodacts-backend/internal/dto"
	"github.com/goodacts/goodacts-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChainHandler struct {
	chains *services.ChainService
}

func NewChainHandler(chains *services.ChainService) *ChainHandler {
	return &ChainHandler{chains: chains}
}

// Resolve handles GET /api/chains/:token, used by referral links to find the
// act behind an invitation token.
func (h *ChainHandler) Resolve(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invitation token required",
		})
	}

	chain, act, err := h.chains.FindByToken(token)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Invitation not found",
		})
	}

	resp := fiber.Map{"chain": chain}
	if act != nil {
		resp["act"] = act
	}
	return c.JSON(resp)
}
