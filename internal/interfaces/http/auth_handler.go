package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uis-entornos/comercio-api/internal/application/auth"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
)

// AuthHandler maneja el login (ruta pública).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica por email o usuario y devuelve el token bearer.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
