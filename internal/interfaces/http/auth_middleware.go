package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/uis-entornos/comercio-api/internal/application/dto"
	"github.com/uis-entornos/comercio-api/pkg/jwt"
)

// Locals keys cargadas por el middleware de auth.
const (
	LocalEmpleadoID = "empleado_id"
	LocalSucursalID = "sucursal_id"
	LocalRole       = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga empleado, sucursal y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		empleadoID, sucursalID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalEmpleadoID, empleadoID)
		c.Locals(LocalSucursalID, sucursalID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetEmpleadoID devuelve el empleado autenticado (después del middleware).
func GetEmpleadoID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmpleadoID).(string)
	return s
}

// GetSucursalID devuelve la sucursal del empleado autenticado, si tiene.
func GetSucursalID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSucursalID).(string)
	return s
}

// GetRole devuelve el rol del empleado autenticado.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
