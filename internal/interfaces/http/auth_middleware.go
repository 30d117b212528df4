package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/print3d-api/internal/application/dto"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// TokenParser valida un access token y devuelve sus claims. Lo implementa *jwt.Verifier.
type TokenParser interface {
	Parse(tokenString string) (userID, email, role string, err error)
}

// AuthMiddleware valida el Bearer Token emitido por el servicio de autenticación
// y deja UserID, Email y Role en c.Locals.
func AuthMiddleware(tokens TokenParser) fiber.Handler {
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
		userID, email, role, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole permite el paso solo si el claim role está en roles.
// Debe usarse DESPUÉS de AuthMiddleware. Sin roles no restringe.
//
//   - 401 MISSING_ROLE → el token no trae role.
//   - 403 FORBIDDEN    → role no permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if len(allowed) == 0 {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye role"})
		}
		if _, ok := allowed[strings.ToLower(role)]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el role del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
