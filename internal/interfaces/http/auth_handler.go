package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
)

// AuthHandler maneja inicio de sesión, cierre y verificación de sesión.
type AuthHandler struct {
	auth *store.AuthStore
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(auth *store.AuthStore) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	// El fallo de login se propaga desde el store sin genericizar; aquí se
	// decide el mensaje.
	session, err := h.auth.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err, "Error al iniciar sesión")
	}
	return c.JSON(dto.LoginResponse{AccessToken: session.AccessToken, User: session.User})
}

// Logout revoca la sesión remota y limpia la identidad local. Siempre
// responde 204: la limpieza local es incondicional.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.UserContext(), GetAccessToken(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Session verifica la sesión vigente al arrancar la vista. No pasa por el
// middleware: la ausencia de sesión es una respuesta normal (user: null).
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := bearerToken(c.Get("Authorization"))
	identity, err := h.auth.CheckAuth(c.UserContext(), token)
	if err != nil {
		return respondError(c, err, "Error al verificar sesión")
	}
	return c.JSON(dto.SessionResponse{User: identity})
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
