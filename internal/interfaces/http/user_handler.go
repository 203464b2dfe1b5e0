package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

// UserHandler maneja la administración de usuarios (protegido, solo
// admin/supervisor).
type UserHandler struct {
	users *store.UserStore
}

// NewUserHandler construye el handler.
func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List carga los perfiles y devuelve el caché.
func (h *UserHandler) List(c *fiber.Ctx) error {
	if err := h.users.FetchUsers(c.UserContext()); err != nil {
		return respondError(c, err, "Error al cargar usuarios")
	}
	return c.JSON(h.users.Users())
}

// Create inserta un perfil (sin identidad de autenticación asociada).
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	created, err := h.users.AddUser(c.UserContext(), entity.User{
		Email:    in.Email,
		Name:     in.Name,
		LastName: in.LastName,
		Role:     in.Role,
		Active:   in.Active,
	})
	if err != nil {
		return respondError(c, err, "Error al agregar usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update aplica una actualización parcial del perfil.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	patch := repository.UserPatch{
		Email:    in.Email,
		Name:     in.Name,
		LastName: in.LastName,
		Role:     in.Role,
		Active:   in.Active,
	}
	if err := h.users.UpdateUser(c.UserContext(), id, patch); err != nil {
		return respondError(c, err, "Error al actualizar usuario")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina un perfil.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "Error al eliminar usuario")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Register alta completa: identidad en el subsistema de autenticación más
// perfil. El alta es en dos pasos no atómica; si el perfil falla, la
// identidad queda huérfana (brecha aceptada).
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	profile := entity.User{
		Name:     in.Name,
		LastName: in.LastName,
		Role:     in.Role,
		Active:   in.Active,
	}
	if err := h.users.RegisterUser(c.UserContext(), in.Email, in.Password, profile); err != nil {
		return respondError(c, err, "Error al registrar usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}
