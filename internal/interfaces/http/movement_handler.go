package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP para movimientos de
// inventario (protegido).
type MovementHandler struct {
	movements *store.MovementStore
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movements *store.MovementStore) *MovementHandler {
	return &MovementHandler{movements: movements}
}

// List carga los movimientos y devuelve el caché. Con ?type=in|out responde
// el filtro puro sobre el caché ya cargado.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movementType := c.Query("type")
	if movementType != "" {
		if !entity.ValidMovementType(movementType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser in u out"})
		}
		return c.JSON(h.movements.MovementsByType(movementType))
	}
	if err := h.movements.FetchMovements(c.UserContext()); err != nil {
		return respondError(c, err, "Error al cargar movimientos")
	}
	return c.JSON(h.movements.Movements())
}

// Register registra un movimiento; la fecha la sella el store.
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	created, err := h.movements.RegisterMovement(c.UserContext(), entity.Movement{
		Type:      in.Type,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UserID:    in.UserID,
		Reason:    in.Reason,
	})
	if err != nil {
		return respondError(c, err, "Error al registrar movimiento")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Recent devuelve los movimientos más recientes del caché (?limit=, por
// defecto 10).
func (h *MovementHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", store.DefaultRecentLimit)
	return c.JSON(h.movements.RecentMovements(limit))
}
