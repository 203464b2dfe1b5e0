package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP para órdenes de despacho
// (protegido).
type OrderHandler struct {
	orders *store.OrderStore
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List carga las órdenes y devuelve el caché, más recientes primero.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	if err := h.orders.FetchOrders(c.UserContext()); err != nil {
		return respondError(c, err, "Error al cargar órdenes")
	}
	return c.JSON(h.orders.Orders())
}

// Create crea una orden; el número OD<millis> lo genera el store. Crear la
// orden no descuenta stock.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	created, err := h.orders.CreateOrder(c.UserContext(), entity.Order{
		Date:           in.Date,
		DeliveryDate:   in.DeliveryDate,
		Products:       in.Products,
		Branch:         in.Branch,
		Address:        in.Address,
		Carrier:        in.Carrier,
		CarrierPhone:   in.CarrierPhone,
		DeliveryPolicy: in.DeliveryPolicy,
		AuthorizedBy:   in.AuthorizedBy,
		AdditionalInfo: in.AdditionalInfo,
		Status:         status,
	})
	if err != nil {
		return respondError(c, err, "Error al crear orden")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateStatus cambia el estado de una orden; único campo mutable después
// de creada.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	if err := h.orders.UpdateOrderStatus(c.UserContext(), id, in.Status); err != nil {
		return respondError(c, err, "Error al actualizar estado")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Pending filtro puro del caché: órdenes pendientes.
func (h *OrderHandler) Pending(c *fiber.Ctx) error {
	return c.JSON(h.orders.PendingOrders())
}

// Today filtro puro del caché: órdenes cuya fecha es el día de hoy.
func (h *OrderHandler) Today(c *fiber.Ctx) error {
	return c.JSON(h.orders.TodayOrders())
}
