package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	products *store.ProductStore
}

// NewProductHandler construye el handler.
func NewProductHandler(products *store.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if err := h.products.FetchProducts(c.UserContext()); err != nil {
		return respondError(c, err, "Error al cargar productos")
	}
	return c.JSON(h.products.Products())
}

// Create inserta un producto nuevo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	created, err := h.products.AddProduct(c.UserContext(), entity.Product{
		Code:     in.Code,
		Name:     in.Name,
		Category: in.Category,
		Stock:    in.Stock,
		Branch:   in.Branch,
	})
	if err != nil {
		return respondError(c, err, "Error al agregar producto")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update aplica una actualización parcial.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateBody(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	patch := repository.ProductPatch{
		Code:     in.Code,
		Name:     in.Name,
		Category: in.Category,
		Stock:    in.Stock,
		Branch:   in.Branch,
	}
	if err := h.products.UpdateProduct(c.UserContext(), id, patch); err != nil {
		return respondError(c, err, "Error al actualizar producto")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.products.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "Error al eliminar producto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock aplica un delta sobre el stock del producto. Un delta que
// deja stock negativo se rechaza sin llamada remota.
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta no puede ser cero"})
	}
	if err := h.products.UpdateStock(c.UserContext(), id, in.Delta); err != nil {
		return respondError(c, err, "Error al actualizar producto")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// LowStock devuelve los productos en o bajo el umbral de stock bajo.
// Filtro puro sobre el caché, sin llamada remota.
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.products.CheckLowStock())
}
