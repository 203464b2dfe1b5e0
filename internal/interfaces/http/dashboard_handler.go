package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/application/dto"
	"github.com/Sekhard17/inventario-surinnova/internal/application/store"
)

// DashboardHandler compone los agregados de la vista principal a partir de
// los cachés de los stores: total de productos, stock bajo, órdenes
// pendientes y de hoy, y movimientos recientes.
type DashboardHandler struct {
	products  *store.ProductStore
	movements *store.MovementStore
	orders    *store.OrderStore
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(products *store.ProductStore, movements *store.MovementStore, orders *store.OrderStore) *DashboardHandler {
	return &DashboardHandler{products: products, movements: movements, orders: orders}
}

// Summary refresca los tres cachés y responde los agregados. Un fallo en
// cualquiera de los fetch deja ese caché como estaba y aborta con el error
// de esa carga.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.products.FetchProducts(ctx); err != nil {
		return respondError(c, err, "Error al cargar productos")
	}
	if err := h.movements.FetchMovements(ctx); err != nil {
		return respondError(c, err, "Error al cargar movimientos")
	}
	if err := h.orders.FetchOrders(ctx); err != nil {
		return respondError(c, err, "Error al cargar órdenes")
	}

	return c.JSON(dto.DashboardResponse{
		TotalProducts:   len(h.products.Products()),
		LowStock:        h.products.CheckLowStock(),
		PendingOrders:   len(h.orders.PendingOrders()),
		TodayOrders:     len(h.orders.TodayOrders()),
		RecentMovements: h.movements.RecentMovements(store.DefaultRecentLimit),
	})
}
