package dto

import "github.com/Sekhard17/inventario-surinnova/internal/domain/entity"

// DashboardResponse agregados que consume la vista principal: todos se
// calculan sobre los cachés de los stores, sin llamadas remotas.
type DashboardResponse struct {
	TotalProducts   int               `json:"total_products"`
	LowStock        []entity.Product  `json:"low_stock"`
	PendingOrders   int               `json:"pending_orders"`
	TodayOrders     int               `json:"today_orders"`
	RecentMovements []entity.Movement `json:"recent_movements"`
}
