package entity

// Estados de una orden de despacho. Status es el único campo mutable después
// de la creación.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus indica si el estado pertenece a la enumeración cerrada.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderProduct línea de producto dentro de una orden. No descuenta stock:
// la rebaja de inventario se registra manualmente como movimiento.
type OrderProduct struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order representa una orden de despacho hacia una sucursal.
// Number se genera en el cliente a partir del reloj local (OD<millis>); su
// unicidad no está garantizada bajo creación concurrente desde varias
// sesiones. Date y DeliveryDate se guardan como string ISO: TodayOrders
// compara por prefijo léxico YYYY-MM-DD.
type Order struct {
	ID             string         `json:"id"`
	Number         string         `json:"number"`
	Date           string         `json:"date"`
	DeliveryDate   string         `json:"delivery_date"`
	Products       []OrderProduct `json:"products"`
	Branch         string         `json:"branch"`
	Address        string         `json:"address"`
	Carrier        string         `json:"carrier"`
	CarrierPhone   string         `json:"carrier_phone"`
	DeliveryPolicy string         `json:"delivery_policy"`
	AuthorizedBy   string         `json:"authorized_by"`
	AdditionalInfo string         `json:"additional_info"`
	Status         string         `json:"status"` // pending, completed, cancelled
}
