package entity

// LowStockThreshold umbral fijo bajo el cual un producto se considera con
// stock bajo (inclusive).
const LowStockThreshold = 10

// Product representa un producto del inventario de una sucursal.
// Stock es un entero >= 0 por convención: el chequeo se hace del lado del
// caché al aplicar deltas, no de forma transaccional contra el servicio
// remoto.
type Product struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Branch   string `json:"branch"`
}
