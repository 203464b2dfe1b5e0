package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// ValidMovementType indica si el tipo pertenece a la enumeración cerrada.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// Movement representa un movimiento de inventario (entrada o salida).
// Es append-only: nunca se actualiza ni se elimina después de creado.
// Product y User son nombres para mostrar, resueltos por el servicio remoto
// al listar; pueden venir vacíos en el registro devuelto por un insert.
type Movement struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"` // in, out
	ProductID string    `json:"product_id"`
	Product   string    `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	UserID    string    `json:"user_id"`
	User      string    `json:"user,omitempty"`
	Reason    string    `json:"reason"`
}
