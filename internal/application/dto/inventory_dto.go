package dto

// RegisterMovementRequest registro de un movimiento de inventario. La fecha
// la sella el store; no viaja en la petición.
type RegisterMovementRequest struct {
	Type      string `json:"type" validate:"required,oneof=in out"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	UserID    string `json:"user_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}
