package repository

import (
	"context"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// OrderRepository puerto de acceso a la tabla remota de órdenes.
// Después de creada, el único campo que se actualiza es el estado.
type OrderRepository interface {
	// List devuelve todas las órdenes, más recientes primero.
	List(ctx context.Context) ([]entity.Order, error)
	// Insert crea la orden y devuelve la fila confirmada por el servicio.
	Insert(ctx context.Context, o entity.Order) (entity.Order, error)
	// UpdateStatus cambia el estado de la orden indicada.
	UpdateStatus(ctx context.Context, id, status string) error
}
