package repository

import (
	"context"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// MovementRepository puerto de acceso a la tabla remota de movimientos de
// inventario. Los movimientos son append-only: no hay update ni delete.
type MovementRepository interface {
	// List devuelve todos los movimientos, más recientes primero, con los
	// nombres de producto y usuario resueltos por el servicio remoto.
	List(ctx context.Context) ([]entity.Movement, error)
	// Insert registra el movimiento y devuelve la fila confirmada. La fila
	// devuelta no trae los nombres resueltos.
	Insert(ctx context.Context, m entity.Movement) (entity.Movement, error)
}
