package repository

import (
	"context"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// ProductPatch actualización parcial de un producto: solo los campos no nil
// se envían al servicio remoto y se mezclan en el caché.
type ProductPatch struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Stock    *int    `json:"stock,omitempty"`
	Branch   *string `json:"branch,omitempty"`
}

// ProductRepository define el puerto de acceso a la tabla remota de
// productos (DIP). Toda llamada es request/response y puede fallar.
type ProductRepository interface {
	// List devuelve todos los productos ordenados por nombre.
	List(ctx context.Context) ([]entity.Product, error)
	// Insert crea el producto y devuelve la fila confirmada por el servicio.
	Insert(ctx context.Context, p entity.Product) (entity.Product, error)
	// Update aplica una actualización parcial por id.
	Update(ctx context.Context, id string, patch ProductPatch) error
	// Delete elimina por id.
	Delete(ctx context.Context, id string) error
}
