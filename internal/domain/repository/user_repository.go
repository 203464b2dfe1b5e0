package repository

import (
	"context"
	"time"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// UserPatch actualización parcial del perfil de un usuario.
type UserPatch struct {
	Email        *string    `json:"email,omitempty"`
	Name         *string    `json:"name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	Role         *string    `json:"role,omitempty"`
	Active       *bool      `json:"active,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

// UserRepository puerto de acceso a la tabla remota de perfiles de usuario.
type UserRepository interface {
	// List devuelve todos los perfiles ordenados por nombre.
	List(ctx context.Context) ([]entity.User, error)
	// Insert crea el perfil y devuelve la fila confirmada por el servicio.
	Insert(ctx context.Context, u entity.User) (entity.User, error)
	// Update aplica una actualización parcial por id.
	Update(ctx context.Context, id string, patch UserPatch) error
	// Delete elimina por id.
	Delete(ctx context.Context, id string) error
}
