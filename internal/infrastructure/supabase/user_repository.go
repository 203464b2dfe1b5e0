package supabase

import (
	"context"
	"net/url"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

const usersTable = "users"

// UserRepository acceso a la tabla remota de perfiles de usuario.
type UserRepository struct {
	client *Client
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository construye el repositorio.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// List devuelve todos los perfiles ordenados por nombre.
func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "name.asc")

	var users []entity.User
	if err := r.client.Select(ctx, usersTable, query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Insert crea el perfil y devuelve la fila confirmada. Cuando el perfil
// acompaña a una identidad recién registrada, el id viene dado por el
// subsistema de autenticación y sí se envía.
func (r *UserRepository) Insert(ctx context.Context, u entity.User) (entity.User, error) {
	row := map[string]any{
		"email":         u.Email,
		"name":          u.Name,
		"last_name":     u.LastName,
		"role":          u.Role,
		"active":        u.Active,
		"last_activity": u.LastActivity,
	}
	if u.ID != "" {
		row["id"] = u.ID
	}
	var created entity.User
	if err := r.client.Insert(ctx, usersTable, row, &created); err != nil {
		return entity.User{}, err
	}
	return created, nil
}

// Update aplica una actualización parcial por id.
func (r *UserRepository) Update(ctx context.Context, id string, patch repository.UserPatch) error {
	return r.client.Update(ctx, usersTable, id, patch)
}

// Delete elimina por id.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, usersTable, id)
}
