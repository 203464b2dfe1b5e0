package store

import (
	"context"
	"sync"
	"time"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// UserStore store de perfiles de usuario. Mismo patrón de caché que
// productos: append al agregar, merge al actualizar, filter al eliminar.
type UserStore struct {
	mu      sync.RWMutex
	users   []entity.User
	loading bool

	repo    repository.UserRepository
	gateway repository.AuthGateway
	log     *logger.Logger
}

// NewUserStore construye un store aislado e inyectable. gateway se usa solo
// para RegisterUser (alta de identidad + perfil).
func NewUserStore(repo repository.UserRepository, gateway repository.AuthGateway, log *logger.Logger) *UserStore {
	return &UserStore{repo: repo, gateway: gateway, log: log}
}

// Users devuelve una copia de la lista cacheada.
func (s *UserStore) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// Loading indica si hay un fetch en curso.
func (s *UserStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchUsers carga todos los perfiles ordenados por nombre.
func (s *UserStore) FetchUsers(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	users, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Msg("cargar usuarios")
		return err
	}
	s.users = users
	return nil
}

// AddUser sella lastActivity con la hora actual, inserta y agrega al final
// del caché.
func (s *UserStore) AddUser(ctx context.Context, u entity.User) (entity.User, error) {
	u.LastActivity = time.Now()
	created, err := s.repo.Insert(ctx, u)
	if err != nil {
		s.log.Error().Err(err).Msg("agregar usuario")
		return entity.User{}, err
	}
	s.mu.Lock()
	s.users = append(s.users, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateUser envía una actualización parcial y mezcla los campos en el
// registro cacheado con ese id.
func (s *UserStore) UpdateUser(ctx context.Context, id string, patch repository.UserPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar usuario")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		mergeUser(&s.users[i], patch)
		break
	}
	return nil
}

// DeleteUser elimina remotamente y filtra el id del caché.
func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("eliminar usuario")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return nil
}

// RegisterUser alta en dos pasos no atómica: primero crea la identidad en
// el subsistema de autenticación (rol y nombre como metadata) y luego, solo
// si eso tuvo éxito, inserta el perfil con el id de la identidad nueva. Si
// el segundo paso falla, la identidad creada NO se revierte: queda huérfana
// sin perfil. Brecha conocida y aceptada, no un caso manejado. El caché no
// se toca en ningún camino; el usuario aparece recién en el próximo fetch.
func (s *UserStore) RegisterUser(ctx context.Context, email, password string, profile entity.User) error {
	metadata := map[string]any{
		"role":      profile.Role,
		"name":      profile.Name,
		"last_name": profile.LastName,
	}
	identity, err := s.gateway.SignUp(ctx, email, password, metadata)
	if err != nil {
		s.log.Error().Err(err).Msg("registrar identidad")
		return err
	}

	profile.ID = identity.ID
	profile.Email = email
	profile.LastActivity = time.Now()
	if _, err := s.repo.Insert(ctx, profile); err != nil {
		// Identidad ya creada y sin perfil: se reporta el fallo pero no hay
		// acción compensatoria.
		s.log.Error().Err(err).Str("identity_id", identity.ID).Msg("insertar perfil tras registro")
		return err
	}
	return nil
}

func mergeUser(u *entity.User, patch repository.UserPatch) {
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	if patch.LastActivity != nil {
		u.LastActivity = *patch.LastActivity
	}
}
