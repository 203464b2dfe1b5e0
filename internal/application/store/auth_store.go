package store

import (
	"context"
	"sync"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// AuthStore store de autenticación: identidad vigente + flag de carga.
// No hay máquina de estados más allá de {cargando -> resuelto(user|nil)},
// ni reintentos, ni renovación de sesión.
type AuthStore struct {
	mu      sync.RWMutex
	user    *entity.Identity
	loading bool

	gateway repository.AuthGateway
	log     *logger.Logger
}

// NewAuthStore construye el store; parte en estado cargando hasta el primer
// CheckAuth.
func NewAuthStore(gateway repository.AuthGateway, log *logger.Logger) *AuthStore {
	return &AuthStore{gateway: gateway, loading: true, log: log}
}

// CurrentUser devuelve la identidad vigente o nil.
func (s *AuthStore) CurrentUser() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Loading indica si la sesión inicial aún no se resuelve.
func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Login autentica contra el subsistema remoto y retiene la identidad. El
// fallo se propaga al llamador tal cual: es el único caso en que el store
// no decide nada sobre el error.
func (s *AuthStore) Login(ctx context.Context, email, password string) (repository.Session, error) {
	session, err := s.gateway.SignIn(ctx, email, password)
	if err != nil {
		return repository.Session{}, err
	}
	s.mu.Lock()
	user := session.User
	s.user = &user
	s.mu.Unlock()
	return session, nil
}

// Logout revoca la sesión remota y limpia la identidad local
// incondicionalmente: un fallo remoto no impide la limpieza.
func (s *AuthStore) Logout(ctx context.Context, accessToken string) {
	if err := s.gateway.SignOut(ctx, accessToken); err != nil {
		s.log.Warn().Err(err).Msg("cerrar sesión remota")
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// CheckAuth consulta la sesión vigente al arrancar: fija la identidad (o
// nil) y despeja el flag de carga en todos los caminos.
func (s *AuthStore) CheckAuth(ctx context.Context, accessToken string) (*entity.Identity, error) {
	identity, err := s.gateway.GetUser(ctx, accessToken)

	s.mu.Lock()
	s.user = identity
	s.loading = false
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("verificar sesión")
		return nil, err
	}
	return identity, nil
}
