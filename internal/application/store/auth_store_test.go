package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sekhard17/inventario-surinnova/internal/domain"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// Login exitoso retiene la identidad y devuelve la sesión completa.
func TestAuthStore_Login_RetieneIdentidad(t *testing.T) {
	gw := &fakeAuthGateway{signInSession: repository.Session{
		AccessToken: "tok-123",
		User:        entity.Identity{ID: "U1", Email: "ana@surinnova.cl", Role: entity.RoleAdmin},
	}}
	s := NewAuthStore(gw, logger.Nop())

	session, err := s.Login(context.Background(), "ana@surinnova.cl", "secreto")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", session.AccessToken)
	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

// El fallo de login se propaga tal cual al llamador; la identidad local no
// cambia.
func TestAuthStore_LoginFallido_Propaga(t *testing.T) {
	gw := &fakeAuthGateway{signInErr: domain.ErrInvalidCredentials}
	s := NewAuthStore(gw, logger.Nop())

	_, err := s.Login(context.Background(), "ana@surinnova.cl", "mala")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, s.CurrentUser())
}

// Logout limpia la identidad local incondicionalmente, incluso si la
// revocación remota falla.
func TestAuthStore_Logout_LimpiaIncondicional(t *testing.T) {
	gw := &fakeAuthGateway{
		signInSession: repository.Session{User: entity.Identity{ID: "U1"}},
		signOutErr:    domain.ErrRemoteUnavailable,
	}
	s := NewAuthStore(gw, logger.Nop())
	_, err := s.Login(context.Background(), "ana@surinnova.cl", "secreto")
	require.NoError(t, err)

	s.Logout(context.Background(), "tok-123")

	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, 1, gw.signOutCalls)
}

// CheckAuth resuelve la sesión vigente y despeja el flag de carga.
func TestAuthStore_CheckAuth_ConSesion(t *testing.T) {
	gw := &fakeAuthGateway{getUserResult: &entity.Identity{ID: "U1", Role: entity.RoleBodeguero}}
	s := NewAuthStore(gw, logger.Nop())
	require.True(t, s.Loading(), "parte en estado cargando")

	identity, err := s.CheckAuth(context.Background(), "tok-123")
	require.NoError(t, err)

	require.NotNil(t, identity)
	assert.Equal(t, "U1", identity.ID)
	assert.False(t, s.Loading())
	assert.NotNil(t, s.CurrentUser())
}

// Sin sesión vigente: identidad nil, sin error, flag despejado.
func TestAuthStore_CheckAuth_SinSesion(t *testing.T) {
	s := NewAuthStore(&fakeAuthGateway{}, logger.Nop())

	identity, err := s.CheckAuth(context.Background(), "")
	require.NoError(t, err)

	assert.Nil(t, identity)
	assert.Nil(t, s.CurrentUser())
	assert.False(t, s.Loading())
}

// Fallo remoto al verificar: el flag se despeja igual y el error se
// devuelve.
func TestAuthStore_CheckAuth_FalloRemoto(t *testing.T) {
	gw := &fakeAuthGateway{getUserErr: domain.ErrRemoteUnavailable}
	s := NewAuthStore(gw, logger.Nop())

	_, err := s.CheckAuth(context.Background(), "tok-123")

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.False(t, s.Loading(), "el flag de carga se despeja en ambos caminos")
}
