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

func userStoreWith(repo *fakeUserRepo, gw *fakeAuthGateway) *UserStore {
	return NewUserStore(repo, gw, logger.Nop())
}

// AddUser sella lastActivity y agrega al final del caché.
func TestUserStore_AddUser_AgregaAlFinal(t *testing.T) {
	repo := &fakeUserRepo{listResult: []entity.User{{ID: "U1", Name: "Ana"}}}
	s := userStoreWith(repo, &fakeAuthGateway{})
	require.NoError(t, s.FetchUsers(context.Background()))

	created, err := s.AddUser(context.Background(), entity.User{
		Email: "pedro@surinnova.cl", Name: "Pedro", LastName: "Soto", Role: entity.RoleBodeguero, Active: true,
	})
	require.NoError(t, err)

	users := s.Users()
	require.Len(t, users, 2)
	assert.Equal(t, created.ID, users[1].ID)
	assert.False(t, created.LastActivity.IsZero(), "lastActivity la sella el store")
}

// Update parcial se mezcla en el registro cacheado.
func TestUserStore_UpdateUser_MezclaEnCache(t *testing.T) {
	repo := &fakeUserRepo{listResult: []entity.User{
		{ID: "U1", Name: "Ana", Role: entity.RolePersonal, Active: true},
	}}
	s := userStoreWith(repo, &fakeAuthGateway{})
	require.NoError(t, s.FetchUsers(context.Background()))

	role := entity.RoleSupervisor
	inactive := false
	require.NoError(t, s.UpdateUser(context.Background(), "U1", repository.UserPatch{Role: &role, Active: &inactive}))

	users := s.Users()
	assert.Equal(t, entity.RoleSupervisor, users[0].Role)
	assert.False(t, users[0].Active)
	assert.Equal(t, "Ana", users[0].Name, "los campos no parchados se conservan")
}

// Delete filtra el id del caché.
func TestUserStore_DeleteUser_FiltraDelCache(t *testing.T) {
	repo := &fakeUserRepo{listResult: []entity.User{{ID: "U1"}, {ID: "U2"}}}
	s := userStoreWith(repo, &fakeAuthGateway{})
	require.NoError(t, s.FetchUsers(context.Background()))

	require.NoError(t, s.DeleteUser(context.Background(), "U2"))

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "U1", users[0].ID)
}

// Registro exitoso: identidad + perfil con el id de la identidad nueva.
// El caché NO se muta: el usuario aparece recién en el próximo fetch.
func TestUserStore_RegisterUser_PerfilConIdDeIdentidad(t *testing.T) {
	repo := &fakeUserRepo{}
	gw := &fakeAuthGateway{signUpResult: entity.Identity{ID: "AUTH-1", Email: "maria@surinnova.cl"}}
	s := userStoreWith(repo, gw)

	err := s.RegisterUser(context.Background(), "maria@surinnova.cl", "secreto-123", entity.User{
		Name: "María", LastName: "Paredes", Role: entity.RoleSupervisor, Active: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, gw.signUpCalls)
	assert.Equal(t, 1, repo.insertCalls)
	assert.Equal(t, "AUTH-1", repo.lastInsert.ID, "el perfil se liga al id de la identidad")
	assert.Equal(t, "maria@surinnova.cl", repo.lastInsert.Email)
	assert.Empty(t, s.Users(), "el caché no se muta en el registro")
}

// Escenario de extremo a extremo: si la identidad se crea pero el perfil
// falla, el caché queda intacto, se devuelve un único error y la identidad
// huérfana NO se revierte (brecha aceptada, no remediada).
func TestUserStore_RegisterUser_PerfilFalla_IdentidadHuerfana(t *testing.T) {
	repo := &fakeUserRepo{insertErr: domain.ErrRemoteUnavailable}
	gw := &fakeAuthGateway{signUpResult: entity.Identity{ID: "AUTH-1"}}
	s := userStoreWith(repo, gw)

	err := s.RegisterUser(context.Background(), "maria@surinnova.cl", "secreto-123", entity.User{
		Name: "María", Role: entity.RoleSupervisor,
	})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Empty(t, s.Users(), "sin perfil parcial en el caché")
	assert.Equal(t, 1, gw.signUpCalls, "la identidad sí se creó")
}

// Si la identidad falla, el perfil ni se intenta.
func TestUserStore_RegisterUser_IdentidadFalla_SinPerfil(t *testing.T) {
	repo := &fakeUserRepo{}
	gw := &fakeAuthGateway{signUpErr: domain.ErrRemoteUnavailable}
	s := userStoreWith(repo, gw)

	err := s.RegisterUser(context.Background(), "x@surinnova.cl", "secreto-123", entity.User{})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Zero(t, repo.insertCalls)
}

// Fetch fallido deja el caché intacto.
func TestUserStore_FetchFallido_CacheIntacto(t *testing.T) {
	repo := &fakeUserRepo{listResult: []entity.User{{ID: "U1"}}}
	s := userStoreWith(repo, &fakeAuthGateway{})
	require.NoError(t, s.FetchUsers(context.Background()))

	repo.listErr = domain.ErrRemoteUnavailable
	err := s.FetchUsers(context.Background())

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Len(t, s.Users(), 1)
}
