package repository

import (
	"context"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
)

// Session sesión vigente contra el subsistema de autenticación remoto.
type Session struct {
	AccessToken string          `json:"access_token"`
	User        entity.Identity `json:"user"`
}

// AuthGateway puerto hacia el subsistema de autenticación del servicio
// remoto (GoTrue). No hay renovación de tokens ni reintentos: cada llamada
// es request/response y puede fallar con un error opaco.
type AuthGateway interface {
	// SignIn autentica email/password y devuelve la sesión resultante.
	SignIn(ctx context.Context, email, password string) (Session, error)
	// SignUp crea una identidad nueva; metadata viaja como user_metadata
	// (rol, nombre) junto a la identidad.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (entity.Identity, error)
	// GetUser resuelve la identidad de un access token vigente; devuelve
	// nil sin error si no hay sesión.
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)
	// SignOut revoca la sesión del token indicado.
	SignOut(ctx context.Context, accessToken string) error
}
