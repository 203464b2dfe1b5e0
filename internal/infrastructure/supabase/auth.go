package supabase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/domain"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/config"
)

// AuthClient cliente contra el subsistema de autenticación del servicio
// remoto (GoTrue, /auth/v1). Implementa repository.AuthGateway.
type AuthClient struct {
	http *resty.Client
}

var _ repository.AuthGateway = (*AuthClient)(nil)

// NewAuthClient construye el cliente de autenticación.
func NewAuthClient(cfg config.SupabaseConfig) *AuthClient {
	base := strings.TrimSuffix(cfg.URL, "/")

	rc := resty.New()
	rc.
		SetBaseURL(base+"/auth/v1").
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)

	return &AuthClient{http: rc}
}

// gotrueUser forma del usuario en las respuestas de GoTrue; el rol de la
// aplicación viaja en user_metadata.
type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (u gotrueUser) identity() entity.Identity {
	role, _ := u.UserMetadata["role"].(string)
	return entity.Identity{ID: u.ID, Email: u.Email, Role: role}
}

// authError payload de error de GoTrue (los campos varían según versión).
type authError struct {
	Message          string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e authError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}

// SignIn autentica con email/password (grant password). Credenciales
// rechazadas devuelven ErrInvalidCredentials; cualquier otro fallo,
// ErrRemoteUnavailable.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (repository.Session, error) {
	var out struct {
		AccessToken string     `json:"access_token"`
		User        gotrueUser `json:"user"`
	}
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&authError{}).
		Post("/token")
	if err != nil {
		return repository.Session{}, fmt.Errorf("%w: signin: %v", domain.ErrRemoteUnavailable, err)
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized {
			return repository.Session{}, domain.ErrInvalidCredentials
		}
		return repository.Session{}, fmt.Errorf("%w: signin: HTTP %d", domain.ErrRemoteUnavailable, resp.StatusCode())
	}
	return repository.Session{
		AccessToken: out.AccessToken,
		User:        out.User.identity(),
	}, nil
}

// SignUp crea una identidad nueva con metadata adjunta (rol, nombre).
func (a *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (entity.Identity, error) {
	var out gotrueUser
	resp, err := a.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"email": email, "password": password, "data": metadata}).
		SetResult(&out).
		SetError(&authError{}).
		Post("/signup")
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: signup: %v", domain.ErrRemoteUnavailable, err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*authError); ok && apiErr.text() != "" {
			return entity.Identity{}, fmt.Errorf("%w: signup: %s", domain.ErrRemoteUnavailable, apiErr.text())
		}
		return entity.Identity{}, fmt.Errorf("%w: signup: HTTP %d", domain.ErrRemoteUnavailable, resp.StatusCode())
	}
	return out.identity(), nil
}

// GetUser resuelve la identidad del access token. Un token inválido o
// expirado se reporta como ausencia de sesión (nil, nil), no como error.
func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	if accessToken == "" {
		return nil, nil
	}
	var out gotrueUser
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(&out).
		SetError(&authError{}).
		Get("/user")
	if err != nil {
		return nil, fmt.Errorf("%w: getuser: %v", domain.ErrRemoteUnavailable, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: getuser: HTTP %d", domain.ErrRemoteUnavailable, resp.StatusCode())
	}
	id := out.identity()
	return &id, nil
}

// SignOut revoca la sesión del token. El resultado se trata como
// incondicional: un fallo remoto no impide limpiar el estado local.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetError(&authError{}).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("%w: signout: %v", domain.ErrRemoteUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: signout: HTTP %d", domain.ErrRemoteUnavailable, resp.StatusCode())
	}
	return nil
}
