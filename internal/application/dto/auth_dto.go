package dto

import "github.com/Sekhard17/inventario-surinnova/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse sesión resultante: token para las rutas protegidas más la
// identidad autenticada.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        entity.Identity `json:"user"`
}

// SessionResponse respuesta de verificación de sesión; User es nil cuando
// no hay sesión vigente.
type SessionResponse struct {
	User *entity.Identity `json:"user"`
}
