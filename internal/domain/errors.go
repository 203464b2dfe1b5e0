package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los stores devuelven estos
// valores tipados y la capa de presentación decide el mensaje al usuario;
// ningún store emite notificaciones por su cuenta.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrRemoteUnavailable  = errors.New("servicio remoto no disponible")
)
