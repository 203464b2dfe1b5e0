package entity

import "time"

// Roles válidos para User. Gobiernan únicamente el acceso a rutas; el
// servicio remoto no los hace cumplir por su cuenta.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleBodeguero  = "bodeguero"
	RolePersonal   = "personal"
)

// ValidRole indica si el rol pertenece a la enumeración cerrada.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleBodeguero, RolePersonal:
		return true
	}
	return false
}

// User representa el perfil de un usuario del sistema. La identidad (email +
// password) vive en el subsistema de autenticación remoto; este registro es
// el perfil asociado, ligado por ID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"` // admin, supervisor, bodeguero, personal
	Active       bool      `json:"active"`
	LastActivity time.Time `json:"last_activity"`
}

// Identity es la identidad mínima que entrega el subsistema de autenticación
// (login o sesión vigente). No es el perfil completo.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
