package dto

// CreateUserRequest alta de perfil (sin identidad de autenticación).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin supervisor bodeguero personal"`
	Active   bool   `json:"active"`
}

// UpdateUserRequest actualización parcial del perfil.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	LastName *string `json:"last_name,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin supervisor bodeguero personal"`
	Active   *bool   `json:"active,omitempty"`
}

// RegisterUserRequest alta completa: identidad en el subsistema de
// autenticación más perfil asociado.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin supervisor bodeguero personal"`
	Active   bool   `json:"active"`
}
