package dto

// CreateProductRequest alta de producto. El stock inicial puede ser cero.
type CreateProductRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Stock    int    `json:"stock" validate:"min=0"`
	Branch   string `json:"branch" validate:"required"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes.
type UpdateProductRequest struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Stock    *int    `json:"stock,omitempty" validate:"omitempty,min=0"`
	Branch   *string `json:"branch,omitempty"`
}

// AdjustStockRequest delta de stock (positivo entrada, negativo salida).
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}
