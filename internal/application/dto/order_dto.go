package dto

import "github.com/Sekhard17/inventario-surinnova/internal/domain/entity"

// CreateOrderRequest creación de una orden de despacho. El número lo genera
// el store; el estado inicial es pending si no se indica.
type CreateOrderRequest struct {
	Date           string                `json:"date" validate:"required"`
	DeliveryDate   string                `json:"delivery_date" validate:"required"`
	Products       []entity.OrderProduct `json:"products" validate:"required,min=1,dive"`
	Branch         string                `json:"branch" validate:"required"`
	Address        string                `json:"address" validate:"required"`
	Carrier        string                `json:"carrier"`
	CarrierPhone   string                `json:"carrier_phone"`
	DeliveryPolicy string                `json:"delivery_policy"`
	AuthorizedBy   string                `json:"authorized_by"`
	AdditionalInfo string                `json:"additional_info"`
	Status         string                `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// UpdateOrderStatusRequest cambio de estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}
