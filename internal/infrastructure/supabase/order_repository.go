package supabase

import (
	"context"
	"net/url"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

const ordersTable = "orders"

// OrderRepository acceso a la tabla remota de órdenes de despacho.
type OrderRepository struct {
	client *Client
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository construye el repositorio.
func NewOrderRepository(client *Client) *OrderRepository {
	return &OrderRepository{client: client}
}

// List devuelve todas las órdenes, más recientes primero.
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "date.desc")

	var orders []entity.Order
	if err := r.client.Select(ctx, ordersTable, query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert crea la orden y devuelve la fila confirmada.
func (r *OrderRepository) Insert(ctx context.Context, o entity.Order) (entity.Order, error) {
	row := map[string]any{
		"number":          o.Number,
		"date":            o.Date,
		"delivery_date":   o.DeliveryDate,
		"products":        o.Products,
		"branch":          o.Branch,
		"address":         o.Address,
		"carrier":         o.Carrier,
		"carrier_phone":   o.CarrierPhone,
		"delivery_policy": o.DeliveryPolicy,
		"authorized_by":   o.AuthorizedBy,
		"additional_info": o.AdditionalInfo,
		"status":          o.Status,
	}
	var created entity.Order
	if err := r.client.Insert(ctx, ordersTable, row, &created); err != nil {
		return entity.Order{}, err
	}
	return created, nil
}

// UpdateStatus cambia solo el estado de la orden.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.client.Update(ctx, ordersTable, id, map[string]string{"status": status})
}
