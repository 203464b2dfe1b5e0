package supabase

import (
	"context"
	"net/url"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

const productsTable = "products"

// ProductRepository acceso a la tabla remota de productos.
type ProductRepository struct {
	client *Client
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "name.asc")

	var products []entity.Product
	if err := r.client.Select(ctx, productsTable, query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Insert crea el producto y devuelve la fila confirmada.
func (r *ProductRepository) Insert(ctx context.Context, p entity.Product) (entity.Product, error) {
	// El id lo asigna el servicio remoto; no se envía.
	row := map[string]any{
		"code":     p.Code,
		"name":     p.Name,
		"category": p.Category,
		"stock":    p.Stock,
		"branch":   p.Branch,
	}
	var created entity.Product
	if err := r.client.Insert(ctx, productsTable, row, &created); err != nil {
		return entity.Product{}, err
	}
	return created, nil
}

// Update aplica una actualización parcial por id.
func (r *ProductRepository) Update(ctx context.Context, id string, patch repository.ProductPatch) error {
	return r.client.Update(ctx, productsTable, id, patch)
}

// Delete elimina por id.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, productsTable, id)
}
