package supabase

import (
	"context"
	"net/url"
	"time"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
)

const movementsTable = "inventory_movements"

// MovementRepository acceso a la tabla remota de movimientos de inventario.
type MovementRepository struct {
	client *Client
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

// NewMovementRepository construye el repositorio.
func NewMovementRepository(client *Client) *MovementRepository {
	return &MovementRepository{client: client}
}

// movementRow fila de la tabla con los embeds de PostgREST para resolver
// nombres de producto y usuario en la misma consulta.
type movementRow struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	Products  *struct {
		Name string `json:"name"`
	} `json:"products"`
	Users *struct {
		Name string `json:"name"`
	} `json:"users"`
}

func (row movementRow) toEntity() entity.Movement {
	m := entity.Movement{
		ID:        row.ID,
		Date:      row.Date,
		Type:      row.Type,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		UserID:    row.UserID,
		Reason:    row.Reason,
	}
	if row.Products != nil {
		m.Product = row.Products.Name
	}
	if row.Users != nil {
		m.User = row.Users.Name
	}
	return m
}

// List devuelve todos los movimientos, más recientes primero, con los
// nombres para mostrar embebidos.
func (r *MovementRepository) List(ctx context.Context) ([]entity.Movement, error) {
	query := url.Values{}
	query.Set("select", "*,products(name),users(name)")
	query.Set("order", "date.desc")

	var rows []movementRow
	if err := r.client.Select(ctx, movementsTable, query, &rows); err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, row.toEntity())
	}
	return movements, nil
}

// Insert registra el movimiento. La representación devuelta no incluye los
// embeds, así que Product y User quedan vacíos hasta el próximo List.
func (r *MovementRepository) Insert(ctx context.Context, m entity.Movement) (entity.Movement, error) {
	row := map[string]any{
		"date":       m.Date,
		"type":       m.Type,
		"product_id": m.ProductID,
		"quantity":   m.Quantity,
		"user_id":    m.UserID,
		"reason":     m.Reason,
	}
	var created movementRow
	if err := r.client.Insert(ctx, movementsTable, row, &created); err != nil {
		return entity.Movement{}, err
	}
	return created.toEntity(), nil
}
