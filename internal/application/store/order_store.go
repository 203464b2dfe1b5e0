package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// OrderStore store de órdenes de despacho. El caché se mantiene en orden
// más-reciente-primero. Crear una orden NO descuenta stock de productos:
// la rebaja de inventario es un movimiento manual aparte.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []entity.Order
	loading bool

	repo repository.OrderRepository
	log  *logger.Logger
}

// NewOrderStore construye un store aislado e inyectable.
func NewOrderStore(repo repository.OrderRepository, log *logger.Logger) *OrderStore {
	return &OrderStore{repo: repo, log: log}
}

// Orders devuelve una copia de la lista cacheada.
func (s *OrderStore) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Loading indica si hay un fetch en curso.
func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchOrders carga todas las órdenes, más recientes primero.
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	orders, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Msg("cargar órdenes")
		return err
	}
	s.orders = orders
	return nil
}

// CreateOrder genera el número desde el reloj local (OD<millis>), inserta y
// antepone la orden confirmada al caché. La unicidad del número no está
// garantizada bajo creación concurrente desde varias sesiones.
func (s *OrderStore) CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error) {
	o.Number = "OD" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	created, err := s.repo.Insert(ctx, o)
	if err != nil {
		s.log.Error().Err(err).Msg("crear orden")
		return entity.Order{}, err
	}
	s.mu.Lock()
	s.orders = append([]entity.Order{created}, s.orders...)
	s.mu.Unlock()
	return created, nil
}

// UpdateOrderStatus actualiza remotamente y parcha solo el campo status del
// registro cacheado.
func (s *OrderStore) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar estado de orden")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			break
		}
	}
	return nil
}

// PendingOrders filtro puro del caché por estado pendiente.
func (s *OrderStore) PendingOrders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, 0)
	for _, o := range s.orders {
		if o.Status == entity.OrderStatusPending {
			out = append(out, o)
		}
	}
	return out
}

// TodayOrders devuelve las órdenes cuya fecha comienza con el día de hoy
// (comparación léxica de prefijo YYYY-MM-DD, sin normalización de zona
// horaria: fecha almacenada y reloj local deben compartir formato).
func (s *OrderStore) TodayOrders() []entity.Order {
	today := time.Now().Format("2006-01-02")
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, 0)
	for _, o := range s.orders {
		if strings.HasPrefix(o.Date, today) {
			out = append(out, o)
		}
	}
	return out
}
