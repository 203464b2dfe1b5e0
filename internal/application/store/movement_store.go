package store

import (
	"context"
	"sync"
	"time"

	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// DefaultRecentLimit cantidad por defecto de movimientos recientes.
const DefaultRecentLimit = 10

// MovementStore store de movimientos de inventario. Los movimientos son
// append-only; el caché se mantiene en orden más-reciente-primero, igual
// que el fetch.
type MovementStore struct {
	mu        sync.RWMutex
	movements []entity.Movement
	loading   bool

	repo repository.MovementRepository
	log  *logger.Logger
}

// NewMovementStore construye un store aislado e inyectable.
func NewMovementStore(repo repository.MovementRepository, log *logger.Logger) *MovementStore {
	return &MovementStore{repo: repo, log: log}
}

// Movements devuelve una copia de la lista cacheada.
func (s *MovementStore) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// Loading indica si hay un fetch en curso.
func (s *MovementStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchMovements carga todos los movimientos, más recientes primero, con
// nombres de producto y usuario resueltos.
func (s *MovementStore) FetchMovements(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	movements, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Msg("cargar movimientos")
		return err
	}
	s.movements = movements
	return nil
}

// RegisterMovement sella el movimiento con la hora actual, lo inserta y
// antepone el registro confirmado al caché (más-reciente-primero, en
// contraste con el append de productos).
func (s *MovementStore) RegisterMovement(ctx context.Context, m entity.Movement) (entity.Movement, error) {
	m.Date = time.Now()
	created, err := s.repo.Insert(ctx, m)
	if err != nil {
		s.log.Error().Err(err).Msg("registrar movimiento")
		return entity.Movement{}, err
	}
	s.mu.Lock()
	s.movements = append([]entity.Movement{created}, s.movements...)
	s.mu.Unlock()
	return created, nil
}

// MovementsByType filtro puro del caché por tipo (in/out).
func (s *MovementStore) MovementsByType(movementType string) []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movement, 0)
	for _, m := range s.movements {
		if m.Type == movementType {
			out = append(out, m)
		}
	}
	return out
}

// RecentMovements devuelve los primeros limit movimientos del caché
// (los más recientes). limit <= 0 usa DefaultRecentLimit.
func (s *MovementStore) RecentMovements(limit int) []entity.Movement {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.movements) {
		limit = len(s.movements)
	}
	out := make([]entity.Movement, limit)
	copy(out, s.movements[:limit])
	return out
}
