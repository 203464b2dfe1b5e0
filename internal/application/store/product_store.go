package store

import (
	"context"
	"sync"

	"github.com/Sekhard17/inventario-surinnova/internal/domain"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

// ProductStore store de productos: lista cacheada en memoria + flag de
// carga + operaciones contra el servicio remoto. La mutación del caché
// ocurre solo después de confirmación remota; ante un fallo el caché queda
// intacto y se devuelve un error tipado (sin rollback porque nunca hay
// mutación especulativa, y sin resincronización posterior).
type ProductStore struct {
	mu       sync.RWMutex
	products []entity.Product
	loading  bool

	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductStore construye un store aislado e inyectable (sin estado global).
func NewProductStore(repo repository.ProductRepository, log *logger.Logger) *ProductStore {
	return &ProductStore{repo: repo, log: log}
}

// Products devuelve una copia de la lista cacheada.
func (s *ProductStore) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading indica si hay un fetch en curso.
func (s *ProductStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchProducts carga todos los productos ordenados por nombre y reemplaza
// el caché completo. No hay secuenciación de peticiones: una respuesta
// tardía sobrescribe el caché tal cual llega.
func (s *ProductStore) FetchProducts(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.log.Error().Err(err).Msg("cargar productos")
		return err
	}
	s.products = products
	return nil
}

// AddProduct inserta un producto y lo agrega al final del caché (no se
// reordena: diverge del orden por nombre del fetch).
func (s *ProductStore) AddProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Msg("agregar producto")
		return entity.Product{}, err
	}
	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateProduct envía una actualización parcial y mezcla los campos en el
// registro cacheado con ese id.
func (s *ProductStore) UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar producto")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		mergeProduct(&s.products[i], patch)
		break
	}
	return nil
}

// DeleteProduct elimina remotamente y filtra el id del caché.
func (s *ProductStore) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("eliminar producto")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

// UpdateStock aplica un delta sobre el stock cacheado. Si el resultado es
// negativo devuelve ErrInsufficientStock sin llamada remota. El chequeo es
// del lado del caché, no transaccional: sesiones concurrentes pueden
// igualmente rebasarlo. Un id desconocido es un no-op.
func (s *ProductStore) UpdateStock(ctx context.Context, id string, delta int) error {
	s.mu.RLock()
	var current *int
	for _, p := range s.products {
		if p.ID == id {
			stock := p.Stock
			current = &stock
			break
		}
	}
	s.mu.RUnlock()

	if current == nil {
		return nil
	}
	newStock := *current + delta
	if newStock < 0 {
		return domain.ErrInsufficientStock
	}
	return s.UpdateProduct(ctx, id, repository.ProductPatch{Stock: &newStock})
}

// CheckLowStock devuelve los productos con stock en o bajo el umbral.
// Filtro puro sobre el caché, recalculado en cada llamada.
func (s *ProductStore) CheckLowStock() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	low := make([]entity.Product, 0)
	for _, p := range s.products {
		if p.Stock <= entity.LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

func mergeProduct(p *entity.Product, patch repository.ProductPatch) {
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Branch != nil {
		p.Branch = *patch.Branch
	}
}
