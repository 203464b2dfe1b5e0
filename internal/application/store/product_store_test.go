package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sekhard17/inventario-surinnova/internal/domain"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/entity"
	"github.com/Sekhard17/inventario-surinnova/internal/domain/repository"
	"github.com/Sekhard17/inventario-surinnova/pkg/logger"
)

func productStoreWith(repo *fakeProductRepo) *ProductStore {
	return NewProductStore(repo, logger.Nop())
}

func seedProducts(t *testing.T, s *ProductStore, repo *fakeProductRepo, products ...entity.Product) {
	t.Helper()
	repo.listResult = products
	require.NoError(t, s.FetchProducts(context.Background()))
}

// Fetch exitoso reemplaza el caché y despeja el flag de carga.
func TestProductStore_FetchReemplazaCache(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)

	seedProducts(t, s, repo,
		entity.Product{ID: "P1", Name: "Alambre", Stock: 40},
		entity.Product{ID: "P2", Name: "Clavos", Stock: 5},
	)

	assert.Len(t, s.Products(), 2)
	assert.False(t, s.Loading())
}

// Fetch fallido deja el caché intacto (salvo el flag de carga) y devuelve
// el error tipado.
func TestProductStore_FetchFallido_CacheIntacto(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Name: "Alambre", Stock: 40})

	repo.listErr = domain.ErrRemoteUnavailable
	err := s.FetchProducts(context.Background())

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Len(t, s.Products(), 1, "el caché no debe tocarse ante fallo remoto")
	assert.False(t, s.Loading(), "el flag de carga se despeja en ambos caminos")
}

// El producto agregado queda al FINAL del caché (no se reordena, a
// diferencia de movimientos/órdenes).
func TestProductStore_AddProduct_AgregaAlFinal(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo,
		entity.Product{ID: "P1", Name: "Alambre"},
		entity.Product{ID: "P2", Name: "Clavos"},
	)

	created, err := s.AddProduct(context.Background(), entity.Product{Code: "ZZ-01", Name: "Zuncho", Stock: 3})
	require.NoError(t, err)

	products := s.Products()
	require.Len(t, products, 3)
	assert.Equal(t, created.ID, products[2].ID, "el nuevo producto va al final")
}

// Insert fallido: el caché no cambia.
func TestProductStore_AddProductFallido_NoMutaCache(t *testing.T) {
	repo := &fakeProductRepo{insertErr: domain.ErrRemoteUnavailable}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Name: "Alambre"})

	_, err := s.AddProduct(context.Background(), entity.Product{Name: "Zuncho"})

	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	assert.Len(t, s.Products(), 1)
}

// Update parcial se mezcla en el registro cacheado con ese id.
func TestProductStore_UpdateProduct_MezclaEnCache(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo,
		entity.Product{ID: "P1", Name: "Alambre", Category: "Ferretería", Stock: 40},
		entity.Product{ID: "P2", Name: "Clavos", Stock: 5},
	)

	name := "Alambre galvanizado"
	require.NoError(t, s.UpdateProduct(context.Background(), "P1", repository.ProductPatch{Name: &name}))

	products := s.Products()
	assert.Equal(t, "Alambre galvanizado", products[0].Name)
	assert.Equal(t, "Ferretería", products[0].Category, "los campos no parchados se conservan")
	assert.Equal(t, "Clavos", products[1].Name, "los demás registros no se tocan")
}

// Delete filtra el id del caché después de confirmar remotamente.
func TestProductStore_DeleteProduct_FiltraDelCache(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo,
		entity.Product{ID: "P1", Name: "Alambre"},
		entity.Product{ID: "P2", Name: "Clavos"},
	)

	require.NoError(t, s.DeleteProduct(context.Background(), "P1"))

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "P2", products[0].ID)
}

// Propiedad: para todo producto p, UpdateStock(p.id, -p.stock-1) se rechaza
// con ErrInsufficientStock, el stock no cambia y NO hay llamada remota.
func TestProductStore_UpdateStock_NuncaNegativo(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Name: "Alambre", Stock: 7})

	err := s.UpdateStock(context.Background(), "P1", -8)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 7, s.Products()[0].Stock, "el stock no debe cambiar")
	assert.Zero(t, repo.updateCalls, "el rechazo ocurre antes de cualquier llamada remota")
}

// Delta válido delega en UpdateProduct con el stock resultante.
func TestProductStore_UpdateStock_AplicaDelta(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Name: "Alambre", Stock: 7})

	require.NoError(t, s.UpdateStock(context.Background(), "P1", -3))

	assert.Equal(t, 4, s.Products()[0].Stock)
	require.NotNil(t, repo.lastPatch.Stock)
	assert.Equal(t, 4, *repo.lastPatch.Stock)
}

// Rebajar hasta exactamente cero es válido.
func TestProductStore_UpdateStock_HastaCero(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Stock: 7})

	require.NoError(t, s.UpdateStock(context.Background(), "P1", -7))
	assert.Equal(t, 0, s.Products()[0].Stock)
}

// Un id desconocido es un no-op silencioso, sin llamada remota.
func TestProductStore_UpdateStock_IdDesconocido_NoOp(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Stock: 7})

	assert.NoError(t, s.UpdateStock(context.Background(), "NO-EXISTE", -1))
	assert.Zero(t, repo.updateCalls)
}

// Propiedad: CheckLowStock devuelve exactamente el subconjunto con
// stock <= 10, y lista vacía cuando ninguno califica.
func TestProductStore_CheckLowStock(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo,
		entity.Product{ID: "P1", Name: "Alambre", Stock: 40},
		entity.Product{ID: "P2", Name: "Clavos", Stock: 10}, // umbral inclusive
		entity.Product{ID: "P3", Name: "Tornillos", Stock: 0},
		entity.Product{ID: "P4", Name: "Zuncho", Stock: 11},
	)

	low := s.CheckLowStock()
	require.Len(t, low, 2)
	assert.Equal(t, "P2", low[0].ID)
	assert.Equal(t, "P3", low[1].ID)
}

func TestProductStore_CheckLowStock_SinCandidatos(t *testing.T) {
	repo := &fakeProductRepo{}
	s := productStoreWith(repo)
	seedProducts(t, s, repo, entity.Product{ID: "P1", Stock: 50})

	assert.Empty(t, s.CheckLowStock())
}
