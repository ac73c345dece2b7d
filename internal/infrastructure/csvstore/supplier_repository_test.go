package csvstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/infrastructure/csvstore"
)

func newSupplierRepo(t *testing.T) *csvstore.SupplierRepo {
	t.Helper()
	return csvstore.NewSupplierRepository(filepath.Join(t.TempDir(), "suppliers.csv"))
}

func TestSupplierRepo_RoundTrip(t *testing.T) {
	repo := newSupplierRepo(t)
	repo.Add(&entity.Supplier{ID: "S1", Name: "Insumos SA", Phone: "601", Email: "v@insumos.com", Address: "Zona franca", ProductCategories: "electrónica;hogar"})
	repo.Add(&entity.Supplier{ID: "S2", Name: "Textiles Ltda", Phone: "602", Email: "t@tex.com", Address: "Parque industrial", ProductCategories: "ropa"})

	require.NoError(t, repo.Save())
	repo.Clear()
	require.NoError(t, repo.Load())

	require.Equal(t, 2, repo.Count())
	all := repo.FindAll()
	assert.Equal(t, "S1", all[0].ID)
	assert.Equal(t, "electrónica;hogar", all[0].ProductCategories)
	assert.Equal(t, "Textiles Ltda", all[1].Name)
}

// El campo productCategories vacío al final de la línea debe sobrevivir.
func TestSupplierRepo_CampoFinalVacio(t *testing.T) {
	repo := newSupplierRepo(t)
	repo.Add(&entity.Supplier{ID: "S1", Name: "Sin categorías", Phone: "601", Email: "s@mail.com", Address: "Calle 9"})

	require.NoError(t, repo.Save())
	repo.Clear()
	require.NoError(t, repo.Load())

	require.Equal(t, 1, repo.Count())
	assert.Equal(t, "", repo.FindByID("S1").ProductCategories)
}

func TestSupplierRepo_ArchivoInexistente(t *testing.T) {
	repo := csvstore.NewSupplierRepository(filepath.Join(t.TempDir(), "no-existe.csv"))
	require.NoError(t, repo.Load())
	assert.Equal(t, 0, repo.Count())
}

// Search cubre también las categorías de producto (no el email, a
// diferencia de clientes).
func TestSupplierRepo_SearchPorCategorias(t *testing.T) {
	repo := newSupplierRepo(t)
	repo.Add(&entity.Supplier{ID: "S1", Name: "Insumos SA", Phone: "601", ProductCategories: "electrónica;hogar"})
	repo.Add(&entity.Supplier{ID: "S2", Name: "Textiles Ltda", Phone: "602", ProductCategories: "ropa"})

	assert.Len(t, repo.Search("electronica"), 1) // sin tildes
	assert.Len(t, repo.Search("ropa"), 1)
	assert.Len(t, repo.Search("601"), 1)
	assert.Len(t, repo.Search("alimentos"), 0)
}

func TestSupplierRepo_UpdateDeleteSilenciosos(t *testing.T) {
	repo := newSupplierRepo(t)
	repo.Add(&entity.Supplier{ID: "S1", Name: "Insumos SA"})

	repo.Update(&entity.Supplier{ID: "S9", Name: "Nadie"})
	repo.Delete("S9")
	assert.Equal(t, 1, repo.Count())

	repo.Update(&entity.Supplier{ID: "S1", Name: "Insumos y Más SA"})
	assert.Equal(t, "Insumos y Más SA", repo.FindByID("S1").Name)
}
