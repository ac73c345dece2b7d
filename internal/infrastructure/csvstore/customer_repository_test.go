package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCustomerRepo(t *testing.T) *csvstore.CustomerRepo {
	t.Helper()
	return csvstore.NewCustomerRepository(filepath.Join(t.TempDir(), "customers.csv"))
}

func sampleCustomer(id, name string) *entity.Customer {
	return &entity.Customer{
		ID:      id,
		Name:    name,
		Phone:   "3001234567",
		Email:   name + "@mail.com",
		Address: "Calle 1 #2-3",
		Type:    entity.CustomerRegular,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

// Round-trip: save + clear + load reproduce la colección (ids, campos y orden).
func TestCustomerRepo_RoundTrip(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))
	repo.Add(&entity.Customer{ID: "C2", Name: "Bruno", Phone: "311", Email: "b@mail.com", Address: "Cra 5", Type: entity.CustomerVIP})

	require.NoError(t, repo.Save())
	repo.Clear()
	require.Equal(t, 0, repo.Count())

	require.NoError(t, repo.Load())
	require.Equal(t, 2, repo.Count())

	all := repo.FindAll()
	assert.Equal(t, "C1", all[0].ID)
	assert.Equal(t, "Ana", all[0].Name)
	assert.Equal(t, entity.CustomerRegular, all[0].Type)
	assert.Equal(t, "C2", all[1].ID)
	assert.Equal(t, entity.CustomerVIP, all[1].Type)
}

// Load dos veces seguidas deja el mismo estado que una sola (limpia antes de poblar).
func TestCustomerRepo_LoadIdempotente(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))
	require.NoError(t, repo.Save())

	require.NoError(t, repo.Load())
	require.NoError(t, repo.Load())
	assert.Equal(t, 1, repo.Count())
}

// Un archivo inexistente es "almacén vacío", no un error (primer arranque).
func TestCustomerRepo_ArchivoInexistente(t *testing.T) {
	repo := csvstore.NewCustomerRepository(filepath.Join(t.TempDir(), "no-existe.csv"))
	require.NoError(t, repo.Load())
	assert.Equal(t, 0, repo.Count())
}

// Un tipo de cliente desconocido aborta la carga completa.
func TestCustomerRepo_TipoInvalidoAbortaCarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	content := "id,name,phone,email,address,type\n" +
		"C1,Ana,300,a@mail.com,Calle 1,REGULAR\n" +
		"C2,Bruno,311,b@mail.com,Cra 5,PLATINUM\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := csvstore.NewCustomerRepository(path)
	assert.Error(t, repo.Load())
}

// Las líneas con menos campos de los requeridos se descartan sin abortar.
func TestCustomerRepo_LineaCortaSeDescarta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	content := "id,name,phone,email,address,type\n" +
		"C1,Ana,300\n" +
		"C2,Bruno,311,b@mail.com,Cra 5,VIP\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := csvstore.NewCustomerRepository(path)
	require.NoError(t, repo.Load())
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, "C2", repo.FindAll()[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// Update sobre un id inexistente no hace nada y no falla (contrato del
// almacén de clientes, distinto al de productos).
func TestCustomerRepo_UpdateInexistenteEsSilencioso(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))

	repo.Update(sampleCustomer("C9", "Nadie"))
	assert.Equal(t, 1, repo.Count())
	assert.Nil(t, repo.FindByID("C9"))
}

func TestCustomerRepo_UpdateReemplazaCampos(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))

	repo.Update(&entity.Customer{ID: "C1", Name: "Ana María", Phone: "320", Email: "am@mail.com", Address: "Nueva", Type: entity.CustomerWholesale})

	got := repo.FindByID("C1")
	require.NotNil(t, got)
	assert.Equal(t, "Ana María", got.Name)
	assert.Equal(t, entity.CustomerWholesale, got.Type)
	assert.Equal(t, 1, repo.Count())
}

func TestCustomerRepo_DeleteInexistenteEsSilencioso(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))

	repo.Delete("C9")
	assert.Equal(t, 1, repo.Count())

	repo.Delete("C1")
	assert.Equal(t, 0, repo.Count())
}

// Los ids duplicados son legales; FindByID devuelve la primera coincidencia.
func TestCustomerRepo_DuplicadosPrimeraCoincidencia(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Primera"))
	repo.Add(sampleCustomer("C1", "Segunda"))

	assert.Equal(t, 2, repo.Count())
	got := repo.FindByID("C1")
	require.NotNil(t, got)
	assert.Equal(t, "Primera", got.Name)
}

func TestCustomerRepo_FindByNameSinMayusculas(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana García"))
	repo.Add(sampleCustomer("C2", "Bruno"))

	assert.Len(t, repo.FindByName("garcía"), 1)
	assert.Len(t, repo.FindByName("GARCIA"), 1) // sin tildes también
	assert.Len(t, repo.FindByName("zz"), 0)
}

func TestCustomerRepo_SearchMultiCampo(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(&entity.Customer{ID: "C1", Name: "Ana", Phone: "3001112233", Email: "ana@mail.com", Address: "x", Type: entity.CustomerRegular})
	repo.Add(&entity.Customer{ID: "C2", Name: "Bruno", Phone: "3115556677", Email: "bruno@otro.com", Address: "y", Type: entity.CustomerVIP})

	assert.Len(t, repo.Search("mail.com"), 1)  // email
	assert.Len(t, repo.Search("311555"), 1)    // teléfono
	assert.Len(t, repo.Search("BRUNO"), 1)     // nombre
	assert.Len(t, repo.Search("no-existe"), 0)
}

// FindAll devuelve una copia: mutar el slice no afecta al almacén.
func TestCustomerRepo_FindAllCopiaDefensiva(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))

	all := repo.FindAll()
	all[0] = sampleCustomer("CX", "Otro")
	assert.Equal(t, "C1", repo.FindAll()[0].ID)
}

func TestCustomerRepo_FindByType(t *testing.T) {
	repo := newCustomerRepo(t)
	repo.Add(sampleCustomer("C1", "Ana"))
	repo.Add(&entity.Customer{ID: "C2", Name: "Bruno", Type: entity.CustomerVIP})
	repo.Add(&entity.Customer{ID: "C3", Name: "Carla", Type: entity.CustomerVIP})

	vips := repo.FindByType(entity.CustomerVIP)
	require.Len(t, vips, 2)
	assert.Equal(t, "C2", vips[0].ID)
	assert.Equal(t, "C3", vips[1].ID)
}
