package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: arma el almacén de órdenes con sus tres archivos y los hermanos
// ya cargados (clientes, proveedores, productos), como hace el arranque real.
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	dir       string
	orders    *csvstore.OrderRepo
	customers *csvstore.CustomerRepo
	suppliers *csvstore.SupplierRepo
	products  *csvstore.ProductRepo
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	dir := t.TempDir()

	f := &orderFixture{
		dir:       dir,
		customers: csvstore.NewCustomerRepository(filepath.Join(dir, "customers.csv")),
		suppliers: csvstore.NewSupplierRepository(filepath.Join(dir, "suppliers.csv")),
		products:  csvstore.NewProductRepository(filepath.Join(dir, "products.csv")),
		orders: csvstore.NewOrderRepository(
			filepath.Join(dir, "import_orders.csv"),
			filepath.Join(dir, "export_orders.csv"),
			filepath.Join(dir, "order_items.csv"),
		),
	}
	f.orders.SetCustomerRepository(f.customers)
	f.orders.SetSupplierRepository(f.suppliers)
	f.orders.SetProductRepository(f.products)

	f.customers.Add(&entity.Customer{ID: "C1", Name: "Ana", Type: entity.CustomerRegular})
	f.suppliers.Add(&entity.Supplier{ID: "S1", Name: "Insumos SA"})
	f.products.Add(&entity.Electronics{ProductInfo: entity.ProductInfo{ID: "P1", Name: "Phone", StockQuantity: 20}, WarrantyMonths: 12})
	f.products.Add(&entity.Clothing{ProductInfo: entity.ProductInfo{ID: "P2", Name: "Camisa"}, Size: "M", Material: "algodón"})
	return f
}

func (f *orderFixture) writeImports(t *testing.T, lines ...string) {
	t.Helper()
	writeOrderFile(t, filepath.Join(f.dir, "import_orders.csv"),
		"orderId,supplierId,orderDate,totalAmount,status,warehouseLocation", lines)
}

func (f *orderFixture) writeExports(t *testing.T, lines ...string) {
	t.Helper()
	writeOrderFile(t, filepath.Join(f.dir, "export_orders.csv"),
		"orderId,customerId,orderDate,totalAmount,status,deliveryAddress", lines)
}

func (f *orderFixture) writeItems(t *testing.T, lines ...string) {
	t.Helper()
	writeOrderFile(t, filepath.Join(f.dir, "order_items.csv"),
		"orderId,productId,quantity,unitPrice", lines)
}

func writeOrderFile(t *testing.T, path, header string, lines []string) {
	t.Helper()
	content := header + "\n"
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func date(s string) time.Time {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de claves foráneas
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_ResuelveProveedor(t *testing.T) {
	f := newOrderFixture(t)
	f.writeImports(t, "I1,S1,2026-01-10,500.0,PENDING,Bodega A")

	require.NoError(t, f.orders.Load())
	o := f.orders.FindImportOrderByID("I1")
	require.NotNil(t, o)
	require.NotNil(t, o.Supplier)
	assert.Equal(t, "Insumos SA", o.Supplier.Name)
	assert.Equal(t, date("2026-01-10"), o.OrderDate)
}

// Un supplierId ausente del almacén degrada a referencia nil; la orden se
// carga igual, no se descarta.
func TestOrderRepo_ProveedorAusenteDegradaANil(t *testing.T) {
	f := newOrderFixture(t)
	f.writeImports(t, "I1,S9,2026-01-10,500.0,PENDING,Bodega A")

	require.NoError(t, f.orders.Load())
	o := f.orders.FindImportOrderByID("I1")
	require.NotNil(t, o)
	assert.Nil(t, o.Supplier)
}

// Sin almacenes hermanos inyectados la resolución también degrada a nil.
func TestOrderRepo_SinHermanosDegradaANil(t *testing.T) {
	dir := t.TempDir()
	orders := csvstore.NewOrderRepository(
		filepath.Join(dir, "import_orders.csv"),
		filepath.Join(dir, "export_orders.csv"),
		filepath.Join(dir, "order_items.csv"),
	)
	writeOrderFile(t, filepath.Join(dir, "export_orders.csv"),
		"orderId,customerId,orderDate,totalAmount,status,deliveryAddress",
		[]string{"E1,C1,2026-02-01,100.0,PENDING,Calle 1"})

	require.NoError(t, orders.Load())
	o := orders.FindExportOrderByID("E1")
	require.NotNil(t, o)
	assert.Nil(t, o.Customer)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fases de carga y enganche de ítems
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas de ítems para E1 que aparecen después de la línea de la orden
// quedan ambas adjuntas al mismo objeto que devuelve FindExportOrderByID.
func TestOrderRepo_ItemsPosterioresSeAdjuntan(t *testing.T) {
	f := newOrderFixture(t)
	f.writeExports(t, "E1,C1,2026-02-01,100.0,PENDING,Calle 1")
	f.writeItems(t,
		"E1,P1,2,50.0",
		"E1,P2,1,30.0",
	)

	require.NoError(t, f.orders.Load())
	o := f.orders.FindExportOrderByID("E1")
	require.NotNil(t, o)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "P1", o.Items[0].Product.Info().ID)
	assert.Equal(t, "P2", o.Items[1].Product.Info().ID)
	assert.Equal(t, 2, o.Items[0].Quantity)
	assert.True(t, o.Items[0].UnitPrice.Equal(decimal.NewFromFloat(50.0)))
}

// Un ítem con productId inexistente se descarta por completo: baja el
// conteo de ítems de esa orden, sin abortar la carga.
func TestOrderRepo_ItemConProductoAusenteSeDescarta(t *testing.T) {
	f := newOrderFixture(t)
	f.writeExports(t, "E1,C1,2026-02-01,100.0,PENDING,Calle 1")
	f.writeItems(t,
		"E1,P1,2,50.0",
		"E1,P9,1,30.0",
	)

	require.NoError(t, f.orders.Load())
	o := f.orders.FindExportOrderByID("E1")
	require.NotNil(t, o)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "P1", o.Items[0].Product.Info().ID)
}

// Un ítem cuya orden no existe queda huérfano: registrado en el mapa
// derivado pero sin orden a la que adjuntarse.
func TestOrderRepo_ItemHuerfanoQuedaSoloEnElMapa(t *testing.T) {
	f := newOrderFixture(t)
	f.writeItems(t, "X9,P1,3,10.0")

	require.NoError(t, f.orders.Load())
	assert.Nil(t, f.orders.FindImportOrderByID("X9"))
	assert.Nil(t, f.orders.FindExportOrderByID("X9"))
	assert.Len(t, f.orders.ItemsForOrder("X9"), 1)
}

// Cada fase tolera su archivo ausente de forma independiente.
func TestOrderRepo_ArchivosInexistentes(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.orders.Load())
	assert.Equal(t, 0, f.orders.CountImportOrders())
	assert.Equal(t, 0, f.orders.CountExportOrders())
}

// Un estado desconocido aborta la carga de ese archivo.
func TestOrderRepo_EstadoInvalidoAbortaCarga(t *testing.T) {
	f := newOrderFixture(t)
	f.writeImports(t, "I1,S1,2026-01-10,500.0,SHIPPED,Bodega A")
	assert.Error(t, f.orders.Load())
}

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip por los tres archivos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderRepo_RoundTrip(t *testing.T) {
	f := newOrderFixture(t)

	importOrder := &entity.ImportOrder{
		ID:                "I1",
		Supplier:          f.suppliers.FindByID("S1"),
		OrderDate:         date("2026-01-10"),
		TotalAmount:       decimal.NewFromFloat(500.0),
		Status:            entity.StatusCompleted,
		WarehouseLocation: "Bodega A",
		Items: []entity.OrderItem{
			{Product: f.products.FindByID("P1"), Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
		},
	}
	exportOrder := &entity.ExportOrder{
		ID:              "E1",
		Customer:        f.customers.FindByID("C1"),
		OrderDate:       date("2026-02-01"),
		TotalAmount:     decimal.NewFromFloat(150.0),
		Status:          entity.StatusPending,
		DeliveryAddress: "Calle 1 #2-3",
		Items: []entity.OrderItem{
			{Product: f.products.FindByID("P2"), Quantity: 3, UnitPrice: decimal.NewFromInt(50)},
		},
	}
	f.orders.AddImportOrder(importOrder)
	f.orders.AddExportOrder(exportOrder)

	require.NoError(t, f.orders.Save())
	f.orders.Clear()
	require.Equal(t, 0, f.orders.CountImportOrders())

	require.NoError(t, f.orders.Load())

	gotImport := f.orders.FindImportOrderByID("I1")
	require.NotNil(t, gotImport)
	require.NotNil(t, gotImport.Supplier)
	assert.Equal(t, "S1", gotImport.Supplier.ID)
	assert.Equal(t, entity.StatusCompleted, gotImport.Status)
	assert.True(t, gotImport.TotalAmount.Equal(decimal.NewFromFloat(500.0)))
	require.Len(t, gotImport.Items, 1)
	assert.Equal(t, 5, gotImport.Items[0].Quantity)

	gotExport := f.orders.FindExportOrderByID("E1")
	require.NotNil(t, gotExport)
	require.NotNil(t, gotExport.Customer)
	assert.Equal(t, "Ana", gotExport.Customer.Name)
	require.Len(t, gotExport.Items, 1)
	assert.Equal(t, "P2", gotExport.Items[0].Product.Info().ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas, bajas y reportes
// ──────────────────────────────────────────────────────────────────────────────

// Una orden agregada sin ítems no registra entrada en el mapa derivado; los
// ítems adjuntados después del alta recién aparecen tras save + load.
func TestOrderRepo_AddSinItemsNoRegistraMapa(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.AddImportOrder(&entity.ImportOrder{
		ID:        "I1",
		OrderDate: date("2026-01-10"),
		Status:    entity.StatusPending,
	})
	assert.Len(t, f.orders.ItemsForOrder("I1"), 0)
}

func TestOrderRepo_DeleteInexistenteFalla(t *testing.T) {
	f := newOrderFixture(t)

	err := f.orders.DeleteImportOrder("I9")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	err = f.orders.DeleteExportOrder("E9")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepo_DeleteEliminaOrdenYMapa(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.AddImportOrder(&entity.ImportOrder{
		ID:        "I1",
		OrderDate: date("2026-01-10"),
		Status:    entity.StatusPending,
		Items: []entity.OrderItem{
			{Product: f.products.FindByID("P1"), Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.Len(t, f.orders.ItemsForOrder("I1"), 1)

	require.NoError(t, f.orders.DeleteImportOrder("I1"))
	assert.Equal(t, 0, f.orders.CountImportOrders())
	assert.Len(t, f.orders.ItemsForOrder("I1"), 0)
}

// El rango de fechas es inclusivo en ambos extremos.
func TestOrderRepo_RangoDeFechasInclusivo(t *testing.T) {
	f := newOrderFixture(t)
	for _, d := range []string{"2026-01-01", "2026-01-15", "2026-01-31", "2026-02-01"} {
		f.orders.AddImportOrder(&entity.ImportOrder{ID: "I-" + d, OrderDate: date(d), Status: entity.StatusPending})
	}

	got := f.orders.ImportOrdersByDateRange(date("2026-01-01"), date("2026-01-31"))
	require.Len(t, got, 3)
	assert.Equal(t, "I-2026-01-01", got[0].ID)
	assert.Equal(t, "I-2026-01-31", got[2].ID)
}

// Los totales suman solo órdenes COMPLETED.
func TestOrderRepo_TotalesSoloCompletadas(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.AddImportOrder(&entity.ImportOrder{ID: "I1", OrderDate: date("2026-01-10"), Status: entity.StatusCompleted, TotalAmount: decimal.NewFromInt(500)})
	f.orders.AddImportOrder(&entity.ImportOrder{ID: "I2", OrderDate: date("2026-01-11"), Status: entity.StatusPending, TotalAmount: decimal.NewFromInt(200)})
	f.orders.AddExportOrder(&entity.ExportOrder{ID: "E1", OrderDate: date("2026-01-12"), Status: entity.StatusCancelled, TotalAmount: decimal.NewFromInt(300)})

	assert.True(t, f.orders.TotalImportAmount().Equal(decimal.NewFromInt(500)))
	assert.True(t, f.orders.TotalExportAmount().Equal(decimal.Zero))
}

// FilePath devuelve las tres rutas unidas por comas.
func TestOrderRepo_FilePathUnido(t *testing.T) {
	orders := csvstore.NewOrderRepository("a.csv", "b.csv", "c.csv")
	assert.Equal(t, "a.csv,b.csv,c.csv", orders.FilePath())
}
