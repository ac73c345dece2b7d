package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
)

// OrderRepository puerto del almacén de órdenes de importación y exportación.
//
// Mantiene dos colecciones ordenadas independientes más una estructura
// derivada orderID → ítems, recalculada por completo en cada Load. Los
// almacenes hermanos se inyectan con los Set* antes de Load si se desea
// resolver claves foráneas; sin ellos la resolución degrada a referencia nil
// en lugar de fallar.
//
// Save escribe tres archivos sin atomicidad entre ellos: un fallo a mitad de
// camino puede dejarlos mutuamente inconsistentes (limitación conocida y
// documentada, no un bug).
type OrderRepository interface {
	Persistable
	SetCustomerRepository(repo CustomerRepository)
	SetSupplierRepository(repo SupplierRepository)
	SetProductRepository(repo ProductRepository)

	// AddImportOrder/AddExportOrder registran los ítems de la orden en el
	// mapa derivado solo si la lista es no vacía en el momento del alta.
	AddImportOrder(order *entity.ImportOrder)
	AddExportOrder(order *entity.ExportOrder)
	// DeleteImportOrder/DeleteExportOrder fallan con domain.ErrOrderNotFound
	// si el id no existe; si existe, eliminan la orden y su entrada de ítems.
	DeleteImportOrder(id string) error
	DeleteExportOrder(id string) error

	FindImportOrderByID(id string) *entity.ImportOrder
	FindExportOrderByID(id string) *entity.ExportOrder
	FindAllImportOrders() []*entity.ImportOrder
	FindAllExportOrders() []*entity.ExportOrder
	CountImportOrders() int
	CountExportOrders() int

	// ItemsForOrder devuelve los ítems registrados para la orden (incluye
	// ítems huérfanos cuya orden no se cargó).
	ItemsForOrder(orderID string) []entity.OrderItem

	// Rangos inclusivos en ambos extremos.
	ImportOrdersByDateRange(from, to time.Time) []*entity.ImportOrder
	ExportOrdersByDateRange(from, to time.Time) []*entity.ExportOrder
	// Totales solo sobre órdenes con estado COMPLETED.
	TotalImportAmount() decimal.Decimal
	TotalExportAmount() decimal.Decimal
}
