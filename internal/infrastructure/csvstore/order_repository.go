package csvstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const (
	importOrderHeader = "orderId,supplierId,orderDate,totalAmount,status,warehouseLocation"
	exportOrderHeader = "orderId,customerId,orderDate,totalAmount,status,deliveryAddress"
	orderItemHeader   = "orderId,productId,quantity,unitPrice"

	orderMinFields = 6
	itemMinFields  = 4
)

// OrderRepo almacén de órdenes de importación y exportación sobre tres
// archivos. orderItems es una estructura derivada (orderID → ítems) que se
// recalcula por completo en cada Load; la pertenencia autoritativa es la
// lista embebida en cada orden.
type OrderRepo struct {
	importPath string
	exportPath string
	itemsPath  string

	importOrders []*entity.ImportOrder
	exportOrders []*entity.ExportOrder
	orderItems   map[string][]entity.OrderItem

	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewOrderRepository construye el almacén ligado a sus tres rutas fijas.
// Los almacenes hermanos se inyectan con los Set* antes de Load.
func NewOrderRepository(importPath, exportPath, itemsPath string) *OrderRepo {
	return &OrderRepo{
		importPath: importPath,
		exportPath: exportPath,
		itemsPath:  itemsPath,
		orderItems: make(map[string][]entity.OrderItem),
	}
}

// SetCustomerRepository inyecta el almacén de clientes para resolver las
// referencias de las órdenes de exportación.
func (r *OrderRepo) SetCustomerRepository(repo repository.CustomerRepository) {
	r.customers = repo
}

// SetSupplierRepository inyecta el almacén de proveedores para resolver las
// referencias de las órdenes de importación.
func (r *OrderRepo) SetSupplierRepository(repo repository.SupplierRepository) {
	r.suppliers = repo
}

// SetProductRepository inyecta el catálogo para resolver los productos de
// los ítems.
func (r *OrderRepo) SetProductRepository(repo repository.ProductRepository) {
	r.products = repo
}

// Save escribe los tres archivos de forma independiente, sin atomicidad
// entre ellos: un fallo a mitad de camino puede dejarlos mutuamente
// inconsistentes (limitación conocida, no se intenta transaccionar).
func (r *OrderRepo) Save() error {
	if err := r.saveImportOrders(); err != nil {
		return err
	}
	if err := r.saveExportOrders(); err != nil {
		return err
	}
	return r.saveOrderItems()
}

func (r *OrderRepo) saveImportOrders() error {
	rows := make([]string, 0, len(r.importOrders))
	for _, o := range r.importOrders {
		rows = append(rows, o.ToCSV())
	}
	return writeLines(r.importPath, importOrderHeader, rows)
}

func (r *OrderRepo) saveExportOrders() error {
	rows := make([]string, 0, len(r.exportOrders))
	for _, o := range r.exportOrders {
		rows = append(rows, o.ToCSV())
	}
	return writeLines(r.exportPath, exportOrderHeader, rows)
}

func (r *OrderRepo) saveOrderItems() error {
	ids := make([]string, 0, len(r.orderItems))
	for id := range r.orderItems {
		ids = append(ids, id)
	}
	sort.Strings(ids) // salida estable

	var rows []string
	for _, id := range ids {
		for _, item := range r.orderItems[id] {
			rows = append(rows, item.ToCSV(id))
		}
	}
	return writeLines(r.itemsPath, orderItemHeader, rows)
}

// Load procede en tres fases estrictas: primero las órdenes de importación,
// luego las de exportación y por último los ítems. El orden importa: el
// enganche de ítems busca la orden por id, así que las órdenes deben estar
// ya cargadas. Los almacenes hermanos deben haberse cargado antes (lo hace
// el llamador), porque la resolución ocurre en línea durante el parseo.
// Cada fase tolera su archivo ausente de forma independiente.
func (r *OrderRepo) Load() error {
	if err := r.loadImportOrders(); err != nil {
		return err
	}
	if err := r.loadExportOrders(); err != nil {
		return err
	}
	return r.loadOrderItems()
}

func (r *OrderRepo) loadImportOrders() error {
	r.importOrders = nil

	lines, err := readDataLines(r.importPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < orderMinFields {
			continue
		}
		orderDate, totalAmount, status, err := decodeOrderCommon(parts)
		if err != nil {
			return fmt.Errorf("cargar órdenes de importación: %w", err)
		}

		// Proveedor ausente (o almacén sin inyectar) → referencia nil,
		// la orden se crea igual.
		var supplier *entity.Supplier
		if r.suppliers != nil {
			supplier = r.suppliers.FindByID(parts[1])
		}

		r.importOrders = append(r.importOrders, &entity.ImportOrder{
			ID:                parts[0],
			Supplier:          supplier,
			OrderDate:         orderDate,
			TotalAmount:       totalAmount,
			Status:            status,
			WarehouseLocation: parts[5],
		})
	}
	return nil
}

func (r *OrderRepo) loadExportOrders() error {
	r.exportOrders = nil

	lines, err := readDataLines(r.exportPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < orderMinFields {
			continue
		}
		orderDate, totalAmount, status, err := decodeOrderCommon(parts)
		if err != nil {
			return fmt.Errorf("cargar órdenes de exportación: %w", err)
		}

		var customer *entity.Customer
		if r.customers != nil {
			customer = r.customers.FindByID(parts[1])
		}

		r.exportOrders = append(r.exportOrders, &entity.ExportOrder{
			ID:              parts[0],
			Customer:        customer,
			OrderDate:       orderDate,
			TotalAmount:     totalAmount,
			Status:          status,
			DeliveryAddress: parts[5],
		})
	}
	return nil
}

// decodeOrderCommon parsea los campos compartidos por ambos tipos de orden
// (posiciones 2, 3 y 4).
func decodeOrderCommon(parts []string) (time.Time, decimal.Decimal, entity.OrderStatus, error) {
	orderDate, err := time.Parse(entity.DateLayout, parts[2])
	if err != nil {
		return time.Time{}, decimal.Decimal{}, "", fmt.Errorf("orderDate %q: %w", parts[2], err)
	}
	totalAmount, err := decimal.NewFromString(parts[3])
	if err != nil {
		return time.Time{}, decimal.Decimal{}, "", fmt.Errorf("totalAmount %q: %w", parts[3], err)
	}
	status, err := entity.ParseOrderStatus(parts[4])
	if err != nil {
		return time.Time{}, decimal.Decimal{}, "", err
	}
	return orderDate, totalAmount, status, nil
}

func (r *OrderRepo) loadOrderItems() error {
	r.orderItems = make(map[string][]entity.OrderItem)

	lines, err := readDataLines(r.itemsPath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < itemMinFields {
			continue
		}
		orderID := parts[0]
		quantity, err := parseInt(parts[2], "quantity")
		if err != nil {
			return fmt.Errorf("cargar ítems: %w", err)
		}
		unitPrice, err := decimal.NewFromString(parts[3])
		if err != nil {
			return fmt.Errorf("cargar ítems: unitPrice %q: %w", parts[3], err)
		}

		// Producto ausente → el ítem se descarta por completo.
		var product entity.Product
		if r.products != nil {
			product = r.products.FindByID(parts[1])
		}
		if product == nil {
			continue
		}

		r.orderItems[orderID] = append(r.orderItems[orderID], entity.OrderItem{
			Product:   product,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})

		// Reengancha la lista actualizada a la orden correspondiente; así
		// los ítems que aparecen después de la línea de su orden también
		// quedan adjuntos. Si ninguna orden coincide, el ítem queda
		// huérfano en el mapa (no se reintenta).
		if o := r.FindImportOrderByID(orderID); o != nil {
			o.Items = r.orderItems[orderID]
		}
		if o := r.FindExportOrderByID(orderID); o != nil {
			o.Items = r.orderItems[orderID]
		}
	}
	return nil
}

// Clear vacía las tres colecciones en memoria; no toca los archivos.
func (r *OrderRepo) Clear() {
	r.importOrders = nil
	r.exportOrders = nil
	r.orderItems = make(map[string][]entity.OrderItem)
}

// FilePath devuelve las tres rutas unidas por comas.
func (r *OrderRepo) FilePath() string {
	return r.importPath + fieldSep + r.exportPath + fieldSep + r.itemsPath
}

// AddImportOrder agrega la orden; sus ítems se registran en el mapa derivado
// solo si la lista es no vacía en este momento.
func (r *OrderRepo) AddImportOrder(order *entity.ImportOrder) {
	r.importOrders = append(r.importOrders, order)
	if len(order.Items) > 0 {
		r.orderItems[order.ID] = order.Items
	}
}

// AddExportOrder agrega la orden; misma regla de registro de ítems.
func (r *OrderRepo) AddExportOrder(order *entity.ExportOrder) {
	r.exportOrders = append(r.exportOrders, order)
	if len(order.Items) > 0 {
		r.orderItems[order.ID] = order.Items
	}
}

// DeleteImportOrder elimina la orden y su entrada de ítems; falla con
// domain.ErrOrderNotFound si el id no existe.
func (r *OrderRepo) DeleteImportOrder(id string) error {
	for i, o := range r.importOrders {
		if o.ID == id {
			r.importOrders = append(r.importOrders[:i], r.importOrders[i+1:]...)
			delete(r.orderItems, id)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s (importación)", domain.ErrOrderNotFound, id)
}

// DeleteExportOrder elimina la orden y su entrada de ítems; falla con
// domain.ErrOrderNotFound si el id no existe.
func (r *OrderRepo) DeleteExportOrder(id string) error {
	for i, o := range r.exportOrders {
		if o.ID == id {
			r.exportOrders = append(r.exportOrders[:i], r.exportOrders[i+1:]...)
			delete(r.orderItems, id)
			return nil
		}
	}
	return fmt.Errorf("%w: id %s (exportación)", domain.ErrOrderNotFound, id)
}

// FindImportOrderByID barrido lineal; primera coincidencia o nil.
func (r *OrderRepo) FindImportOrderByID(id string) *entity.ImportOrder {
	for _, o := range r.importOrders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindExportOrderByID barrido lineal; primera coincidencia o nil.
func (r *OrderRepo) FindExportOrderByID(id string) *entity.ExportOrder {
	for _, o := range r.exportOrders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// FindAllImportOrders devuelve una copia defensiva en orden de inserción.
func (r *OrderRepo) FindAllImportOrders() []*entity.ImportOrder {
	out := make([]*entity.ImportOrder, len(r.importOrders))
	copy(out, r.importOrders)
	return out
}

// FindAllExportOrders devuelve una copia defensiva en orden de inserción.
func (r *OrderRepo) FindAllExportOrders() []*entity.ExportOrder {
	out := make([]*entity.ExportOrder, len(r.exportOrders))
	copy(out, r.exportOrders)
	return out
}

// CountImportOrders devuelve el número de órdenes de importación.
func (r *OrderRepo) CountImportOrders() int { return len(r.importOrders) }

// CountExportOrders devuelve el número de órdenes de exportación.
func (r *OrderRepo) CountExportOrders() int { return len(r.exportOrders) }

// ItemsForOrder devuelve los ítems registrados para la orden, incluidos los
// huérfanos cuya orden nunca se cargó.
func (r *OrderRepo) ItemsForOrder(orderID string) []entity.OrderItem {
	return r.orderItems[orderID]
}

// ImportOrdersByDateRange filtra con ambos extremos inclusivos.
func (r *OrderRepo) ImportOrdersByDateRange(from, to time.Time) []*entity.ImportOrder {
	var out []*entity.ImportOrder
	for _, o := range r.importOrders {
		if !o.OrderDate.Before(from) && !o.OrderDate.After(to) {
			out = append(out, o)
		}
	}
	return out
}

// ExportOrdersByDateRange filtra con ambos extremos inclusivos.
func (r *OrderRepo) ExportOrdersByDateRange(from, to time.Time) []*entity.ExportOrder {
	var out []*entity.ExportOrder
	for _, o := range r.exportOrders {
		if !o.OrderDate.Before(from) && !o.OrderDate.After(to) {
			out = append(out, o)
		}
	}
	return out
}

// TotalImportAmount suma totalAmount de las órdenes COMPLETED únicamente.
func (r *OrderRepo) TotalImportAmount() decimal.Decimal {
	total := decimal.Zero
	for _, o := range r.importOrders {
		if o.Status == entity.StatusCompleted {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}

// TotalExportAmount suma totalAmount de las órdenes COMPLETED únicamente.
func (r *OrderRepo) TotalExportAmount() decimal.Decimal {
	total := decimal.Zero
	for _, o := range r.exportOrders {
		if o.Status == entity.StatusCompleted {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}
