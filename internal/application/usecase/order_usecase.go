package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trading-pro/internal/application/dto"
	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de importación y exportación. Los
// almacenes hermanos se usan aquí para resolver referencias en el alta; al
// cargar, la resolución la hace el propio OrderRepository.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		customers: customers,
		suppliers: suppliers,
		products:  products,
	}
}

// CreateImport agrega una orden de importación. El proveedor puede no
// existir (referencia nil, como al cargar); un producto inexistente en los
// ítems sí es un error de entrada.
func (uc *OrderUseCase) CreateImport(in dto.ImportOrderRequest) (*dto.ImportOrderResponse, error) {
	orderDate, status, err := parseOrderCommon(in.OrderDate, in.Status)
	if err != nil {
		return nil, err
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	order := &entity.ImportOrder{
		ID:                in.ID,
		Supplier:          uc.suppliers.FindByID(in.SupplierID),
		OrderDate:         orderDate,
		TotalAmount:       orderTotal(in.TotalAmount, items),
		Status:            status,
		WarehouseLocation: in.WarehouseLocation,
		Items:             items,
	}
	uc.orders.AddImportOrder(order)
	if err := uc.orders.Save(); err != nil {
		return nil, err
	}
	return toImportOrderResponse(order), nil
}

// CreateExport agrega una orden de exportación.
func (uc *OrderUseCase) CreateExport(in dto.ExportOrderRequest) (*dto.ExportOrderResponse, error) {
	orderDate, status, err := parseOrderCommon(in.OrderDate, in.Status)
	if err != nil {
		return nil, err
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	order := &entity.ExportOrder{
		ID:              in.ID,
		Customer:        uc.customers.FindByID(in.CustomerID),
		OrderDate:       orderDate,
		TotalAmount:     orderTotal(in.TotalAmount, items),
		Status:          status,
		DeliveryAddress: in.DeliveryAddress,
		Items:           items,
	}
	uc.orders.AddExportOrder(order)
	if err := uc.orders.Save(); err != nil {
		return nil, err
	}
	return toExportOrderResponse(order), nil
}

// GetImportByID devuelve la orden o nil.
func (uc *OrderUseCase) GetImportByID(id string) *dto.ImportOrderResponse {
	return toImportOrderResponse(uc.orders.FindImportOrderByID(id))
}

// GetExportByID devuelve la orden o nil.
func (uc *OrderUseCase) GetExportByID(id string) *dto.ExportOrderResponse {
	return toExportOrderResponse(uc.orders.FindExportOrderByID(id))
}

// DeleteImport propaga domain.ErrOrderNotFound si el id no existe.
func (uc *OrderUseCase) DeleteImport(id string) error {
	if err := uc.orders.DeleteImportOrder(id); err != nil {
		return err
	}
	return uc.orders.Save()
}

// DeleteExport propaga domain.ErrOrderNotFound si el id no existe.
func (uc *OrderUseCase) DeleteExport(id string) error {
	if err := uc.orders.DeleteExportOrder(id); err != nil {
		return err
	}
	return uc.orders.Save()
}

// ListImports devuelve todas las órdenes de importación; con from/to no
// vacíos filtra por rango de fechas inclusivo.
func (uc *OrderUseCase) ListImports(from, to string) (*dto.ImportOrderListResponse, error) {
	var orders []*entity.ImportOrder
	if from == "" && to == "" {
		orders = uc.orders.FindAllImportOrders()
	} else {
		fromDate, toDate, err := parseDateRange(from, to)
		if err != nil {
			return nil, err
		}
		orders = uc.orders.ImportOrdersByDateRange(fromDate, toDate)
	}
	items := make([]dto.ImportOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toImportOrderResponse(o))
	}
	return &dto.ImportOrderListResponse{Items: items, Total: len(items)}, nil
}

// ListExports análogo a ListImports para exportaciones.
func (uc *OrderUseCase) ListExports(from, to string) (*dto.ExportOrderListResponse, error) {
	var orders []*entity.ExportOrder
	if from == "" && to == "" {
		orders = uc.orders.FindAllExportOrders()
	} else {
		fromDate, toDate, err := parseDateRange(from, to)
		if err != nil {
			return nil, err
		}
		orders = uc.orders.ExportOrdersByDateRange(fromDate, toDate)
	}
	items := make([]dto.ExportOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toExportOrderResponse(o))
	}
	return &dto.ExportOrderListResponse{Items: items, Total: len(items)}, nil
}

// Totals montos acumulados de órdenes COMPLETED.
func (uc *OrderUseCase) Totals() *dto.OrderTotalsResponse {
	return &dto.OrderTotalsResponse{
		TotalImportAmount: uc.orders.TotalImportAmount(),
		TotalExportAmount: uc.orders.TotalExportAmount(),
	}
}

func (uc *OrderUseCase) buildItems(in []dto.OrderItemRequest) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		product := uc.products.FindByID(it.ProductID)
		if product == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrInvalidInput, it.ProductID)
		}
		items = append(items, entity.OrderItem{
			Product:   product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return items, nil
}

func parseOrderCommon(date, status string) (time.Time, entity.OrderStatus, error) {
	orderDate, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: order_date %q", domain.ErrInvalidInput, date)
	}
	st, err := entity.ParseOrderStatus(status)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return orderDate, st, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q", domain.ErrInvalidInput, from)
	}
	toDate, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q", domain.ErrInvalidInput, to)
	}
	return fromDate, toDate, nil
}

// orderTotal usa el monto del request o, si viene en cero, la suma de
// cantidad × precio unitario.
func orderTotal(total decimal.Decimal, items []entity.OrderItem) decimal.Decimal {
	if !total.IsZero() {
		return total
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

func toOrderItemResponses(items []entity.OrderItem) []dto.OrderItemResponse {
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			ProductID:   it.Product.Info().ID,
			ProductName: it.Product.Info().Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return out
}

func toImportOrderResponse(o *entity.ImportOrder) *dto.ImportOrderResponse {
	if o == nil {
		return nil
	}
	out := &dto.ImportOrderResponse{
		ID:                o.ID,
		OrderDate:         o.OrderDate.Format(entity.DateLayout),
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		WarehouseLocation: o.WarehouseLocation,
		Items:             toOrderItemResponses(o.Items),
	}
	if o.Supplier != nil {
		out.SupplierID = o.Supplier.ID
		out.SupplierName = o.Supplier.Name
	}
	return out
}

func toExportOrderResponse(o *entity.ExportOrder) *dto.ExportOrderResponse {
	if o == nil {
		return nil
	}
	out := &dto.ExportOrderResponse{
		ID:              o.ID,
		OrderDate:       o.OrderDate.Format(entity.DateLayout),
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		Items:           toOrderItemResponses(o.Items),
	}
	if o.Customer != nil {
		out.CustomerID = o.Customer.ID
		out.CustomerName = o.Customer.Name
	}
	return out
}
