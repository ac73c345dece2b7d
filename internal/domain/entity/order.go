package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato ISO de fecha calendario usado en todos los archivos.
const DateLayout = "2006-01-02"

// OrderStatus estado de una orden de importación o exportación.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus interpreta el literal persistido (comparación exacta).
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case StatusPending, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("estado de orden desconocido: %q", s)
	}
}

// OrderItem línea de una orden: producto, cantidad y precio unitario.
// No es dueño del producto: comparte la referencia con el catálogo.
type OrderItem struct {
	Product   Product
	Quantity  int
	UnitPrice decimal.Decimal
}

// ToCSV codifica el ítem para el archivo de ítems; el orderID se pasa porque
// el ítem no lo conoce (la pertenencia vive en la orden).
func (i OrderItem) ToCSV(orderID string) string {
	return strings.Join([]string{
		orderID,
		i.Product.Info().ID,
		fmt.Sprintf("%d", i.Quantity),
		i.UnitPrice.String(),
	}, ",")
}

// ImportOrder orden de compra a un proveedor. Supplier puede ser nil si la
// referencia no se pudo resolver al cargar.
type ImportOrder struct {
	ID                string
	Supplier          *Supplier
	OrderDate         time.Time
	TotalAmount       decimal.Decimal
	Status            OrderStatus
	WarehouseLocation string
	Items             []OrderItem
}

// ToCSV codifica la orden de importación. Un proveedor ausente se persiste
// como supplierId vacío.
func (o *ImportOrder) ToCSV() string {
	supplierID := ""
	if o.Supplier != nil {
		supplierID = o.Supplier.ID
	}
	return strings.Join([]string{
		o.ID, supplierID,
		o.OrderDate.Format(DateLayout),
		o.TotalAmount.String(),
		string(o.Status),
		o.WarehouseLocation,
	}, ",")
}

// ExportOrder orden de venta a un cliente. Customer puede ser nil si la
// referencia no se pudo resolver al cargar.
type ExportOrder struct {
	ID              string
	Customer        *Customer
	OrderDate       time.Time
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	DeliveryAddress string
	Items           []OrderItem
}

// ToCSV codifica la orden de exportación. Un cliente ausente se persiste
// como customerId vacío.
func (o *ExportOrder) ToCSV() string {
	customerID := ""
	if o.Customer != nil {
		customerID = o.Customer.ID
	}
	return strings.Join([]string{
		o.ID, customerID,
		o.OrderDate.Format(DateLayout),
		o.TotalAmount.String(),
		string(o.Status),
		o.DeliveryAddress,
	}, ",")
}
