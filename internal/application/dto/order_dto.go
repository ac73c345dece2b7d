package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea de una orden en el alta.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ImportOrderRequest alta de una orden de importación. Si TotalAmount es
// cero se calcula como la suma de cantidad × precio unitario de los ítems.
type ImportOrderRequest struct {
	ID                string             `json:"id"`
	SupplierID        string             `json:"supplier_id"`
	OrderDate         string             `json:"order_date"` // YYYY-MM-DD
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	Status            string             `json:"status"` // PENDING | COMPLETED | CANCELLED
	WarehouseLocation string             `json:"warehouse_location"`
	Items             []OrderItemRequest `json:"items"`
}

// ExportOrderRequest alta de una orden de exportación.
type ExportOrderRequest struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id"`
	OrderDate       string             `json:"order_date"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Status          string             `json:"status"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemResponse línea de una orden en la salida.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ImportOrderResponse representación de salida de una orden de importación.
// SupplierID queda vacío si la referencia no se resolvió al cargar.
type ImportOrderResponse struct {
	ID                string              `json:"id"`
	SupplierID        string              `json:"supplier_id,omitempty"`
	SupplierName      string              `json:"supplier_name,omitempty"`
	OrderDate         string              `json:"order_date"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	Status            string              `json:"status"`
	WarehouseLocation string              `json:"warehouse_location"`
	Items             []OrderItemResponse `json:"items"`
}

// ExportOrderResponse representación de salida de una orden de exportación.
type ExportOrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id,omitempty"`
	CustomerName    string              `json:"customer_name,omitempty"`
	OrderDate       string              `json:"order_date"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	DeliveryAddress string              `json:"delivery_address"`
	Items           []OrderItemResponse `json:"items"`
}

// ImportOrderListResponse listado de órdenes de importación.
type ImportOrderListResponse struct {
	Items []ImportOrderResponse `json:"items"`
	Total int                   `json:"total"`
}

// ExportOrderListResponse listado de órdenes de exportación.
type ExportOrderListResponse struct {
	Items []ExportOrderResponse `json:"items"`
	Total int                   `json:"total"`
}

// OrderTotalsResponse montos acumulados de órdenes COMPLETED.
type OrderTotalsResponse struct {
	TotalImportAmount decimal.Decimal `json:"total_import_amount"`
	TotalExportAmount decimal.Decimal `json:"total_export_amount"`
}
