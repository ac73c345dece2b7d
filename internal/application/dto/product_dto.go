package dto

import "github.com/shopspring/decimal"

// ProductRequest alta o reemplazo completo de un producto. ProductType
// selecciona la variante; solo se leen los campos extra de esa variante.
type ProductRequest struct {
	ID            string          `json:"id"`
	ProductType   string          `json:"product_type"` // ELECTRONICS | CLOTHING | FOOD | FURNITURE
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	ImportPrice   decimal.Decimal `json:"import_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`

	// Campos por variante.
	WarrantyMonths int     `json:"warranty_months,omitempty"` // ELECTRONICS
	Size           string  `json:"size,omitempty"`            // CLOTHING
	Material       string  `json:"material,omitempty"`        // CLOTHING
	ExpiryDate     string  `json:"expiry_date,omitempty"`     // FOOD (YYYY-MM-DD)
	Dimensions     string  `json:"dimensions,omitempty"`      // FURNITURE
	Weight         float64 `json:"weight,omitempty"`          // FURNITURE
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	ProductType   string          `json:"product_type"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	ImportPrice   decimal.Decimal `json:"import_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`

	WarrantyMonths int     `json:"warranty_months,omitempty"`
	Size           string  `json:"size,omitempty"`
	Material       string  `json:"material,omitempty"`
	ExpiryDate     string  `json:"expiry_date,omitempty"`
	Dimensions     string  `json:"dimensions,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
