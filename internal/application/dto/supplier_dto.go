package dto

// SupplierRequest alta o reemplazo completo de un proveedor.
type SupplierRequest struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	ProductCategories string `json:"product_categories"`
}

// SupplierResponse representación de salida de un proveedor.
type SupplierResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	ProductCategories string `json:"product_categories"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
