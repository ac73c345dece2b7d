package dto

// CustomerRequest alta o reemplazo completo de un cliente. ID es opcional en
// el alta (se genera uno si falta).
type CustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Type    string `json:"type"` // REGULAR | VIP | WHOLESALE
}

// CustomerResponse representación de salida de un cliente.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// CustomerListResponse listado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
