package entity

import "strings"

// Supplier representa un proveedor. ProductCategories es una lista libre de
// etiquetas separadas por ";" dentro del mismo campo (no se interpreta aquí).
type Supplier struct {
	ID                string
	Name              string
	Phone             string
	Email             string
	Address           string
	ProductCategories string
}

// ToCSV codifica el proveedor como una línea delimitada por comas.
func (s *Supplier) ToCSV() string {
	return strings.Join([]string{
		s.ID, s.Name, s.Phone, s.Email, s.Address, s.ProductCategories,
	}, ",")
}
