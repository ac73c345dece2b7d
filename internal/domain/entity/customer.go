package entity

import (
	"fmt"
	"strings"
)

// CustomerType categoría comercial del cliente.
type CustomerType string

const (
	CustomerRegular   CustomerType = "REGULAR"
	CustomerVIP       CustomerType = "VIP"
	CustomerWholesale CustomerType = "WHOLESALE"
)

// ParseCustomerType interpreta el literal persistido. La comparación es
// exacta (sensible a mayúsculas): un valor desconocido es un error de decodificación.
func ParseCustomerType(s string) (CustomerType, error) {
	switch t := CustomerType(s); t {
	case CustomerRegular, CustomerVIP, CustomerWholesale:
		return t, nil
	default:
		return "", fmt.Errorf("tipo de cliente desconocido: %q", s)
	}
}

// Customer representa un cliente de la aplicación de comercio.
type Customer struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Address string
	Type    CustomerType
}

// ToCSV codifica el cliente como una línea delimitada por comas,
// en el orden de columnas del archivo de clientes.
func (c *Customer) ToCSV() string {
	return strings.Join([]string{
		c.ID, c.Name, c.Phone, c.Email, c.Address, string(c.Type),
	}, ",")
}
