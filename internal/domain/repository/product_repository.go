package repository

import "github.com/tu-usuario/trading-pro/internal/domain/entity"

// ProductRepository puerto del catálogo de productos.
//
// A diferencia de clientes y proveedores, Update y Delete fallan con
// domain.ErrProductNotFound cuando el id no existe.
type ProductRepository interface {
	Persistable
	Add(product entity.Product)
	Update(product entity.Product) error
	Delete(id string) error
	Count() int

	FindByID(id string) entity.Product
	FindByName(name string) []entity.Product
	FindAll() []entity.Product
	// Search busca la subcadena en nombre, categoría e id.
	Search(criteria string) []entity.Product

	FindByType(t entity.ProductType) []entity.Product
	// LowStock devuelve los productos con stock estrictamente menor al umbral.
	LowStock(threshold int) []entity.Product
}
