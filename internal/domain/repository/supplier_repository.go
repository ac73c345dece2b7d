package repository

import "github.com/tu-usuario/trading-pro/internal/domain/entity"

// SupplierRepository puerto del almacén de proveedores. Misma permisividad
// que CustomerRepository: Update/Delete sobre id inexistente no hacen nada.
type SupplierRepository interface {
	Persistable
	Add(supplier *entity.Supplier)
	Update(supplier *entity.Supplier)
	Delete(id string)
	Count() int

	FindByID(id string) *entity.Supplier
	FindByName(name string) []*entity.Supplier
	FindAll() []*entity.Supplier
	// Search busca la subcadena en nombre, teléfono y categorías de producto.
	Search(criteria string) []*entity.Supplier
}
