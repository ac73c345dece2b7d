package repository

import "github.com/tu-usuario/trading-pro/internal/domain/entity"

// CustomerRepository puerto del almacén de clientes.
//
// Update y Delete sobre un id inexistente no hacen nada (sin error): esta
// permisividad es parte del contrato observable, en contraste deliberado con
// ProductRepository.
type CustomerRepository interface {
	Persistable
	Add(customer *entity.Customer)
	Update(customer *entity.Customer)
	Delete(id string)
	Count() int

	// FindByID devuelve la primera entidad con ese id, o nil.
	FindByID(id string) *entity.Customer
	// FindByName busca por subcadena del nombre, sin distinguir mayúsculas.
	FindByName(name string) []*entity.Customer
	// FindAll devuelve una copia defensiva de la colección completa.
	FindAll() []*entity.Customer
	// Search busca la subcadena en nombre, teléfono y email.
	Search(criteria string) []*entity.Customer
	FindByType(t entity.CustomerType) []*entity.Customer
}
