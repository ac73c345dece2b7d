package csvstore

import (
	"fmt"

	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
	"github.com/tu-usuario/trading-pro/pkg/textutil"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerHeader = "id,name,phone,email,address,type"

// customerMinFields mínimo de campos para aceptar una línea.
const customerMinFields = 6

// CustomerRepo almacén de clientes en memoria respaldado por un archivo.
//
// La colección conserva el orden de inserción; byID indexa la primera
// posición de cada id para reemplazo directo en Update. Los ids duplicados
// son legales: el índice registra solo la primera aparición, así FindByID
// mantiene la semántica de "primera coincidencia".
type CustomerRepo struct {
	filePath  string
	customers []*entity.Customer
	byID      map[string]int
}

// NewCustomerRepository construye el almacén ligado a una ruta fija, con la
// colección vacía. El archivo no se lee hasta Load.
func NewCustomerRepository(filePath string) *CustomerRepo {
	return &CustomerRepo{
		filePath: filePath,
		byID:     make(map[string]int),
	}
}

// Save serializa la colección completa al archivo, truncando el contenido previo.
func (r *CustomerRepo) Save() error {
	rows := make([]string, 0, len(r.customers))
	for _, c := range r.customers {
		rows = append(rows, c.ToCSV())
	}
	return writeLines(r.filePath, customerHeader, rows)
}

// Load reemplaza la colección con el contenido del archivo. Las líneas con
// menos campos de los requeridos se descartan; un tipo de cliente
// desconocido aborta la carga completa.
func (r *CustomerRepo) Load() error {
	r.Clear()

	lines, err := readDataLines(r.filePath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < customerMinFields {
			continue
		}
		ctype, err := entity.ParseCustomerType(parts[5])
		if err != nil {
			return fmt.Errorf("cargar clientes: %w", err)
		}
		r.Add(&entity.Customer{
			ID:      parts[0],
			Name:    parts[1],
			Phone:   parts[2],
			Email:   parts[3],
			Address: parts[4],
			Type:    ctype,
		})
	}
	return nil
}

// Clear vacía la colección en memoria; no toca el archivo.
func (r *CustomerRepo) Clear() {
	r.customers = nil
	r.byID = make(map[string]int)
}

// FilePath devuelve la ruta del archivo de clientes.
func (r *CustomerRepo) FilePath() string { return r.filePath }

// Add agrega al final sin validar unicidad del id.
func (r *CustomerRepo) Add(customer *entity.Customer) {
	r.customers = append(r.customers, customer)
	if _, ok := r.byID[customer.ID]; !ok {
		r.byID[customer.ID] = len(r.customers) - 1
	}
}

// Update reemplaza en su posición al cliente con el mismo id; si el id no
// existe, no hace nada.
func (r *CustomerRepo) Update(customer *entity.Customer) {
	if idx, ok := r.byID[customer.ID]; ok {
		r.customers[idx] = customer
	}
}

// Delete elimina la primera aparición del id; si no existe, no hace nada.
func (r *CustomerRepo) Delete(id string) {
	idx, ok := r.byID[id]
	if !ok {
		return
	}
	r.customers = append(r.customers[:idx], r.customers[idx+1:]...)
	r.reindex()
}

func (r *CustomerRepo) reindex() {
	r.byID = make(map[string]int, len(r.customers))
	for i, c := range r.customers {
		if _, ok := r.byID[c.ID]; !ok {
			r.byID[c.ID] = i
		}
	}
}

// Count devuelve el tamaño de la colección.
func (r *CustomerRepo) Count() int { return len(r.customers) }

// FindByID devuelve la primera coincidencia o nil.
func (r *CustomerRepo) FindByID(id string) *entity.Customer {
	if idx, ok := r.byID[id]; ok {
		return r.customers[idx]
	}
	return nil
}

// FindByName busca por subcadena del nombre, sin mayúsculas ni tildes.
func (r *CustomerRepo) FindByName(name string) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range r.customers {
		if textutil.ContainsFold(c.Name, name) {
			out = append(out, c)
		}
	}
	return out
}

// FindAll devuelve una copia defensiva en orden de inserción.
func (r *CustomerRepo) FindAll() []*entity.Customer {
	out := make([]*entity.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}

// Search busca la subcadena en nombre, teléfono y email.
func (r *CustomerRepo) Search(criteria string) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range r.customers {
		if textutil.ContainsFold(c.Name, criteria) ||
			textutil.ContainsFold(c.Phone, criteria) ||
			textutil.ContainsFold(c.Email, criteria) {
			out = append(out, c)
		}
	}
	return out
}

// FindByType filtra por categoría comercial, conservando el orden.
func (r *CustomerRepo) FindByType(t entity.CustomerType) []*entity.Customer {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
