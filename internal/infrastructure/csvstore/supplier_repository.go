package csvstore

import (
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
	"github.com/tu-usuario/trading-pro/pkg/textutil"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierHeader = "id,name,phone,email,address,productCategories"

const supplierMinFields = 6

// SupplierRepo almacén de proveedores en memoria respaldado por un archivo.
// Mismas reglas de indexación y duplicados que CustomerRepo.
type SupplierRepo struct {
	filePath  string
	suppliers []*entity.Supplier
	byID      map[string]int
}

// NewSupplierRepository construye el almacén ligado a una ruta fija.
func NewSupplierRepository(filePath string) *SupplierRepo {
	return &SupplierRepo{
		filePath: filePath,
		byID:     make(map[string]int),
	}
}

// Save serializa la colección completa al archivo.
func (r *SupplierRepo) Save() error {
	rows := make([]string, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		rows = append(rows, s.ToCSV())
	}
	return writeLines(r.filePath, supplierHeader, rows)
}

// Load reemplaza la colección con el contenido del archivo. El proveedor no
// tiene campos numéricos ni enumerados, así que solo se descartan líneas cortas.
func (r *SupplierRepo) Load() error {
	r.Clear()

	lines, err := readDataLines(r.filePath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < supplierMinFields {
			continue
		}
		r.Add(&entity.Supplier{
			ID:                parts[0],
			Name:              parts[1],
			Phone:             parts[2],
			Email:             parts[3],
			Address:           parts[4],
			ProductCategories: parts[5],
		})
	}
	return nil
}

// Clear vacía la colección en memoria; no toca el archivo.
func (r *SupplierRepo) Clear() {
	r.suppliers = nil
	r.byID = make(map[string]int)
}

// FilePath devuelve la ruta del archivo de proveedores.
func (r *SupplierRepo) FilePath() string { return r.filePath }

// Add agrega al final sin validar unicidad del id.
func (r *SupplierRepo) Add(supplier *entity.Supplier) {
	r.suppliers = append(r.suppliers, supplier)
	if _, ok := r.byID[supplier.ID]; !ok {
		r.byID[supplier.ID] = len(r.suppliers) - 1
	}
}

// Update reemplaza en su posición; si el id no existe, no hace nada.
func (r *SupplierRepo) Update(supplier *entity.Supplier) {
	if idx, ok := r.byID[supplier.ID]; ok {
		r.suppliers[idx] = supplier
	}
}

// Delete elimina la primera aparición del id; si no existe, no hace nada.
func (r *SupplierRepo) Delete(id string) {
	idx, ok := r.byID[id]
	if !ok {
		return
	}
	r.suppliers = append(r.suppliers[:idx], r.suppliers[idx+1:]...)
	r.reindex()
}

func (r *SupplierRepo) reindex() {
	r.byID = make(map[string]int, len(r.suppliers))
	for i, s := range r.suppliers {
		if _, ok := r.byID[s.ID]; !ok {
			r.byID[s.ID] = i
		}
	}
}

// Count devuelve el tamaño de la colección.
func (r *SupplierRepo) Count() int { return len(r.suppliers) }

// FindByID devuelve la primera coincidencia o nil.
func (r *SupplierRepo) FindByID(id string) *entity.Supplier {
	if idx, ok := r.byID[id]; ok {
		return r.suppliers[idx]
	}
	return nil
}

// FindByName busca por subcadena del nombre, sin mayúsculas ni tildes.
func (r *SupplierRepo) FindByName(name string) []*entity.Supplier {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if textutil.ContainsFold(s.Name, name) {
			out = append(out, s)
		}
	}
	return out
}

// FindAll devuelve una copia defensiva en orden de inserción.
func (r *SupplierRepo) FindAll() []*entity.Supplier {
	out := make([]*entity.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out
}

// Search busca la subcadena en nombre, teléfono y categorías de producto.
func (r *SupplierRepo) Search(criteria string) []*entity.Supplier {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if textutil.ContainsFold(s.Name, criteria) ||
			textutil.ContainsFold(s.Phone, criteria) ||
			textutil.ContainsFold(s.ProductCategories, criteria) {
			out = append(out, s)
		}
	}
	return out
}
