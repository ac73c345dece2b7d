package csvstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
	"github.com/tu-usuario/trading-pro/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productHeader = "id,productType,name,category,importPrice,salePrice,stockQuantity,extra1,extra2"

// productMinFields las variantes de dos campos extra necesitan los 9.
const productMinFields = 9

// ProductRepo catálogo de productos en memoria respaldado por un archivo.
// La colección guarda valores de la interfaz Product (unión cerrada de
// variantes); la codificación es siempre de 9 campos.
type ProductRepo struct {
	filePath string
	products []entity.Product
	byID     map[string]int
}

// NewProductRepository construye el catálogo ligado a una ruta fija.
func NewProductRepository(filePath string) *ProductRepo {
	return &ProductRepo{
		filePath: filePath,
		byID:     make(map[string]int),
	}
}

// Save serializa el catálogo completo al archivo.
func (r *ProductRepo) Save() error {
	rows := make([]string, 0, len(r.products))
	for _, p := range r.products {
		rows = append(rows, p.ToCSV())
	}
	return writeLines(r.filePath, productHeader, rows)
}

// Load reemplaza el catálogo con el contenido del archivo. Un campo numérico
// o de fecha malformado aborta la carga completa; una etiqueta de variante
// desconocida solo omite esa línea (la evolución de tipos de producto no
// debe corromper el catálogo entero).
func (r *ProductRepo) Load() error {
	r.Clear()

	lines, err := readDataLines(r.filePath)
	if err != nil {
		return err
	}
	for _, line := range lines {
		parts := splitFields(line)
		if len(parts) < productMinFields {
			continue
		}
		p, err := decodeProduct(parts)
		if err != nil {
			return fmt.Errorf("cargar productos: %w", err)
		}
		if p == nil {
			continue // variante desconocida
		}
		r.Add(p)
	}
	return nil
}

// decodeProduct decodifica una línea ya validada en longitud. Devuelve
// (nil, nil) ante una etiqueta de variante desconocida.
func decodeProduct(parts []string) (entity.Product, error) {
	importPrice, err := decimal.NewFromString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("importPrice %q: %w", parts[4], err)
	}
	salePrice, err := decimal.NewFromString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("salePrice %q: %w", parts[5], err)
	}
	stock, err := strconv.Atoi(parts[6])
	if err != nil {
		return nil, fmt.Errorf("stockQuantity %q: %w", parts[6], err)
	}
	info := entity.ProductInfo{
		ID:            parts[0],
		Name:          parts[2],
		Category:      parts[3],
		ImportPrice:   importPrice,
		SalePrice:     salePrice,
		StockQuantity: stock,
	}

	switch entity.ProductType(parts[1]) {
	case entity.ProductElectronics:
		warranty, err := strconv.Atoi(parts[7])
		if err != nil {
			return nil, fmt.Errorf("warrantyMonths %q: %w", parts[7], err)
		}
		return &entity.Electronics{ProductInfo: info, WarrantyMonths: warranty}, nil

	case entity.ProductClothing:
		return &entity.Clothing{ProductInfo: info, Size: parts[7], Material: parts[8]}, nil

	case entity.ProductFood:
		expiry, err := time.Parse(entity.DateLayout, parts[7])
		if err != nil {
			return nil, fmt.Errorf("expiryDate %q: %w", parts[7], err)
		}
		return &entity.Food{ProductInfo: info, ExpiryDate: expiry}, nil

	case entity.ProductFurniture:
		weight, err := strconv.ParseFloat(parts[8], 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", parts[8], err)
		}
		return &entity.Furniture{ProductInfo: info, Dimensions: parts[7], Weight: weight}, nil

	default:
		return nil, nil
	}
}

// Clear vacía el catálogo en memoria; no toca el archivo.
func (r *ProductRepo) Clear() {
	r.products = nil
	r.byID = make(map[string]int)
}

// FilePath devuelve la ruta del archivo de productos.
func (r *ProductRepo) FilePath() string { return r.filePath }

// Add agrega al final sin validar unicidad del id.
func (r *ProductRepo) Add(product entity.Product) {
	r.products = append(r.products, product)
	if _, ok := r.byID[product.Info().ID]; !ok {
		r.byID[product.Info().ID] = len(r.products) - 1
	}
}

// Update reemplaza en su posición al producto con el mismo id; falla con
// domain.ErrProductNotFound si el id no existe (a diferencia de clientes y
// proveedores, que ignoran el caso en silencio).
func (r *ProductRepo) Update(product entity.Product) error {
	idx, ok := r.byID[product.Info().ID]
	if !ok {
		return fmt.Errorf("%w: id %s", domain.ErrProductNotFound, product.Info().ID)
	}
	r.products[idx] = product
	return nil
}

// Delete elimina la primera aparición del id; falla con
// domain.ErrProductNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	idx, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %s", domain.ErrProductNotFound, id)
	}
	r.products = append(r.products[:idx], r.products[idx+1:]...)
	r.reindex()
	return nil
}

func (r *ProductRepo) reindex() {
	r.byID = make(map[string]int, len(r.products))
	for i, p := range r.products {
		if _, ok := r.byID[p.Info().ID]; !ok {
			r.byID[p.Info().ID] = i
		}
	}
}

// Count devuelve el tamaño del catálogo.
func (r *ProductRepo) Count() int { return len(r.products) }

// FindByID devuelve la primera coincidencia o nil.
func (r *ProductRepo) FindByID(id string) entity.Product {
	if idx, ok := r.byID[id]; ok {
		return r.products[idx]
	}
	return nil
}

// FindByName busca por subcadena del nombre, sin mayúsculas ni tildes.
func (r *ProductRepo) FindByName(name string) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		if textutil.ContainsFold(p.Info().Name, name) {
			out = append(out, p)
		}
	}
	return out
}

// FindAll devuelve una copia defensiva en orden de inserción.
func (r *ProductRepo) FindAll() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Search busca la subcadena en nombre, categoría e id.
func (r *ProductRepo) Search(criteria string) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		info := p.Info()
		if textutil.ContainsFold(info.Name, criteria) ||
			textutil.ContainsFold(info.Category, criteria) ||
			textutil.ContainsFold(info.ID, criteria) {
			out = append(out, p)
		}
	}
	return out
}

// FindByType filtra por etiqueta de variante, conservando el orden.
func (r *ProductRepo) FindByType(t entity.ProductType) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		if p.Type() == t {
			out = append(out, p)
		}
	}
	return out
}

// LowStock devuelve los productos con stock estrictamente menor al umbral.
func (r *ProductRepo) LowStock(threshold int) []entity.Product {
	var out []entity.Product
	for _, p := range r.products {
		if p.Info().StockQuantity < threshold {
			out = append(out, p)
		}
	}
	return out
}
