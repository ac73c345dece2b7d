package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductType etiqueta discriminadora de la variante de producto.
// El conjunto es cerrado; una etiqueta desconocida en el archivo no es un
// error fatal sino una línea que se omite (evolución del catálogo).
type ProductType string

const (
	ProductElectronics ProductType = "ELECTRONICS"
	ProductClothing    ProductType = "CLOTHING"
	ProductFood        ProductType = "FOOD"
	ProductFurniture   ProductType = "FURNITURE"
)

// Product es la unión cerrada de variantes del catálogo. Todas comparten el
// conjunto base de campos (ProductInfo) y añaden 1–2 campos propios.
type Product interface {
	// Info da acceso a los campos base compartidos.
	Info() *ProductInfo
	// Type devuelve la etiqueta de variante.
	Type() ProductType
	// ToCSV codifica el producto como una línea de exactamente 9 campos;
	// las variantes con un solo campo extra dejan el noveno vacío.
	ToCSV() string
}

// ProductInfo campos base compartidos por todas las variantes.
type ProductInfo struct {
	ID            string
	Name          string
	Category      string
	ImportPrice   decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
}

// Info implementa la parte común de Product vía embedding.
func (p *ProductInfo) Info() *ProductInfo { return p }

// csvLine arma la línea de 9 campos de cualquier variante.
func (p *ProductInfo) csvLine(t ProductType, extra1, extra2 string) string {
	return strings.Join([]string{
		p.ID, string(t), p.Name, p.Category,
		p.ImportPrice.String(), p.SalePrice.String(),
		strconv.Itoa(p.StockQuantity),
		extra1, extra2,
	}, ",")
}

// Electronics producto electrónico con garantía en meses.
type Electronics struct {
	ProductInfo
	WarrantyMonths int
}

func (e *Electronics) Type() ProductType { return ProductElectronics }

func (e *Electronics) ToCSV() string {
	return e.csvLine(ProductElectronics, strconv.Itoa(e.WarrantyMonths), "")
}

// Clothing prenda con talla y material.
type Clothing struct {
	ProductInfo
	Size     string
	Material string
}

func (c *Clothing) Type() ProductType { return ProductClothing }

func (c *Clothing) ToCSV() string {
	return c.csvLine(ProductClothing, c.Size, c.Material)
}

// Food alimento con fecha de vencimiento.
type Food struct {
	ProductInfo
	ExpiryDate time.Time
}

func (f *Food) Type() ProductType { return ProductFood }

func (f *Food) ToCSV() string {
	return f.csvLine(ProductFood, f.ExpiryDate.Format(DateLayout), "")
}

// Furniture mueble con dimensiones (texto libre) y peso en kg.
type Furniture struct {
	ProductInfo
	Dimensions string
	Weight     float64
}

func (f *Furniture) Type() ProductType { return ProductFurniture }

func (f *Furniture) ToCSV() string {
	return f.csvLine(ProductFurniture, f.Dimensions, strconv.FormatFloat(f.Weight, 'f', -1, 64))
}
