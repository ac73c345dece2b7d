package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/trading-pro/internal/application/dto"
	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create agrega un producto de la variante indicada; genera un id si falta.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	product, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	uc.repo.Add(product)
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve el producto o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) *dto.ProductResponse {
	return toProductResponse(uc.repo.FindByID(id))
}

// Update reemplaza por completo al producto con el id de la ruta. Propaga
// domain.ErrProductNotFound si el id no existe.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in.ID = id
	product, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto; propaga domain.ErrProductNotFound.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.repo.Save()
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	return productList(uc.repo.FindAll())
}

// Search busca la subcadena en nombre, categoría e id.
func (uc *ProductUseCase) Search(criteria string) *dto.ProductListResponse {
	return productList(uc.repo.Search(criteria))
}

// FindByName busca por subcadena del nombre.
func (uc *ProductUseCase) FindByName(name string) *dto.ProductListResponse {
	return productList(uc.repo.FindByName(name))
}

// FindByType filtra por variante.
func (uc *ProductUseCase) FindByType(t string) (*dto.ProductListResponse, error) {
	switch pt := entity.ProductType(t); pt {
	case entity.ProductElectronics, entity.ProductClothing, entity.ProductFood, entity.ProductFurniture:
		return productList(uc.repo.FindByType(pt)), nil
	default:
		return nil, fmt.Errorf("%w: variante desconocida %q", domain.ErrInvalidInput, t)
	}
}

// LowStock devuelve los productos con stock estrictamente menor al umbral.
func (uc *ProductUseCase) LowStock(threshold int) *dto.ProductListResponse {
	return productList(uc.repo.LowStock(threshold))
}

// buildProduct arma la variante concreta a partir del request.
func buildProduct(in dto.ProductRequest) (entity.Product, error) {
	info := entity.ProductInfo{
		ID:            in.ID,
		Name:          in.Name,
		Category:      in.Category,
		ImportPrice:   in.ImportPrice,
		SalePrice:     in.SalePrice,
		StockQuantity: in.StockQuantity,
	}
	switch entity.ProductType(in.ProductType) {
	case entity.ProductElectronics:
		return &entity.Electronics{ProductInfo: info, WarrantyMonths: in.WarrantyMonths}, nil
	case entity.ProductClothing:
		return &entity.Clothing{ProductInfo: info, Size: in.Size, Material: in.Material}, nil
	case entity.ProductFood:
		expiry, err := time.Parse(entity.DateLayout, in.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expiry_date %q", domain.ErrInvalidInput, in.ExpiryDate)
		}
		return &entity.Food{ProductInfo: info, ExpiryDate: expiry}, nil
	case entity.ProductFurniture:
		return &entity.Furniture{ProductInfo: info, Dimensions: in.Dimensions, Weight: in.Weight}, nil
	default:
		return nil, fmt.Errorf("%w: variante desconocida %q", domain.ErrInvalidInput, in.ProductType)
	}
}

func productList(products []entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	info := p.Info()
	out := &dto.ProductResponse{
		ID:            info.ID,
		ProductType:   string(p.Type()),
		Name:          info.Name,
		Category:      info.Category,
		ImportPrice:   info.ImportPrice,
		SalePrice:     info.SalePrice,
		StockQuantity: info.StockQuantity,
	}
	switch v := p.(type) {
	case *entity.Electronics:
		out.WarrantyMonths = v.WarrantyMonths
	case *entity.Clothing:
		out.Size = v.Size
		out.Material = v.Material
	case *entity.Food:
		out.ExpiryDate = v.ExpiryDate.Format(entity.DateLayout)
	case *entity.Furniture:
		out.Dimensions = v.Dimensions
		out.Weight = v.Weight
	}
	return out
}
