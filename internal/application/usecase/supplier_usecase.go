package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/trading-pro/internal/application/dto"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD y búsqueda de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create agrega un proveedor; genera un id si no trae uno.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	supplier := &entity.Supplier{
		ID:                in.ID,
		Name:              in.Name,
		Phone:             in.Phone,
		Email:             in.Email,
		Address:           in.Address,
		ProductCategories: in.ProductCategories,
	}
	uc.repo.Add(supplier)
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID devuelve el proveedor o nil si no existe.
func (uc *SupplierUseCase) GetByID(id string) *dto.SupplierResponse {
	return toSupplierResponse(uc.repo.FindByID(id))
}

// Update reemplaza por completo al proveedor con ese id; nil si no existe.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if uc.repo.FindByID(id) == nil {
		return nil, nil
	}
	supplier := &entity.Supplier{
		ID:                id,
		Name:              in.Name,
		Phone:             in.Phone,
		Email:             in.Email,
		Address:           in.Address,
		ProductCategories: in.ProductCategories,
	}
	uc.repo.Update(supplier)
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina el proveedor si existe; un id ausente no es un error.
func (uc *SupplierUseCase) Delete(id string) error {
	uc.repo.Delete(id)
	return uc.repo.Save()
}

// List devuelve la colección completa.
func (uc *SupplierUseCase) List() *dto.SupplierListResponse {
	return supplierList(uc.repo.FindAll())
}

// Search busca la subcadena en nombre, teléfono y categorías de producto.
func (uc *SupplierUseCase) Search(criteria string) *dto.SupplierListResponse {
	return supplierList(uc.repo.Search(criteria))
}

// FindByName busca por subcadena del nombre.
func (uc *SupplierUseCase) FindByName(name string) *dto.SupplierListResponse {
	return supplierList(uc.repo.FindByName(name))
}

func supplierList(suppliers []*entity.Supplier) *dto.SupplierListResponse {
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Total: len(items)}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:                s.ID,
		Name:              s.Name,
		Phone:             s.Phone,
		Email:             s.Email,
		Address:           s.Address,
		ProductCategories: s.ProductCategories,
	}
}
