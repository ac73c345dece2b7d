package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/trading-pro/internal/application/dto"
	"github.com/tu-usuario/trading-pro/internal/domain"
	"github.com/tu-usuario/trading-pro/internal/domain/entity"
	"github.com/tu-usuario/trading-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD y búsqueda de clientes. El repositorio
// nunca persiste solo: cada mutación termina con un Save explícito.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create agrega un cliente; genera un id si el cliente no trae uno.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	ctype, err := entity.ParseCustomerType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	customer := &entity.Customer{
		ID:      in.ID,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		Type:    ctype,
	}
	uc.repo.Add(customer)
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID devuelve el cliente o nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) *dto.CustomerResponse {
	return toCustomerResponse(uc.repo.FindByID(id))
}

// Update reemplaza por completo los campos del cliente con ese id. Devuelve
// nil si el id no existe (el repositorio lo ignora en silencio).
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if uc.repo.FindByID(id) == nil {
		return nil, nil
	}
	ctype, err := entity.ParseCustomerType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	customer := &entity.Customer{
		ID:      id,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		Type:    ctype,
	}
	uc.repo.Update(customer)
	if err := uc.repo.Save(); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente si existe; un id ausente no es un error.
func (uc *CustomerUseCase) Delete(id string) error {
	uc.repo.Delete(id)
	return uc.repo.Save()
}

// List devuelve la colección completa.
func (uc *CustomerUseCase) List() *dto.CustomerListResponse {
	return customerList(uc.repo.FindAll())
}

// Search busca la subcadena en nombre, teléfono y email; con criteria vacío
// se comporta como List.
func (uc *CustomerUseCase) Search(criteria string) *dto.CustomerListResponse {
	return customerList(uc.repo.Search(criteria))
}

// FindByName busca por subcadena del nombre.
func (uc *CustomerUseCase) FindByName(name string) *dto.CustomerListResponse {
	return customerList(uc.repo.FindByName(name))
}

// FindByType filtra por categoría comercial.
func (uc *CustomerUseCase) FindByType(t string) (*dto.CustomerListResponse, error) {
	ctype, err := entity.ParseCustomerType(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return customerList(uc.repo.FindByType(ctype)), nil
}

func customerList(customers []*entity.Customer) *dto.CustomerListResponse {
	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		Type:    string(c.Type),
	}
}
