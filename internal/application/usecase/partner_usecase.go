package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/internal/domain/repository"
)

// SupplierUseCase proveedores. Se desactivan, nunca se borran: las compras
// recibidas los referencian.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor activo.
func (uc *SupplierUseCase) Create(in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return supplierResponse(s), nil
}

// Update actualiza los datos de contacto de un proveedor.
func (uc *SupplierUseCase) Update(id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = in.Name
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return supplierResponse(s), nil
}

// Deactivate desactiva un proveedor.
func (uc *SupplierUseCase) Deactivate(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	s.IsActive = false
	s.UpdatedAt = time.Now().UTC()
	return uc.repo.Update(s)
}

// List lista proveedores; onlyActive filtra los desactivados.
func (uc *SupplierUseCase) List(onlyActive bool, limit, offset int) ([]dto.PartnerResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *supplierResponse(s))
	}
	return items, nil
}

// CustomerUseCase clientes, mismo tratamiento que proveedores.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente activo.
func (uc *CustomerUseCase) Create(in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *CustomerUseCase) Update(id string, in dto.PartnerRequest) (*dto.PartnerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Phone = in.Phone
	c.Email = in.Email
	c.Address = in.Address
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

// Deactivate desactiva un cliente.
func (uc *CustomerUseCase) Deactivate(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	c.IsActive = false
	c.UpdatedAt = time.Now().UTC()
	return uc.repo.Update(c)
}

// List lista clientes; onlyActive filtra los desactivados.
func (uc *CustomerUseCase) List(onlyActive bool, limit, offset int) ([]dto.PartnerResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerResponse(c))
	}
	return items, nil
}

func supplierResponse(s *entity.Supplier) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID: s.ID, Name: s.Name, Phone: s.Phone, Email: s.Email,
		Address: s.Address, IsActive: s.IsActive,
	}
}

func customerResponse(c *entity.Customer) *dto.PartnerResponse {
	return &dto.PartnerResponse{
		ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email,
		Address: c.Address, IsActive: c.IsActive,
	}
}
