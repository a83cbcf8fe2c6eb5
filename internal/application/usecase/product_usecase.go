package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agrostock-api/internal/application/dto"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para productos.
// Cada producto pertenece a un solo usuario; las operaciones de escritura
// verifican propiedad (dueño o admin).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create persiste un producto nuevo con su cantidad inicial.
// La cantidad inicial es conceptualmente el primer movimiento implícito del
// ledger: el historial reconcilia a partir de ella, sin fila de movimiento.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "un"
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Unit:        unit,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Batch:       in.Batch,
		ExpiryDate:  in.ExpiryDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto, verificando propiedad.
func (uc *ProductUseCase) GetByID(id, actorID, actorRole string) (*dto.ProductResponse, error) {
	product, err := uc.findOwned(id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ListByOwner lista los productos de un usuario (más recientes primero).
// Un usuario solo puede listar su propio catálogo; un admin puede listar cualquiera.
func (uc *ProductUseCase) ListByOwner(ownerID, actorID, actorRole string) (*dto.ProductListResponse, error) {
	if ownerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	products, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza un producto existente. No permite modificar Quantity:
// el saldo se maneja exclusivamente vía movimientos de stock.
func (uc *ProductUseCase) Update(id, actorID, actorRole string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.findOwned(id, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Batch != nil {
		product.Batch = *in.Batch
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto del dueño. El historial de movimientos cae en
// cascada (FK ON DELETE CASCADE).
func (uc *ProductUseCase) Delete(id, actorID, actorRole string) error {
	if _, err := uc.findOwned(id, actorID, actorRole); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) findOwned(id, actorID, actorRole string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OwnerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Batch:       p.Batch,
		ExpiryDate:  p.ExpiryDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
