package reports

import (
	"context"

	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
)

// InventoryPDFGenerator puerto para la generación del PDF del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, owner *entity.User, products []*entity.Product) ([]byte, error)
}

// PDFUseCase genera el reporte de inventario en PDF para un usuario.
type PDFUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	generator   InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{userRepo: userRepo, productRepo: productRepo, generator: generator}
}

// GenerateInventoryReport arma el PDF con el inventario completo del usuario.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context, ownerID, actorID, actorRole string) ([]byte, error) {
	if ownerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInventoryPDF(ctx, owner, products)
}
