package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (IN, OUT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Política de concurrencia: la fila del producto queda bloqueada durante todo
// el read-check-write, de modo que dos salidas concurrentes sobre el mismo
// producto se serializan y el saldo nunca puede quedar negativo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
	prodRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	prodRepo repository.ProductRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo, prodRepo: prodRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// ActorID/ActorRole identifican al llamador para el control de propiedad.
type MovementInput struct {
	ProductID string
	Type      string // IN | OUT
	Quantity  int64
	Reason    string
	ActorID   string
	ActorRole string
}

// AddStock registra una entrada (IN) y devuelve el producto actualizado.
func (uc *RegisterMovementUseCase) AddStock(ctx context.Context, productID string, quantity int64, reason, actorID, actorRole string) (*entity.Product, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeIN,
		Quantity:  quantity,
		Reason:    reason,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
}

// RemoveStock registra una salida (OUT) y devuelve el producto actualizado.
// Falla con ErrInsufficientStock si la cantidad supera el saldo actual.
func (uc *RegisterMovementUseCase) RemoveStock(ctx context.Context, productID string, quantity int64, reason, actorID, actorRole string) (*entity.Product, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: productID,
		Type:      entity.MovementTypeOUT,
		Quantity:  quantity,
		Reason:    reason,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
}

// RegisterMovement valida la entrada y aplica el movimiento como unidad atómica:
// dentro de una transacción bloquea la fila del producto, verifica saldo para
// salidas, inserta el registro inmutable de historial y ajusta la cantidad.
// Si cualquier paso falla no queda efecto parcial observable.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Product, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE): serializa las
		// salidas concurrentes sobre el mismo producto hasta el Commit/Rollback.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.OwnerID != input.ActorID && input.ActorRole != entity.RoleAdmin {
			return domain.ErrForbidden
		}
		if input.Type == entity.MovementTypeOUT && product.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		newQty, err := productRepo.AdjustQuantity(input.ProductID, mov.SignedQuantity())
		if err != nil {
			return err
		}
		product.Quantity = newQty
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetHistory devuelve el historial de movimientos de un producto, del más
// reciente al más antiguo. Solo el dueño del producto o un admin pueden leerlo.
func (uc *RegisterMovementUseCase) GetHistory(ctx context.Context, productID, actorID, actorRole string) ([]*entity.StockMovement, error) {
	product, err := uc.prodRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OwnerID != actorID && actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.movRepo.ListByProduct(productID)
}

// GetQuantity devuelve el saldo actual del producto.
func (uc *RegisterMovementUseCase) GetQuantity(ctx context.Context, productID string) (int64, error) {
	return uc.prodRepo.GetQuantity(productID)
}
