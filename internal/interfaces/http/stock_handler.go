package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agrostock-api/internal/application/dto"
	"github.com/jhoicas/agrostock-api/internal/application/stock"
	"github.com/jhoicas/agrostock-api/internal/application/usecase"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP de movimientos de stock (protegido).
type StockHandler struct {
	uc *stock.RegisterMovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.RegisterMovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddStock godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockMovementRequest  true  "quantity (> 0), reason (opcional)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/add [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeIN)
}

// RemoveStock godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockMovementRequest  true  "quantity (> 0), reason (opcional)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock/remove [post]
func (h *StockHandler) RemoveStock(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeOUT)
}

func (h *StockHandler) registerMovement(c *fiber.Ctx, movType string) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.RegisterMovement(c.Context(), stock.MovementInput{
		ProductID: c.Params("id"),
		Type:      movType,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		ActorID:   GetUserID(c),
		ActorRole: GetRole(c),
	})
	if err != nil {
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un número positivo"})
		}
		return mapDomainError(c, err)
	}
	return c.JSON(usecase.ToProductResponse(product))
}

// GetHistory godoc
// @Summary      Historial de movimientos de un producto (más reciente primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *StockHandler) GetHistory(c *fiber.Ctx) error {
	productID := c.Params("id")
	movements, err := h.uc.GetHistory(c.Context(), productID, GetUserID(c), GetRole(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.StockMovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		})
	}
	return c.JSON(dto.MovementHistoryResponse{
		ProductID: productID,
		Total:     len(items),
		Movements: items,
	})
}
