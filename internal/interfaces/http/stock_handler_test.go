package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrostock-api/internal/application/stock"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
	"github.com/jhoicas/agrostock-api/internal/domain/repository"
	apphttp "github.com/jhoicas/agrostock-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/agrostock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el endpoint de stock
// ──────────────────────────────────────────────────────────────────────────────

const (
	ownerID   = "00000000-0000-0000-0000-0000000000aa"
	otherID   = "00000000-0000-0000-0000-0000000000bb"
	productID = "00000000-0000-0000-0000-000000000001"
)

type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) GetQuantity(id string) (int64, error) {
	p, ok := r.store.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Quantity, nil
}

func (r *memProductRepo) AdjustQuantity(id string, delta int64) (int64, error) {
	p, ok := r.store.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Quantity += delta
	return p.Quantity, nil
}

func (r *memProductRepo) Update(p *entity.Product) error { return r.Create(p) }

func (r *memProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		if r.store.movements[i].ProductID == productID {
			cp := *r.store.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// memTxRunner transacción simulada: restaura el snapshot si fn falla.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapProducts := make(map[string]*entity.Product, len(r.store.products))
	for id, p := range r.store.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapMovements := append([]*entity.StockMovement(nil), r.store.movements...)

	err := fn(&memMovementRepo{store: r.store}, &memProductRepo{store: r.store})
	if err != nil {
		r.store.products = snapProducts
		r.store.movements = snapMovements
	}
	return err
}

// buildStockApp app Fiber con las rutas de stock montadas sobre fakes.
func buildStockApp(initialQty int64) (*fiber.App, *memStore) {
	store := &memStore{products: map[string]*entity.Product{
		productID: {
			ID:       productID,
			OwnerID:  ownerID,
			Name:     "Fertilizante NPK",
			Unit:     "kg",
			Quantity: initialQty,
		},
	}}
	uc := stock.NewRegisterMovementUseCase(
		&memTxRunner{store: store},
		&memMovementRepo{store: store},
		&memProductRepo{store: store},
	)
	handler := apphttp.NewStockHandler(uc)

	app := fiber.New()
	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	protected.Post("/products/:id/stock/add", handler.AddStock)
	protected.Post("/products/:id/stock/remove", handler.RemoveStock)
	protected.Get("/products/:id/movements", handler.GetHistory)
	return app, store
}

func tokenForUser(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func postMovement(t *testing.T, app *fiber.App, path, authHeader string, quantity int64, reason string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"quantity": quantity, "reason": reason})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los endpoints de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockAdd_Retorna200ConSaldoActualizado(t *testing.T) {
	app, store := buildStockApp(10)
	path := fmt.Sprintf("/api/products/%s/stock/add", productID)

	resp := postMovement(t, app, path, tokenForUser(t, ownerID, entity.RoleUser), 5, "reposición")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(15), body["quantity"], "el endpoint devuelve el producto actualizado")
	assert.Len(t, store.movements, 1)
}

func TestStockRemove_SaldoInsuficiente_Retorna409(t *testing.T) {
	app, store := buildStockApp(3)
	path := fmt.Sprintf("/api/products/%s/stock/remove", productID)

	resp := postMovement(t, app, path, tokenForUser(t, ownerID, entity.RoleUser), 7, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Empty(t, store.movements, "un OUT rechazado no deja historial")
	assert.Equal(t, int64(3), store.products[productID].Quantity)
}

func TestStockAdd_CantidadInvalida_Retorna400(t *testing.T) {
	app, _ := buildStockApp(10)
	path := fmt.Sprintf("/api/products/%s/stock/add", productID)

	for _, qty := range []int64{0, -5} {
		resp := postMovement(t, app, path, tokenForUser(t, ownerID, entity.RoleUser), qty, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cantidad %d debe rechazarse", qty)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_QUANTITY", body["code"])
		resp.Body.Close()
	}
}

func TestStockAdd_ProductoAjeno_Retorna403(t *testing.T) {
	app, _ := buildStockApp(10)
	path := fmt.Sprintf("/api/products/%s/stock/add", productID)

	resp := postMovement(t, app, path, tokenForUser(t, otherID, entity.RoleUser), 5, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStockAdd_ProductoInexistente_Retorna404(t *testing.T) {
	app, _ := buildStockApp(10)
	resp := postMovement(t, app, "/api/products/no-existe/stock/add", tokenForUser(t, ownerID, entity.RoleUser), 5, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStockHistory_DevuelveMovimientosMasRecientePrimero(t *testing.T) {
	app, _ := buildStockApp(10)
	auth := tokenForUser(t, ownerID, entity.RoleUser)
	addPath := fmt.Sprintf("/api/products/%s/stock/add", productID)

	resp := postMovement(t, app, addPath, auth, 1, "primero")
	resp.Body.Close()
	resp = postMovement(t, app, addPath, auth, 2, "segundo")
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/products/%s/movements", productID), nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		ProductID string `json:"product_id"`
		Total     int    `json:"total"`
		Movements []struct {
			Type     string `json:"type"`
			Quantity int64  `json:"quantity"`
			Reason   string `json:"reason"`
		} `json:"movements"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, productID, body.ProductID)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "segundo", body.Movements[0].Reason, "el más reciente va primero")
	assert.Equal(t, "primero", body.Movements[1].Reason)
}

func TestStockEndpoints_SinToken_Retorna401(t *testing.T) {
	app, _ := buildStockApp(10)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/products/%s/stock/add", productID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
