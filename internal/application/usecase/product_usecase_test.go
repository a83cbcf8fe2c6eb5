package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrostock-api/internal/application/dto"
	"github.com/jhoicas/agrostock-api/internal/application/usecase"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
)

const (
	ownerID = "00000000-0000-0000-0000-0000000000aa"
	otherID = "00000000-0000-0000-0000-0000000000bb"
)

// fakeProductRepo repositorio en memoria para los tests del caso de uso.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetQuantity(id string) (int64, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.Quantity, nil
}

func (r *fakeProductRepo) AdjustQuantity(id string, delta int64) (int64, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Quantity += delta
	return p.Quantity, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func seedProduct() *entity.Product {
	return &entity.Product{
		ID:       "p-1",
		OwnerID:  ownerID,
		Name:     "Semilla de maíz",
		Category: "Semillas",
		Unit:     "kg",
		Price:    decimal.NewFromInt(20),
		Quantity: 50,
		MinStock: 10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaIDyUnidadPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(ownerID, dto.CreateProductRequest{
		Name:     "Abono orgánico",
		Quantity: 25,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, ownerID, out.OwnerID)
	assert.Equal(t, "un", out.Unit, "sin unidad explícita se usa 'un'")
	assert.Equal(t, int64(25), out.Quantity, "la cantidad inicial se persiste tal cual")
}

func TestProductCreate_DatosInvalidos_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	cases := []dto.CreateProductRequest{
		{Name: ""},
		{Name: "x", Quantity: -1},
		{Name: "x", MinStock: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(ownerID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, repo.products, "nada debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad (dueño o admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_ControlDePropiedad(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.GetByID("p-1", ownerID, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Semilla de maíz", out.Name)

	_, err = uc.GetByID("p-1", otherID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro usuario no puede leer el producto")

	_, err = uc.GetByID("p-1", otherID, entity.RoleAdmin)
	assert.NoError(t, err, "un admin puede leer cualquier producto")

	_, err = uc.GetByID("no-existe", ownerID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_SoloPropioCatalogoSalvoAdmin(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.ListByOwner(ownerID, ownerID, entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	_, err = uc.ListByOwner(ownerID, otherID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err = uc.ListByOwner(ownerID, otherID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: nunca toca Quantity
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_ModificaCamposSinTocarCantidad(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	newName := "Semilla de maíz híbrido"
	newPrice := decimal.NewFromInt(35)
	out, err := uc.Update("p-1", ownerID, entity.RoleUser, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	assert.Equal(t, int64(50), out.Quantity,
		"el saldo solo cambia vía movimientos de stock, nunca por update")
	assert.Equal(t, int64(50), repo.products["p-1"].Quantity)
}

func TestProductUpdate_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	empty := ""
	_, err := uc.Update("p-1", ownerID, entity.RoleUser, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoPropietario_RetornaErrForbidden(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	newName := "hack"
	_, err := uc.Update("p-1", otherID, entity.RoleUser, dto.UpdateProductRequest{Name: &newName})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Semilla de maíz", repo.products["p-1"].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_SoloDuenoOAdmin(t *testing.T) {
	repo := newFakeProductRepo(seedProduct())
	uc := usecase.NewProductUseCase(repo)

	err := uc.Delete("p-1", otherID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.products, "p-1")

	err = uc.Delete("p-1", ownerID, entity.RoleUser)
	require.NoError(t, err)
	assert.NotContains(t, repo.products, "p-1")
}
