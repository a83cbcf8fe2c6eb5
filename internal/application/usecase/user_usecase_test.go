package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrostock-api/internal/application/usecase"
	"github.com/jhoicas/agrostock-api/internal/domain"
	"github.com/jhoicas/agrostock-api/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(id, role string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u.Role = role
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func adminUser() *entity.User {
	return &entity.User{ID: "admin-1", Name: "Admin", Email: "admin@campo.co", Role: entity.RoleAdmin}
}

func regularUser() *entity.User {
	return &entity.User{ID: "user-1", Name: "María", Email: "maria@campo.co", PasswordHash: "hash", Role: entity.RoleUser}
}

func TestUserList_NoExponePasswordHash(t *testing.T) {
	repo := newFakeUserRepo(adminUser(), regularUser())
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestUserUpdateRole_SoloRolesValidos(t *testing.T) {
	repo := newFakeUserRepo(regularUser())
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.UpdateRole("user-1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	_, err = uc.UpdateRole("user-1", "SUPERUSER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo USER y ADMIN son roles válidos")

	_, err = uc.UpdateRole("no-existe", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_AdminNoPuedeEliminarseASiMismo(t *testing.T) {
	repo := newFakeUserRepo(adminUser(), regularUser())
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("admin-1", "admin-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, repo.users, "admin-1")

	err = uc.Delete("user-1", "admin-1")
	require.NoError(t, err)
	assert.NotContains(t, repo.users, "user-1")

	err = uc.Delete("no-existe", "admin-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
