package repository

import "github.com/jhoicas/agrostock-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	UpdateRole(id, role string) (*entity.User, error)
	Delete(id string) error
}
