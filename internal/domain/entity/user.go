package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsValidRole indica si el rol pertenece al conjunto permitido.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User representa una cuenta del sistema. Cada usuario es dueño de su propio catálogo de productos.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Age          *int
	Role         string // USER, ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
