package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleStaff    = "staff"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Email        string // único
	Role         string // admin, manager, staff, employee
	CreatedAt    time.Time
}
