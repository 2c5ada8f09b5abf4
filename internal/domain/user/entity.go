package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleRRHH     Role = "RRHH"
	RoleEmpleado Role = "EMPLEADO"
)

// Usuario is a login account. Username is the employee's rut.
type Usuario struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
