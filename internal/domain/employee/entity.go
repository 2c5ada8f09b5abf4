package employee

import "time"

type Employee struct {
	ID           string
	Rut          string
	FullName     string
	Cargo        *string
	Departamento *string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
