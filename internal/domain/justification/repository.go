package justification

import (
	"context"
	"time"
)

type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id string) (Justification, error)
	ListByEmployeeRut(ctx context.Context, rut string) ([]Justification, error)

	// CountOverlapping counts justifications for the employee whose
	// [inicio, termino] range intersects the given one.
	CountOverlapping(ctx context.Context, employeeID string, inicio, termino time.Time) (int64, error)

	UpdateEstado(ctx context.Context, id string, estado Estado) error
}

type PermitTypeRepository interface {
	GetByDescripcion(ctx context.Context, descripcion string) (PermitType, error)
	List(ctx context.Context) ([]PermitType, error)
}
