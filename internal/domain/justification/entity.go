package justification

import "time"

type Estado string

const (
	EstadoPendiente Estado = "PENDIENTE"
	EstadoEnProceso Estado = "EN_PROCESO"
	EstadoAprobado  Estado = "APROBADO"
	EstadoRechazado Estado = "RECHAZADO"
)

func ValidEstado(e Estado) bool {
	switch e {
	case EstadoPendiente, EstadoEnProceso, EstadoAprobado, EstadoRechazado:
		return true
	}
	return false
}

// Justification is a leave or permission record spanning an inclusive date
// range. Approval backfills official attendance for every date in range.
type Justification struct {
	ID            string
	EmployeeID    string
	PermitTypeID  string
	FechaInicio   time.Time
	FechaTermino  time.Time
	Motivo        string
	AttachmentURL *string
	Estado        Estado
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for listings
	EmployeeName    string
	EmployeeRut     string
	PermitTypeLabel string
}

// PermitType is a leave category. Some categories require a supporting
// document before the justification can be filed.
type PermitType struct {
	ID                 string
	Descripcion        string
	RequiereAdjuntos   bool
	DiasMaximosPorAnio *int
}
