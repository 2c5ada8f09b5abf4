package attendance

import (
	"time"
)

// Punch kinds as stored in the ledger. KindMarca is the legacy generic kind
// produced by clock hardware that does not distinguish direction.
const (
	KindEntrada = "ENTRADA"
	KindSalida  = "SALIDA"
	KindMarca   = "MARCA"
)

// Approval states for a punch. New punches default to EstadoAutorizado.
const (
	EstadoAutorizado = "AUTORIZADO"
	EstadoRechazado  = "RECHAZADO"
	EstadoPendiente  = "PENDIENTE"
)

// Punch is a single observed clock action. Timestamps are local wall-clock
// values; the engine never converts between timezones.
type Punch struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Kind       string
	Estado     string
	EsOficial  bool
	Origin     *string // reason label when synthesized from an approved justification
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from employees
	EmployeeName string
	EmployeeRut  string
}

// Date returns the calendar date of the punch with the time of day stripped.
func (p Punch) Date() time.Time {
	y, m, d := p.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.Timestamp.Location())
}

func ValidKind(kind string) bool {
	return kind == KindEntrada || kind == KindSalida || kind == KindMarca
}

func ValidEstado(estado string) bool {
	return estado == EstadoAutorizado || estado == EstadoRechazado || estado == EstadoPendiente
}
