package parameter

import "time"

// Well-known parameter keys read by the attendance engine.
const (
	KeyWeeklyHours      = "horas_semanales"
	KeyToleranceMinutes = "minutos_tolerancia"
)

// SystemParameter is a named configuration value. Values are stored as
// strings; numeric keys are parsed on read.
type SystemParameter struct {
	ID        string
	Clave     string
	Valor     string
	UpdatedAt time.Time
}
