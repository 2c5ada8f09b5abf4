package holiday

import "time"

// Holiday is a dynamically managed non-working date. Deactivated rows are
// kept for history but excluded from calendar queries.
type Holiday struct {
	ID          string
	Fecha       time.Time
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
}
