package attendance

import (
	"context"
	"time"
)

// PunchRepository defines data access for the punch ledger. The ledger is
// append-only from the engine's point of view: rows are created and have
// their official flag or approval state flipped, never deleted.
type PunchRepository interface {
	// Create inserts a new punch and returns it with its generated id.
	Create(ctx context.Context, punch Punch) (Punch, error)

	// GetByID retrieves a punch with employee identity joined in.
	GetByID(ctx context.Context, id string) (Punch, error)

	// ListByDate retrieves every punch whose timestamp falls on the given
	// calendar date, across all employees.
	ListByDate(ctx context.Context, date time.Time) ([]Punch, error)

	// ListByEmployeeAndDate retrieves one employee's punches on one date.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)

	// ListByRutAndRange retrieves punches for an exact rut in [from, to).
	ListByRutAndRange(ctx context.Context, rut string, from, to time.Time) ([]Punch, error)

	// ListByPartialRutAndRange matches ruts by prefix, for the flexible
	// operator search.
	ListByPartialRutAndRange(ctx context.Context, rutPrefix string, from, to time.Time) ([]Punch, error)

	// FindOfficial returns the official punch for (employee, date, kind),
	// or nil with no error when none exists.
	FindOfficial(ctx context.Context, employeeID string, date time.Time, kind string) (*Punch, error)

	// PromoteOfficial marks the punch official, demoting any previous
	// official holder for the same (employee, date, kind) in the same
	// transaction. The row group is locked so concurrent promotions
	// serialize and the at-most-one-official invariant holds.
	PromoteOfficial(ctx context.Context, id string) (Punch, error)

	// SetOfficial flips the official flag without promotion semantics.
	SetOfficial(ctx context.Context, id string, official bool) error

	// SetEstado updates the approval state.
	SetEstado(ctx context.Context, id string, estado string) error
}
