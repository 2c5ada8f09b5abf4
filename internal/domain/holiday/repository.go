package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// ExistsActiveOn reports whether an active holiday covers the date.
	ExistsActiveOn(ctx context.Context, date time.Time) (bool, error)

	// Deactivate soft-deletes the holiday.
	Deactivate(ctx context.Context, id string) error
}
