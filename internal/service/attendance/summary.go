package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
)

// buildSummary assembles the per-day result for one employee from the
// resolved official marks. Either side may be nil.
func buildSummary(date time.Time, entrance, exit *attendance.Punch, specialDay bool, cfg jornadaConfig) attendance.DaySummary {
	summary := attendance.DaySummary{
		Day:        date,
		Date:       fmt.Sprintf("%d/%d/%d", date.Day(), int(date.Month()), date.Year()),
		Estado:     attendance.EstadoAutorizado,
		SpecialDay: specialDay,
	}

	var entranceAt, exitAt, expectedAt *time.Time
	if entrance != nil {
		t := entrance.Timestamp
		entranceAt = &t
	}
	if exit != nil {
		t := exit.Timestamp
		exitAt = &t
	}
	if entranceAt != nil {
		e := expectedCheckout(*entranceAt, specialDay, cfg)
		expectedAt = &e
	}

	if entranceAt != nil && exitAt != nil {
		summary.Minutes25, summary.Minutes50 = classifyOvertime(*entranceAt, *exitAt, *expectedAt, specialDay)
	}

	// The exit record takes priority for id and estado: it is the one
	// operators edit and approve after the fact.
	if exit != nil {
		summary.PunchID = exit.ID
		summary.Estado = exit.Estado
	} else if entrance != nil {
		summary.PunchID = entrance.ID
		summary.Estado = entrance.Estado
	}

	if entrance != nil {
		summary.Name = entrance.EmployeeName
		summary.Rut = entrance.EmployeeRut
	} else if exit != nil {
		summary.Name = exit.EmployeeName
		summary.Rut = exit.EmployeeRut
	}

	summary.Entrance = formatClock(entranceAt)
	summary.Exit = formatClock(exitAt)
	summary.ExpectedCheckoutTime = formatClock(expectedAt)

	var obs strings.Builder
	if specialDay {
		obs.WriteString("Non-working day. ")
		if summary.Minutes50 > 0 {
			obs.WriteString("Overtime calculated at 50%. ")
		}
	}
	if entrance == nil {
		obs.WriteString("Missing entrance mark. ")
	}
	if exit == nil {
		obs.WriteString("Missing exit mark. ")
	}
	if entranceAt != nil && exitAt != nil && exitAt.Before(*entranceAt) {
		obs.WriteString("Inconsistency: exit before entrance. ")
	}
	summary.Observations = strings.TrimSpace(obs.String())

	return summary
}

// formatClock renders a wall-clock time as HH:MM:SS. Zero seconds keep the
// explicit :00 suffix.
func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("15:04:05")
	return &v
}
