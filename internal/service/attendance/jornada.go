package attendance

import (
	"time"
)

const (
	// Entrances before 08:00 are clamped up to 08:00 before the jornada
	// is applied.
	normalEntranceHour = 8

	// Night-shift window boundaries, minutes from midnight. Extra work
	// whose exit falls after 21:00 or before 06:00 pays at the 50% rate.
	nightStartMinutes = 21 * 60
	nightEndMinutes   = 6 * 60
)

// earliestExitTiebreak keeps the legacy rule of treating the first SALIDA
// of the day as authoritative rather than the last. Later punches stay
// visible as unofficial duplicates that operators can promote by hand.
const earliestExitTiebreak = true

type jornadaConfig struct {
	WeeklyHours      int
	ToleranceMinutes int
}

// dailyMinutes is the contracted daily work period over a five-day week.
// Integer division truncates, matching payroll practice.
func (c jornadaConfig) dailyMinutes() int {
	return c.WeeklyHours * 60 / 5
}

// expectedCheckout derives the expected exit instant for an entrance. On
// a weekend or holiday no jornada applies and the entrance itself is
// returned: any work that day is wholly overtime. The result is a full
// instant, not a bare wall-clock time, so a jornada that runs past
// midnight stays unambiguous; display layers extract the time of day.
func expectedCheckout(entrance time.Time, specialDay bool, cfg jornadaConfig) time.Time {
	if specialDay {
		return entrance
	}

	normalized := entrance
	eight := time.Date(entrance.Year(), entrance.Month(), entrance.Day(),
		normalEntranceHour, 0, 0, 0, entrance.Location())
	if normalized.Before(eight) {
		normalized = eight
	}

	return normalized.Add(time.Duration(cfg.dailyMinutes()+cfg.ToleranceMinutes) * time.Minute)
}

// classifyOvertime splits worked excess into the 25% and 50% buckets.
// The split is all-or-nothing per record: a single exit lands entirely in
// one bucket, never proportionally across the night boundary. Callers
// guarantee exit is present.
func classifyOvertime(entrance, exit, expected time.Time, specialDay bool) (minutes25, minutes50 int) {
	// On special days every elapsed minute is overtime at 50%.
	if specialDay {
		return 0, clampMinutes(exit.Sub(entrance))
	}

	// Leaving before the expected checkout earns nothing, even after a
	// long day started late.
	if exit.Before(expected) {
		return 0, 0
	}

	extra := clampMinutes(exit.Sub(expected))
	if inNightWindow(exit) {
		return 0, extra
	}
	return extra, 0
}

func clampMinutes(d time.Duration) int {
	m := int(d.Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// inNightWindow reports whether the exit's time of day is strictly after
// 21:00 or strictly before 06:00.
func inNightWindow(exit time.Time) bool {
	secondOfDay := exit.Hour()*3600 + exit.Minute()*60 + exit.Second()
	return secondOfDay > nightStartMinutes*60 || secondOfDay < nightEndMinutes*60
}
