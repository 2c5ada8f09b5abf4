package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
)

// buildSummaries reconciles a pull of punches into one DaySummary per
// (employee, date) group, including one-sided groups. A failure in one
// group is logged and skipped so it cannot abort the rest of the batch.
func (s *Service) buildSummaries(ctx context.Context, punches []attendance.Punch, cfg jornadaConfig) []attendance.DaySummary {
	type groupKey struct {
		employeeID string
		day        string
	}

	groups := make(map[groupKey][]attendance.Punch)
	var order []groupKey // stable first-seen order; final ordering is the caller's concern
	for _, p := range punches {
		k := groupKey{p.EmployeeID, p.Date().Format(time.DateOnly)}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], p)
	}

	summaries := make([]attendance.DaySummary, 0, len(order))
	for _, k := range order {
		summary, err := s.summarizeDay(ctx, groups[k], cfg)
		if err != nil {
			slog.Error("skipping attendance group",
				"employee_id", k.employeeID,
				"date", k.day,
				"error", err,
			)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func (s *Service) summarizeDay(ctx context.Context, dayPunches []attendance.Punch, cfg jornadaConfig) (attendance.DaySummary, error) {
	first := dayPunches[0]
	date := first.Date()

	entrance, err := s.officialForKind(ctx, first.EmployeeID, date, attendance.KindEntrada, dayPunches)
	if err != nil {
		return attendance.DaySummary{}, err
	}

	exit, err := s.officialForKind(ctx, first.EmployeeID, date, attendance.KindSalida, dayPunches)
	if err != nil {
		return attendance.DaySummary{}, err
	}

	specialDay, err := s.calendar.IsWeekendOrHoliday(ctx, date)
	if err != nil {
		return attendance.DaySummary{}, fmt.Errorf("failed to classify day %s: %w", date.Format(time.DateOnly), err)
	}

	return buildSummary(date, entrance, exit, specialDay, cfg), nil
}

// officialForKind is the resolve/commit pair for one side of a day: a pure
// selection over the group's punches, then a single promotion write when no
// official mark existed yet. Idempotent: once a mark is official it is
// returned unchanged on every later call.
func (s *Service) officialForKind(ctx context.Context, employeeID string, date time.Time, kind string, dayPunches []attendance.Punch) (*attendance.Punch, error) {
	official, err := s.PunchRepository.FindOfficial(ctx, employeeID, date, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to find official %s mark: %w", kind, err)
	}
	if official != nil {
		return official, nil
	}

	candidate := ResolveCandidate(dayPunches, kind)
	if candidate == nil {
		// Missing side, not an error; the summary records it as an
		// observation.
		return nil, nil
	}

	promoted, err := s.PunchRepository.PromoteOfficial(ctx, candidate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to promote %s mark %s: %w", kind, candidate.ID, err)
	}
	return &promoted, nil
}

// ResolveCandidate picks the punch that would become official for the kind
// without touching storage, so read-only callers can preview the outcome.
// Candidates are taken in ascending timestamp order for every kind; for
// SALIDA that means the first clock-out of the day wins (see
// earliestExitTiebreak).
func ResolveCandidate(dayPunches []attendance.Punch, kind string) *attendance.Punch {
	var candidates []attendance.Punch
	for _, p := range dayPunches {
		if p.Kind == kind {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Timestamp.Before(candidates[j].Timestamp)
	})

	if kind == attendance.KindSalida && !earliestExitTiebreak {
		return &candidates[len(candidates)-1]
	}
	return &candidates[0]
}
