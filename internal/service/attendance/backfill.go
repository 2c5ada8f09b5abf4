package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
)

// BackfillRange synthesizes official attendance for every date in the
// inclusive range, attributed to the justification's reason. Marks are
// created official and AUTORIZADO directly; there are no duplicates to
// resolve. Idempotent per (employee, date, kind): an existing official
// mark is left untouched and an existing unofficial punch is promoted in
// place rather than duplicated.
func (s *Service) BackfillRange(ctx context.Context, employeeID string, inicio, termino time.Time, reason string) error {
	cfg, err := s.jornada(ctx)
	if err != nil {
		return err
	}
	jornadaLen := time.Duration(cfg.dailyMinutes()+cfg.ToleranceMinutes) * time.Minute

	last := startOfDay(termino)
	for date := startOfDay(inicio); !date.After(last); date = date.AddDate(0, 0, 1) {
		entranceAt := time.Date(date.Year(), date.Month(), date.Day(),
			normalEntranceHour, 0, 0, 0, date.Location())
		exitAt := entranceAt.Add(jornadaLen)

		if err := s.backfillMark(ctx, employeeID, date, attendance.KindEntrada, entranceAt, reason); err != nil {
			return err
		}
		if err := s.backfillMark(ctx, employeeID, date, attendance.KindSalida, exitAt, reason); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) backfillMark(ctx context.Context, employeeID string, date time.Time, kind string, at time.Time, reason string) error {
	official, err := s.PunchRepository.FindOfficial(ctx, employeeID, date, kind)
	if err != nil {
		return fmt.Errorf("failed to find official %s mark for backfill: %w", kind, err)
	}
	if official != nil {
		return nil
	}

	existing, err := s.PunchRepository.ListByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to list punches for backfill: %w", err)
	}

	// Overwrite the weaker record in place: promote and authorize it.
	if cand := ResolveCandidate(existing, kind); cand != nil {
		if _, err := s.PunchRepository.PromoteOfficial(ctx, cand.ID); err != nil {
			return fmt.Errorf("failed to promote punch %s during backfill: %w", cand.ID, err)
		}
		if cand.Estado != attendance.EstadoAutorizado {
			if err := s.PunchRepository.SetEstado(ctx, cand.ID, attendance.EstadoAutorizado); err != nil {
				return fmt.Errorf("failed to authorize punch %s during backfill: %w", cand.ID, err)
			}
		}
		return nil
	}

	if _, err := s.PunchRepository.Create(ctx, attendance.Punch{
		EmployeeID: employeeID,
		Timestamp:  at,
		Kind:       kind,
		Estado:     attendance.EstadoAutorizado,
		EsOficial:  true,
		Origin:     &reason,
	}); err != nil {
		return fmt.Errorf("failed to create backfill %s mark: %w", kind, err)
	}
	return nil
}
