package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
)

// CalendarOracle answers day-type questions for the engine.
type CalendarOracle interface {
	IsWeekendOrHoliday(ctx context.Context, date time.Time) (bool, error)
}

// ParameterSource resolves jornada configuration. A missing key must
// surface as an error, never as a default.
type ParameterSource interface {
	IntValue(ctx context.Context, clave string) (int, error)
}

// Service is the attendance reconciliation and overtime engine. Each
// summary call is a pure function of the punches and configuration read at
// call time; nothing is cached between invocations.
type Service struct {
	attendance.PunchRepository
	employee.EmployeeRepository
	calendar CalendarOracle
	params   ParameterSource
}

func NewService(
	punchRepository attendance.PunchRepository,
	employeeRepository employee.EmployeeRepository,
	calendar CalendarOracle,
	params ParameterSource,
) *Service {
	return &Service{
		PunchRepository:    punchRepository,
		EmployeeRepository: employeeRepository,
		calendar:           calendar,
		params:             params,
	}
}

// jornada reads the configured work-week parameters. Configuration errors
// fail the whole request up front rather than being swallowed per group.
func (s *Service) jornada(ctx context.Context) (jornadaConfig, error) {
	weekly, err := s.params.IntValue(ctx, parameter.KeyWeeklyHours)
	if err != nil {
		return jornadaConfig{}, err
	}
	tolerance, err := s.params.IntValue(ctx, parameter.KeyToleranceMinutes)
	if err != nil {
		return jornadaConfig{}, err
	}
	return jornadaConfig{WeeklyHours: weekly, ToleranceMinutes: tolerance}, nil
}

// SummaryByDate reconciles every employee's punches on one calendar date.
func (s *Service) SummaryByDate(ctx context.Context, date time.Time) ([]attendance.DaySummary, error) {
	cfg, err := s.jornada(ctx)
	if err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for %s: %w", date.Format(time.DateOnly), err)
	}

	return s.buildSummaries(ctx, punches, cfg), nil
}

// SummaryByRutAndDate reconciles one employee's punches on one date.
func (s *Service) SummaryByRutAndDate(ctx context.Context, rut string, date time.Time) ([]attendance.DaySummary, error) {
	return s.SummaryByRutAndRange(ctx, rut, date, date)
}

// SummaryByRutAndRange reconciles one employee's punches over an inclusive
// date range.
func (s *Service) SummaryByRutAndRange(ctx context.Context, rut string, from, to time.Time) ([]attendance.DaySummary, error) {
	cfg, err := s.jornada(ctx)
	if err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByRutAndRange(ctx, rut, startOfDay(from), startOfDay(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for rut %s: %w", rut, err)
	}

	return s.buildSummaries(ctx, punches, cfg), nil
}

// SummaryByPartialRut is the flexible operator search: rut matched by
// prefix over an inclusive date range.
func (s *Service) SummaryByPartialRut(ctx context.Context, rutPrefix string, from, to time.Time) ([]attendance.DaySummary, error) {
	cfg, err := s.jornada(ctx)
	if err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.ListByPartialRutAndRange(ctx, rutPrefix, startOfDay(from), startOfDay(to).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for rut prefix %s: %w", rutPrefix, err)
	}

	return s.buildSummaries(ctx, punches, cfg), nil
}

// CreatePunch registers a manual mark. When the new punch is official it
// takes over from any previous official holder for the same
// (employee, date, kind) slot.
func (s *Service) CreatePunch(ctx context.Context, req attendance.CreatePunchRequest) (attendance.Punch, error) {
	if err := req.Validate(); err != nil {
		return attendance.Punch{}, err
	}

	emp, err := s.EmployeeRepository.GetByRut(ctx, req.Rut)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to get employee by rut: %w", err)
	}

	ts, err := time.Parse("2006-01-02T15:04:05", req.Timestamp)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to parse punch timestamp: %w", err)
	}

	created, err := s.PunchRepository.Create(ctx, attendance.Punch{
		EmployeeID: emp.ID,
		Timestamp:  ts,
		Kind:       req.Kind,
		Estado:     attendance.EstadoAutorizado,
		EsOficial:  false,
	})
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	if req.EsOficial {
		created, err = s.PunchRepository.PromoteOfficial(ctx, created.ID)
		if err != nil {
			return attendance.Punch{}, fmt.Errorf("failed to promote punch to official: %w", err)
		}
	}

	return created, nil
}

// UpdateEstado changes the approval state of a punch.
func (s *Service) UpdateEstado(ctx context.Context, id string, req attendance.UpdateEstadoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.PunchRepository.GetByID(ctx, id); err != nil {
		return fmt.Errorf("failed to get punch %s: %w", id, err)
	}

	if err := s.PunchRepository.SetEstado(ctx, id, req.Estado); err != nil {
		return fmt.Errorf("failed to update estado for punch %s: %w", id, err)
	}
	return nil
}

// UpdateOficial flips the official flag. Turning a punch official goes
// through promotion so the previous holder is demoted in the same step.
func (s *Service) UpdateOficial(ctx context.Context, id string, oficial bool) (attendance.Punch, error) {
	punch, err := s.PunchRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to get punch %s: %w", id, err)
	}

	if oficial {
		promoted, err := s.PunchRepository.PromoteOfficial(ctx, id)
		if err != nil {
			return attendance.Punch{}, fmt.Errorf("failed to promote punch %s: %w", id, err)
		}
		return promoted, nil
	}

	if err := s.PunchRepository.SetOfficial(ctx, id, false); err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to demote punch %s: %w", id, err)
	}
	punch.EsOficial = false
	return punch, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
