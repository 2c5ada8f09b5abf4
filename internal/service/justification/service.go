package justification

import (
	"context"
	"fmt"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/justification"
)

// Backfiller synthesizes attendance for an approved justification's range.
type Backfiller interface {
	BackfillRange(ctx context.Context, employeeID string, inicio, termino time.Time, reason string) error
}

type Service struct {
	justification.JustificationRepository
	justification.PermitTypeRepository
	employee.EmployeeRepository
	backfiller Backfiller
}

func NewService(
	justificationRepository justification.JustificationRepository,
	permitTypeRepository justification.PermitTypeRepository,
	employeeRepository employee.EmployeeRepository,
	backfiller Backfiller,
) *Service {
	return &Service{
		JustificationRepository: justificationRepository,
		PermitTypeRepository:    permitTypeRepository,
		EmployeeRepository:      employeeRepository,
		backfiller:              backfiller,
	}
}

func (s *Service) Create(ctx context.Context, req justification.CreateJustificationRequest) (justification.Justification, error) {
	if err := req.Validate(); err != nil {
		return justification.Justification{}, err
	}

	emp, err := s.EmployeeRepository.GetByRut(ctx, req.Rut)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to get employee by rut: %w", err)
	}

	permitType, err := s.PermitTypeRepository.GetByDescripcion(ctx, req.TipoPermiso)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to get permit type: %w", err)
	}

	inicio, _ := time.Parse(time.DateOnly, req.FechaInicio)
	termino, _ := time.Parse(time.DateOnly, req.FechaTermino)

	overlapping, err := s.JustificationRepository.CountOverlapping(ctx, emp.ID, inicio, termino)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to check overlapping justifications: %w", err)
	}
	if overlapping > 0 {
		return justification.Justification{}, fmt.Errorf(
			"range %s..%s: %w", req.FechaInicio, req.FechaTermino, justification.ErrOverlappingJustification)
	}

	if permitType.RequiereAdjuntos && req.AttachmentURL == nil {
		return justification.Justification{}, fmt.Errorf(
			"permit type %s: %w", permitType.Descripcion, justification.ErrAttachmentRequired)
	}

	created, err := s.JustificationRepository.Create(ctx, justification.Justification{
		EmployeeID:    emp.ID,
		PermitTypeID:  permitType.ID,
		FechaInicio:   inicio,
		FechaTermino:  termino,
		Motivo:        req.Motivo,
		AttachmentURL: req.AttachmentURL,
		Estado:        justification.EstadoPendiente,
	})
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return created, nil
}

func (s *Service) ListByRut(ctx context.Context, rut string) ([]justification.Justification, error) {
	return s.JustificationRepository.ListByEmployeeRut(ctx, rut)
}

func (s *Service) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	return s.JustificationRepository.GetByID(ctx, id)
}

func (s *Service) ListPermitTypes(ctx context.Context) ([]justification.PermitType, error) {
	return s.PermitTypeRepository.List(ctx)
}

// UpdateEstado resolves a justification. Transitioning to APROBADO
// triggers the attendance backfill over the justified range before the
// state is persisted, so a failed backfill leaves the record unresolved
// and retryable.
func (s *Service) UpdateEstado(ctx context.Context, id string, estado justification.Estado) (justification.Justification, error) {
	j, err := s.JustificationRepository.GetByID(ctx, id)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to get justification %s: %w", id, err)
	}

	if j.Estado == justification.EstadoAprobado || j.Estado == justification.EstadoRechazado {
		return justification.Justification{}, justification.ErrAlreadyResolved
	}

	if estado == justification.EstadoAprobado {
		if err := s.backfiller.BackfillRange(ctx, j.EmployeeID, j.FechaInicio, j.FechaTermino, j.PermitTypeLabel); err != nil {
			return justification.Justification{}, fmt.Errorf("failed to backfill attendance for justification %s: %w", id, err)
		}
	}

	if err := s.JustificationRepository.UpdateEstado(ctx, id, estado); err != nil {
		return justification.Justification{}, fmt.Errorf("failed to update justification estado: %w", err)
	}

	j.Estado = estado
	return j, nil
}
