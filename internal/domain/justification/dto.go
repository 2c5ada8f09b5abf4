package justification

import (
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
)

type CreateJustificationRequest struct {
	Rut           string  `json:"rut"`
	TipoPermiso   string  `json:"tipo_permiso"`
	FechaInicio   string  `json:"fecha_inicio"`  // 2006-01-02
	FechaTermino  string  `json:"fecha_termino"` // 2006-01-02
	Motivo        string  `json:"motivo"`
	AttachmentURL *string `json:"adjunto_url"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Rut) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is required",
		})
	}
	if validator.IsEmpty(r.TipoPermiso) {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo_permiso",
			Message: "tipo_permiso is required",
		})
	}

	inicio, okInicio := validator.IsValidDate(r.FechaInicio)
	if !okInicio {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_inicio",
			Message: "fecha_inicio must be in format 2006-01-02",
		})
	}
	termino, okTermino := validator.IsValidDate(r.FechaTermino)
	if !okTermino {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_termino",
			Message: "fecha_termino must be in format 2006-01-02",
		})
	}
	if okInicio && okTermino && termino.Before(inicio) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_termino",
			Message: "fecha_termino must not be before fecha_inicio",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJustificationEstadoRequest struct {
	Estado string `json:"estado"`
}

func (r *UpdateJustificationEstadoRequest) Validate() error {
	if !ValidEstado(Estado(r.Estado)) {
		return validator.ValidationErrors{{
			Field:   "estado",
			Message: "estado must be PENDIENTE, EN_PROCESO, APROBADO or RECHAZADO",
		}}
	}
	return nil
}

type JustificationResponse struct {
	ID            string  `json:"id"`
	Rut           string  `json:"rut"`
	Nombre        string  `json:"nombre"`
	TipoPermiso   string  `json:"tipo_permiso"`
	FechaInicio   string  `json:"fecha_inicio"`
	FechaTermino  string  `json:"fecha_termino"`
	Motivo        string  `json:"motivo"`
	AttachmentURL *string `json:"adjunto_url"`
	Estado        string  `json:"estado"`
}

type PermitTypeResponse struct {
	ID                 string `json:"id"`
	Descripcion        string `json:"descripcion"`
	RequiereAdjuntos   bool   `json:"requiere_adjuntos"`
	DiasMaximosPorAnio *int   `json:"dias_maximos_por_anio"`
}

func (t PermitType) ToResponse() PermitTypeResponse {
	return PermitTypeResponse{
		ID:                 t.ID,
		Descripcion:        t.Descripcion,
		RequiereAdjuntos:   t.RequiereAdjuntos,
		DiasMaximosPorAnio: t.DiasMaximosPorAnio,
	}
}

func (j Justification) ToResponse() JustificationResponse {
	return JustificationResponse{
		ID:            j.ID,
		Rut:           j.EmployeeRut,
		Nombre:        j.EmployeeName,
		TipoPermiso:   j.PermitTypeLabel,
		FechaInicio:   j.FechaInicio.Format(time.DateOnly),
		FechaTermino:  j.FechaTermino.Format(time.DateOnly),
		Motivo:        j.Motivo,
		AttachmentURL: j.AttachmentURL,
		Estado:        string(j.Estado),
	}
}
