package attendance

import (
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
)

// DaySummary is the reconciled view of one employee on one calendar date.
// It is computed fresh per query and never persisted.
type DaySummary struct {
	PunchID string // id of the exit punch when present, else the entrance
	Day     time.Time
	Date    string // D/M/YYYY display form
	Name    string
	Rut     string

	Entrance *string // HH:MM:SS
	Exit     *string

	// Raw computed checkout; use DisplayExpectedCheckout for presentation.
	ExpectedCheckoutTime *string

	Minutes25    int
	Minutes50    int
	Estado       string
	SpecialDay   bool
	Observations string
}

const expectedCheckoutNotApplicable = "not applicable"

// DisplayExpectedCheckout overrides the stored value on weekends and
// holidays, where no jornada applies. Presentation rule only; the raw
// computed value stays in ExpectedCheckoutTime.
func (s DaySummary) DisplayExpectedCheckout() *string {
	if s.SpecialDay {
		na := expectedCheckoutNotApplicable
		return &na
	}
	return s.ExpectedCheckoutTime
}

// TotalOvertimeMinutes is the counted total: zero unless the record is
// AUTORIZADO. The raw minute fields stay populated regardless so that
// operators can review what a pending or rejected record would pay.
func (s DaySummary) TotalOvertimeMinutes() int {
	if s.Estado == EstadoAutorizado {
		return s.Minutes25 + s.Minutes50
	}
	return 0
}

type DaySummaryResponse struct {
	PunchID          string  `json:"id_asistencia"`
	Date             string  `json:"fecha"`
	Name             string  `json:"nombre"`
	Rut              string  `json:"rut"`
	Entrance         *string `json:"entrada"`
	Exit             *string `json:"salida"`
	ExpectedCheckout *string `json:"salida_esperada"`
	Minutes25        int     `json:"minutos_extra_25"`
	Minutes50        int     `json:"minutos_extra_50"`
	TotalMinutes     int     `json:"total_minutos_extra"`
	Estado           string  `json:"estado"`
	SpecialDay       bool    `json:"es_dia_especial"`
	Observations     string  `json:"observaciones"`
}

func (s DaySummary) ToResponse() DaySummaryResponse {
	return DaySummaryResponse{
		PunchID:          s.PunchID,
		Date:             s.Date,
		Name:             s.Name,
		Rut:              s.Rut,
		Entrance:         s.Entrance,
		Exit:             s.Exit,
		ExpectedCheckout: s.DisplayExpectedCheckout(),
		Minutes25:        s.Minutes25,
		Minutes50:        s.Minutes50,
		TotalMinutes:     s.TotalOvertimeMinutes(),
		Estado:           s.Estado,
		SpecialDay:       s.SpecialDay,
		Observations:     s.Observations,
	}
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"id_empleado"`
	Rut        string  `json:"rut,omitempty"`
	Name       string  `json:"nombre,omitempty"`
	Timestamp  string  `json:"fecha_hora"`
	Kind       string  `json:"tipo"`
	Estado     string  `json:"estado"`
	EsOficial  bool    `json:"es_oficial"`
	Origin     *string `json:"origen,omitempty"`
}

func (p Punch) ToResponse() PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Rut:        p.EmployeeRut,
		Name:       p.EmployeeName,
		Timestamp:  p.Timestamp.Format("2006-01-02T15:04:05"),
		Kind:       p.Kind,
		Estado:     p.Estado,
		EsOficial:  p.EsOficial,
		Origin:     p.Origin,
	}
}

type CreatePunchRequest struct {
	Rut       string `json:"rut"`
	Kind      string `json:"tipo"`
	Timestamp string `json:"fecha_hora"` // 2006-01-02T15:04:05
	EsOficial bool   `json:"es_oficial"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Rut) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is required",
		})
	}

	if !ValidKind(r.Kind) {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo",
			Message: "tipo must be ENTRADA, SALIDA or MARCA",
		})
	}

	if _, err := time.Parse("2006-01-02T15:04:05", r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha_hora",
			Message: "fecha_hora must be in format 2006-01-02T15:04:05",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

func (r *UpdateEstadoRequest) Validate() error {
	if !ValidEstado(r.Estado) {
		return validator.ValidationErrors{{
			Field:   "estado",
			Message: "estado must be AUTORIZADO, RECHAZADO or PENDIENTE",
		}}
	}
	return nil
}

type UpdateOficialRequest struct {
	EsOficial bool `json:"es_oficial"`
}
