package holiday

import (
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Fecha       string `json:"fecha"` // 2006-01-02
	Descripcion string `json:"descripcion"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Fecha); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha must be in format 2006-01-02",
		})
	}
	if validator.IsEmpty(r.Descripcion) {
		errs = append(errs, validator.ValidationError{
			Field:   "descripcion",
			Message: "descripcion is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Fecha       string `json:"fecha"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

func (h Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Fecha:       h.Fecha.Format("2006-01-02"),
		Descripcion: h.Descripcion,
		Activo:      h.Activo,
	}
}
