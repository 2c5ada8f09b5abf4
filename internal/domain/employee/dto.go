package employee

import (
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Rut          string  `json:"rut"`
	FullName     string  `json:"nombre_completo"`
	Cargo        *string `json:"cargo"`
	Departamento *string `json:"departamento"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidRut(r.Rut) {
		errs = append(errs, validator.ValidationError{
			Field:   "rut",
			Message: "rut is not valid",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre_completo",
			Message: "nombre_completo is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"nombre_completo"`
	Cargo        *string `json:"cargo"`
	Departamento *string `json:"departamento"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Rut          string  `json:"rut"`
	FullName     string  `json:"nombre_completo"`
	Cargo        *string `json:"cargo"`
	Departamento *string `json:"departamento"`
	Activo       bool    `json:"activo"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Rut:          e.Rut,
		FullName:     e.FullName,
		Cargo:        e.Cargo,
		Departamento: e.Departamento,
		Activo:       e.Activo,
	}
}
