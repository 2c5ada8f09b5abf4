package employee

import (
	"context"
	"fmt"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
)

type Service struct {
	employee.EmployeeRepository
}

func NewService(employeeRepository employee.EmployeeRepository) *Service {
	return &Service{EmployeeRepository: employeeRepository}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Rut:          req.Rut,
		FullName:     req.FullName,
		Cargo:        req.Cargo,
		Departamento: req.Departamento,
		Activo:       true,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *Service) GetByRut(ctx context.Context, rut string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByRut(ctx, rut)
}

func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Cargo != nil {
		emp.Cargo = req.Cargo
	}
	if req.Departamento != nil {
		emp.Departamento = req.Departamento
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", id, err)
	}
	return emp, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", id, err)
	}
	return nil
}
