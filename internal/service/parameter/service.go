package parameter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
)

// Service resolves named configuration values. A missing or malformed key
// is a configuration error for the computation that asked for it; no
// defaults are substituted.
type Service struct {
	parameter.ParameterRepository
}

func NewService(parameterRepository parameter.ParameterRepository) *Service {
	return &Service{ParameterRepository: parameterRepository}
}

func (s *Service) Value(ctx context.Context, clave string) (string, error) {
	p, err := s.ParameterRepository.GetByKey(ctx, clave)
	if err != nil {
		return "", fmt.Errorf("parameter %q: %w", clave, err)
	}
	return p.Valor, nil
}

func (s *Service) IntValue(ctx context.Context, clave string) (int, error) {
	raw, err := s.Value(ctx, clave)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q has value %q: %w", clave, raw, parameter.ErrParameterNotNumeric)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]parameter.SystemParameter, error) {
	return s.ParameterRepository.List(ctx)
}

func (s *Service) UpdateValues(ctx context.Context, updates []parameter.UpdateParameterRequest) ([]parameter.SystemParameter, error) {
	result := make([]parameter.SystemParameter, 0, len(updates))
	for _, u := range updates {
		updated, err := s.ParameterRepository.Update(ctx, u.ID, u.Valor)
		if err != nil {
			return nil, fmt.Errorf("failed to update parameter %s: %w", u.ID, err)
		}
		result = append(result, updated)
	}
	return result, nil
}
