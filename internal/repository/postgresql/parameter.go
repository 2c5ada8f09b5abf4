package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/database"
)

type parameterRepository struct {
	db *database.DB
}

func NewParameterRepository(db *database.DB) parameter.ParameterRepository {
	return &parameterRepository{db: db}
}

// GetByKey implements parameter.ParameterRepository.
func (r *parameterRepository) GetByKey(ctx context.Context, clave string) (parameter.SystemParameter, error) {
	q := GetQuerier(ctx, r.db)

	var p parameter.SystemParameter
	err := q.QueryRow(ctx, `
		SELECT id, clave, valor, updated_at
		FROM system_parameters
		WHERE clave = $1
	`, clave).Scan(&p.ID, &p.Clave, &p.Valor, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return parameter.SystemParameter{}, parameter.ErrParameterNotFound
		}
		return parameter.SystemParameter{}, fmt.Errorf("failed to get parameter by key: %w", err)
	}
	return p, nil
}

// List implements parameter.ParameterRepository.
func (r *parameterRepository) List(ctx context.Context) ([]parameter.SystemParameter, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, clave, valor, updated_at
		FROM system_parameters
		ORDER BY clave ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list parameters: %w", err)
	}
	defer rows.Close()

	var params []parameter.SystemParameter
	for rows.Next() {
		var p parameter.SystemParameter
		if err := rows.Scan(&p.ID, &p.Clave, &p.Valor, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan parameter row: %w", err)
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

// Update implements parameter.ParameterRepository.
func (r *parameterRepository) Update(ctx context.Context, id string, valor string) (parameter.SystemParameter, error) {
	q := GetQuerier(ctx, r.db)

	var p parameter.SystemParameter
	err := q.QueryRow(ctx, `
		UPDATE system_parameters
		SET valor = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, clave, valor, updated_at
	`, id, valor).Scan(&p.ID, &p.Clave, &p.Valor, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return parameter.SystemParameter{}, parameter.ErrParameterNotFound
		}
		return parameter.SystemParameter{}, fmt.Errorf("failed to update parameter: %w", err)
	}
	return p, nil
}
