package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/justification"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/database"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

const justificationColumns = `
	j.id, j.employee_id, j.permit_type_id, j.fecha_inicio, j.fecha_termino,
	j.motivo, j.adjunto_url, j.estado, j.created_at, j.updated_at,
	e.nombre_completo AS employee_name,
	e.rut AS employee_rut,
	t.descripcion AS permit_type_label
`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID, &j.EmployeeID, &j.PermitTypeID, &j.FechaInicio, &j.FechaTermino,
		&j.Motivo, &j.AttachmentURL, &j.Estado, &j.CreatedAt, &j.UpdatedAt,
		&j.EmployeeName, &j.EmployeeRut, &j.PermitTypeLabel,
	)
	return j, err
}

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	j.ID = uuid.New().String()

	err := q.QueryRow(ctx, `
		INSERT INTO justifications (id, employee_id, permit_type_id, fecha_inicio, fecha_termino, motivo, adjunto_url, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`,
		j.ID, j.EmployeeID, j.PermitTypeID, j.FechaInicio, j.FechaTermino,
		j.Motivo, j.AttachmentURL, j.Estado,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return j, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications j
		JOIN employees e ON e.id = j.employee_id
		JOIN permit_types t ON t.id = j.permit_type_id
		WHERE j.id = $1
	`

	j, err := scanJustification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification by id: %w", err)
	}
	return j, nil
}

// ListByEmployeeRut implements justification.JustificationRepository.
func (r *justificationRepository) ListByEmployeeRut(ctx context.Context, rut string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications j
		JOIN employees e ON e.id = j.employee_id
		JOIN permit_types t ON t.id = j.permit_type_id
		WHERE e.rut = $1
		ORDER BY j.fecha_inicio DESC
	`

	rows, err := q.Query(ctx, query, rut)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications by rut: %w", err)
	}
	defer rows.Close()

	var justifications []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification row: %w", err)
		}
		justifications = append(justifications, j)
	}
	return justifications, rows.Err()
}

// CountOverlapping implements justification.JustificationRepository.
// Rejected records do not block a new request over the same dates.
func (r *justificationRepository) CountOverlapping(ctx context.Context, employeeID string, inicio, termino time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM justifications
		WHERE employee_id = $1
		  AND estado <> 'RECHAZADO'
		  AND fecha_inicio <= $3::date
		  AND fecha_termino >= $2::date
	`, employeeID, inicio, termino).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping justifications: %w", err)
	}
	return count, nil
}

// UpdateEstado implements justification.JustificationRepository.
func (r *justificationRepository) UpdateEstado(ctx context.Context, id string, estado justification.Estado) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE justifications SET estado = $2, updated_at = NOW() WHERE id = $1
	`, id, estado)
	if err != nil {
		return fmt.Errorf("failed to update justification estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}
	return nil
}

type permitTypeRepository struct {
	db *database.DB
}

func NewPermitTypeRepository(db *database.DB) justification.PermitTypeRepository {
	return &permitTypeRepository{db: db}
}

// GetByDescripcion implements justification.PermitTypeRepository.
func (r *permitTypeRepository) GetByDescripcion(ctx context.Context, descripcion string) (justification.PermitType, error) {
	q := GetQuerier(ctx, r.db)

	var t justification.PermitType
	err := q.QueryRow(ctx, `
		SELECT id, descripcion, requiere_adjuntos, dias_maximos_por_anio
		FROM permit_types
		WHERE descripcion = $1
	`, descripcion).Scan(&t.ID, &t.Descripcion, &t.RequiereAdjuntos, &t.DiasMaximosPorAnio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.PermitType{}, justification.ErrPermitTypeNotFound
		}
		return justification.PermitType{}, fmt.Errorf("failed to get permit type: %w", err)
	}
	return t, nil
}

// List implements justification.PermitTypeRepository.
func (r *permitTypeRepository) List(ctx context.Context) ([]justification.PermitType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, descripcion, requiere_adjuntos, dias_maximos_por_anio
		FROM permit_types
		ORDER BY descripcion ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list permit types: %w", err)
	}
	defer rows.Close()

	var types []justification.PermitType
	for rows.Next() {
		var t justification.PermitType
		if err := rows.Scan(&t.ID, &t.Descripcion, &t.RequiereAdjuntos, &t.DiasMaximosPorAnio); err != nil {
			return nil, fmt.Errorf("failed to scan permit type row: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
