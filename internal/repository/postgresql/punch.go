package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `
	p.id, p.employee_id, p.fecha_hora, p.tipo, p.estado, p.es_oficial, p.origen,
	p.created_at, p.updated_at,
	e.nombre_completo AS employee_name,
	e.rut AS employee_rut
`

func scanPunch(row pgx.Row) (attendance.Punch, error) {
	var p attendance.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Timestamp, &p.Kind, &p.Estado, &p.EsOficial, &p.Origin,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeRut,
	)
	return p, err
}

func collectPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	defer rows.Close()

	var punches []attendance.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// Create implements attendance.PunchRepository. The id is generated
// app-side so clock gateways can log it before the insert is confirmed.
func (r *punchRepository) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	punch.ID = uuid.New().String()
	query := `
		INSERT INTO punches (id, employee_id, fecha_hora, tipo, estado, es_oficial, origen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		punch.ID,
		punch.EmployeeID,
		punch.Timestamp,
		punch.Kind,
		punch.Estado,
		punch.EsOficial,
		punch.Origin,
	).Scan(&punch.CreatedAt, &punch.UpdatedAt)
	if err != nil {
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// GetByID implements attendance.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPunch(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Punch{}, attendance.ErrPunchNotFound
		}
		return attendance.Punch{}, fmt.Errorf("failed to get punch by id: %w", err)
	}
	return p, nil
}

// ListByDate implements attendance.PunchRepository.
func (r *punchRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.fecha_hora::date = $1::date
		ORDER BY p.fecha_hora ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by date: %w", err)
	}
	return collectPunches(rows)
}

// ListByEmployeeAndDate implements attendance.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.fecha_hora::date = $2::date
		ORDER BY p.fecha_hora ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by employee and date: %w", err)
	}
	return collectPunches(rows)
}

// ListByRutAndRange implements attendance.PunchRepository.
func (r *punchRepository) ListByRutAndRange(ctx context.Context, rut string, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE e.rut = $1
		  AND p.fecha_hora >= $2
		  AND p.fecha_hora < $3
		ORDER BY p.fecha_hora ASC
	`

	rows, err := q.Query(ctx, query, rut, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by rut: %w", err)
	}
	return collectPunches(rows)
}

// ListByPartialRutAndRange implements attendance.PunchRepository.
func (r *punchRepository) ListByPartialRutAndRange(ctx context.Context, rutPrefix string, from, to time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE e.rut LIKE $1 || '%'
		  AND p.fecha_hora >= $2
		  AND p.fecha_hora < $3
		ORDER BY p.fecha_hora ASC
	`

	rows, err := q.Query(ctx, query, rutPrefix, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by partial rut: %w", err)
	}
	return collectPunches(rows)
}

// FindOfficial implements attendance.PunchRepository.
func (r *punchRepository) FindOfficial(ctx context.Context, employeeID string, date time.Time, kind string) (*attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.fecha_hora::date = $2::date
		  AND p.tipo = $3
		  AND p.es_oficial
		LIMIT 1
	`

	p, err := scanPunch(q.QueryRow(ctx, query, employeeID, date, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no official mark is not an error
		}
		return nil, fmt.Errorf("failed to find official punch: %w", err)
	}
	return &p, nil
}

// PromoteOfficial implements attendance.PunchRepository. The candidate's
// (employee, date, kind) row group is locked for the duration of the
// transaction so concurrent promotions serialize and at most one punch per
// group ends up official.
func (r *punchRepository) PromoteOfficial(ctx context.Context, id string) (attendance.Punch, error) {
	var promoted attendance.Punch

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var employeeID, kind string
		var ts time.Time
		err := q.QueryRow(txCtx, `
			SELECT employee_id, fecha_hora, tipo
			FROM punches
			WHERE id = $1
			FOR UPDATE
		`, id).Scan(&employeeID, &ts, &kind)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrPunchNotFound
			}
			return fmt.Errorf("failed to lock punch %s: %w", id, err)
		}

		// Lock the whole group, then demote any previous holder.
		if _, err := q.Exec(txCtx, `
			SELECT id FROM punches
			WHERE employee_id = $1
			  AND fecha_hora::date = $2::date
			  AND tipo = $3
			FOR UPDATE
		`, employeeID, ts, kind); err != nil {
			return fmt.Errorf("failed to lock punch group: %w", err)
		}

		if _, err := q.Exec(txCtx, `
			UPDATE punches
			SET es_oficial = false, updated_at = NOW()
			WHERE employee_id = $1
			  AND fecha_hora::date = $2::date
			  AND tipo = $3
			  AND es_oficial
			  AND id <> $4
		`, employeeID, ts, kind, id); err != nil {
			return fmt.Errorf("failed to demote previous official punch: %w", err)
		}

		if _, err := q.Exec(txCtx, `
			UPDATE punches
			SET es_oficial = true, updated_at = NOW()
			WHERE id = $1
		`, id); err != nil {
			return fmt.Errorf("failed to promote punch: %w", err)
		}

		query := `
			SELECT ` + punchColumns + `
			FROM punches p
			JOIN employees e ON e.id = p.employee_id
			WHERE p.id = $1
		`
		promoted, err = scanPunch(q.QueryRow(txCtx, query, id))
		if err != nil {
			return fmt.Errorf("failed to reload promoted punch: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.Punch{}, err
	}

	return promoted, nil
}

// SetOfficial implements attendance.PunchRepository.
func (r *punchRepository) SetOfficial(ctx context.Context, id string, official bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE punches
		SET es_oficial = $2, updated_at = NOW()
		WHERE id = $1
	`, id, official)
	if err != nil {
		return fmt.Errorf("failed to set official flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}

// SetEstado implements attendance.PunchRepository.
func (r *punchRepository) SetEstado(ctx context.Context, id string, estado string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE punches
		SET estado = $2, updated_at = NOW()
		WHERE id = $1
	`, id, estado)
	if err != nil {
		return fmt.Errorf("failed to set estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}
	return nil
}
