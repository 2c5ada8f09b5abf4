package justification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/justification"
	"github.com/relojcontrol/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJustificationRepo struct {
	justifications []justification.Justification
	nextID         int
}

func (f *fakeJustificationRepo) Create(_ context.Context, j justification.Justification) (justification.Justification, error) {
	f.nextID++
	j.ID = fmt.Sprintf("j%d", f.nextID)
	f.justifications = append(f.justifications, j)
	return j, nil
}

func (f *fakeJustificationRepo) GetByID(_ context.Context, id string) (justification.Justification, error) {
	for _, j := range f.justifications {
		if j.ID == id {
			return j, nil
		}
	}
	return justification.Justification{}, justification.ErrJustificationNotFound
}

func (f *fakeJustificationRepo) ListByEmployeeRut(_ context.Context, rut string) ([]justification.Justification, error) {
	var out []justification.Justification
	for _, j := range f.justifications {
		if j.EmployeeRut == rut {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJustificationRepo) CountOverlapping(_ context.Context, employeeID string, inicio, termino time.Time) (int64, error) {
	var n int64
	for _, j := range f.justifications {
		if j.EmployeeID == employeeID && j.Estado != justification.EstadoRechazado &&
			!j.FechaInicio.After(termino) && !j.FechaTermino.Before(inicio) {
			n++
		}
	}
	return n, nil
}

func (f *fakeJustificationRepo) UpdateEstado(_ context.Context, id string, estado justification.Estado) error {
	for i, j := range f.justifications {
		if j.ID == id {
			f.justifications[i].Estado = estado
			return nil
		}
	}
	return justification.ErrJustificationNotFound
}

type fakePermitTypeRepo struct {
	types []justification.PermitType
}

func (f *fakePermitTypeRepo) GetByDescripcion(_ context.Context, descripcion string) (justification.PermitType, error) {
	for _, t := range f.types {
		if t.Descripcion == descripcion {
			return t, nil
		}
	}
	return justification.PermitType{}, justification.ErrPermitTypeNotFound
}

func (f *fakePermitTypeRepo) List(_ context.Context) ([]justification.PermitType, error) {
	return f.types, nil
}

type fakeEmployeeRepo struct {
	byRut map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByRut(_ context.Context, rut string) (employee.Employee, error) {
	e, ok := f.byRut[rut]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string) error        { return nil }

type backfillCall struct {
	employeeID      string
	inicio, termino time.Time
	reason          string
}

type fakeBackfiller struct {
	calls []backfillCall
	err   error
}

func (f *fakeBackfiller) BackfillRange(_ context.Context, employeeID string, inicio, termino time.Time, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, backfillCall{employeeID, inicio, termino, reason})
	return nil
}

const testRut = "12345678-5"

func newTestService(backfiller *fakeBackfiller) (*Service, *fakeJustificationRepo) {
	justificationRepo := &fakeJustificationRepo{}
	permitTypeRepo := &fakePermitTypeRepo{types: []justification.PermitType{
		{ID: "pt-1", Descripcion: "Licencia médica", RequiereAdjuntos: true},
		{ID: "pt-2", Descripcion: "Permiso administrativo", RequiereAdjuntos: false},
	}}
	employeeRepo := &fakeEmployeeRepo{byRut: map[string]employee.Employee{
		testRut: {ID: "emp-1", Rut: testRut, FullName: "Maria Soto", Activo: true},
	}}
	return NewService(justificationRepo, permitTypeRepo, employeeRepo, backfiller), justificationRepo
}

func validRequest() justification.CreateJustificationRequest {
	return justification.CreateJustificationRequest{
		Rut:          testRut,
		TipoPermiso:  "Permiso administrativo",
		FechaInicio:  "2025-03-10",
		FechaTermino: "2025-03-12",
		Motivo:       "Trámite personal",
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, justification.EstadoPendiente, created.Estado)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, "pt-2", created.PermitTypeID)
}

func TestCreate_RejectsOverlappingRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	overlapping := validRequest()
	overlapping.FechaInicio = "2025-03-12"
	overlapping.FechaTermino = "2025-03-14"
	_, err = svc.Create(ctx, overlapping)
	assert.ErrorIs(t, err, justification.ErrOverlappingJustification)
}

func TestCreate_AllowsDisjointRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	disjoint := validRequest()
	disjoint.FechaInicio = "2025-03-13"
	disjoint.FechaTermino = "2025-03-14"
	_, err = svc.Create(ctx, disjoint)
	assert.NoError(t, err)
}

func TestCreate_AttachmentRequired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	req := validRequest()
	req.TipoPermiso = "Licencia médica"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, justification.ErrAttachmentRequired)

	url := "https://files.internal/licencia.pdf"
	req.AttachmentURL = &url
	_, err = svc.Create(ctx, req)
	assert.NoError(t, err)
}

func TestCreate_UnknownPermitType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	req := validRequest()
	req.TipoPermiso = "Teletrabajo"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, justification.ErrPermitTypeNotFound)
}

func TestCreate_ValidatesDateOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	req := validRequest()
	req.FechaInicio = "2025-03-12"
	req.FechaTermino = "2025-03-10"
	_, err := svc.Create(ctx, req)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestUpdateEstado_ApprovalTriggersBackfill(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backfiller := &fakeBackfiller{}
	svc, repo := newTestService(backfiller)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	// Simulate the joined label a real read would carry
	repo.justifications[0].PermitTypeLabel = "Permiso administrativo"

	updated, err := svc.UpdateEstado(ctx, created.ID, justification.EstadoAprobado)
	require.NoError(t, err)
	assert.Equal(t, justification.EstadoAprobado, updated.Estado)

	require.Len(t, backfiller.calls, 1)
	call := backfiller.calls[0]
	assert.Equal(t, "emp-1", call.employeeID)
	assert.Equal(t, created.FechaInicio, call.inicio)
	assert.Equal(t, created.FechaTermino, call.termino)
	assert.Equal(t, "Permiso administrativo", call.reason)
}

func TestUpdateEstado_RejectionDoesNotBackfill(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backfiller := &fakeBackfiller{}
	svc, _ := newTestService(backfiller)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateEstado(ctx, created.ID, justification.EstadoRechazado)
	require.NoError(t, err)
	assert.Empty(t, backfiller.calls)
}

func TestUpdateEstado_FailedBackfillLeavesRecordPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backfiller := &fakeBackfiller{err: errors.New("parameter store down")}
	svc, repo := newTestService(backfiller)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateEstado(ctx, created.ID, justification.EstadoAprobado)
	require.Error(t, err)

	// The record stays PENDIENTE so the approval can be retried
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, justification.EstadoPendiente, stored.Estado)
}

func TestUpdateEstado_AlreadyResolved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backfiller := &fakeBackfiller{}
	svc, _ := newTestService(backfiller)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.UpdateEstado(ctx, created.ID, justification.EstadoRechazado)
	require.NoError(t, err)

	_, err = svc.UpdateEstado(ctx, created.ID, justification.EstadoAprobado)
	assert.ErrorIs(t, err, justification.ErrAlreadyResolved)
	assert.Empty(t, backfiller.calls)
}

func TestUpdateEstado_UnknownJustification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(&fakeBackfiller{})

	_, err := svc.UpdateEstado(ctx, "missing", justification.EstadoAprobado)
	assert.ErrorIs(t, err, justification.ErrJustificationNotFound)
}
