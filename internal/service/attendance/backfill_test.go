package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfillRange_CreatesOfficialMarksForEmptyDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePunchRepo()
	svc := newTestService(repo, newStubCalendar(), newStubParams(45, 15))

	from := workDay
	to := workDay.AddDate(0, 0, 2)
	err := svc.BackfillRange(ctx, testEmployee.ID, from, to, "Licencia médica")
	require.NoError(t, err)

	// Three days, two marks each, all inside the inclusive range
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		entrance, err := repo.FindOfficial(ctx, testEmployee.ID, d, attendance.KindEntrada)
		require.NoError(t, err)
		require.NotNil(t, entrance, "entrance on %s", d.Format(time.DateOnly))
		assert.Equal(t, clock(d, 8, 0, 0), entrance.Timestamp)
		assert.Equal(t, attendance.EstadoAutorizado, entrance.Estado)
		require.NotNil(t, entrance.Origin)
		assert.Equal(t, "Licencia médica", *entrance.Origin)

		exit, err := repo.FindOfficial(ctx, testEmployee.ID, d, attendance.KindSalida)
		require.NoError(t, err)
		require.NotNil(t, exit, "exit on %s", d.Format(time.DateOnly))
		// 45h week over five days plus 15m tolerance: 08:00 + 9h15m
		assert.Equal(t, clock(d, 17, 15, 0), exit.Timestamp)
	}

	outside, err := repo.ListByEmployeeAndDate(ctx, testEmployee.ID, to.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestBackfillRange_SkipsExistingOfficialMark(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePunchRepo()
	svc := newTestService(repo, newStubCalendar(), newStubParams(45, 15))

	real := seedPunch(t, repo, testEmployee, clock(workDay, 7, 50, 0), attendance.KindEntrada)
	_, err := repo.PromoteOfficial(ctx, real.ID)
	require.NoError(t, err)

	require.NoError(t, svc.BackfillRange(ctx, testEmployee.ID, workDay, workDay, "Permiso"))

	// The real entrance is untouched; only the exit was synthesized
	entrance, err := repo.FindOfficial(ctx, testEmployee.ID, workDay, attendance.KindEntrada)
	require.NoError(t, err)
	assert.Equal(t, real.ID, entrance.ID)
	assert.Nil(t, entrance.Origin)

	punches, err := repo.ListByEmployeeAndDate(ctx, testEmployee.ID, workDay)
	require.NoError(t, err)
	assert.Len(t, punches, 2)
}

func TestBackfillRange_PromotesAndAuthorizesExistingUnofficialPunch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePunchRepo()
	svc := newTestService(repo, newStubCalendar(), newStubParams(45, 15))

	existing := seedPunch(t, repo, testEmployee, clock(workDay, 8, 10, 0), attendance.KindEntrada)
	require.NoError(t, repo.SetEstado(ctx, existing.ID, attendance.EstadoRechazado))

	require.NoError(t, svc.BackfillRange(ctx, testEmployee.ID, workDay, workDay, "Permiso"))

	promoted, err := repo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.True(t, promoted.EsOficial)
	assert.Equal(t, attendance.EstadoAutorizado, promoted.Estado)

	// No duplicate entrance was created alongside the promoted one
	punches, err := repo.ListByEmployeeAndDate(ctx, testEmployee.ID, workDay)
	require.NoError(t, err)
	entradas := 0
	for _, p := range punches {
		if p.Kind == attendance.KindEntrada {
			entradas++
		}
	}
	assert.Equal(t, 1, entradas)
}

func TestBackfillRange_IsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePunchRepo()
	svc := newTestService(repo, newStubCalendar(), newStubParams(45, 15))

	require.NoError(t, svc.BackfillRange(ctx, testEmployee.ID, workDay, workDay, "Permiso"))
	require.NoError(t, svc.BackfillRange(ctx, testEmployee.ID, workDay, workDay, "Permiso"))

	punches, err := repo.ListByEmployeeAndDate(ctx, testEmployee.ID, workDay)
	require.NoError(t, err)
	assert.Len(t, punches, 2)
}

func TestBackfillRange_MissingParameterFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePunchRepo()
	params := &stubParams{values: map[string]int{parameter.KeyToleranceMinutes: 15}}
	svc := newTestService(repo, newStubCalendar(), params)

	err := svc.BackfillRange(ctx, testEmployee.ID, workDay, workDay, "Permiso")
	assert.ErrorIs(t, err, parameter.ErrParameterNotFound)
}
