package parameter

import (
	"context"
	"testing"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParameterRepo struct {
	byKey map[string]parameter.SystemParameter
}

func newFakeParameterRepo(params ...parameter.SystemParameter) *fakeParameterRepo {
	byKey := make(map[string]parameter.SystemParameter, len(params))
	for _, p := range params {
		byKey[p.Clave] = p
	}
	return &fakeParameterRepo{byKey: byKey}
}

func (f *fakeParameterRepo) GetByKey(_ context.Context, clave string) (parameter.SystemParameter, error) {
	p, ok := f.byKey[clave]
	if !ok {
		return parameter.SystemParameter{}, parameter.ErrParameterNotFound
	}
	return p, nil
}

func (f *fakeParameterRepo) List(_ context.Context) ([]parameter.SystemParameter, error) {
	out := make([]parameter.SystemParameter, 0, len(f.byKey))
	for _, p := range f.byKey {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeParameterRepo) Update(_ context.Context, id string, valor string) (parameter.SystemParameter, error) {
	for k, p := range f.byKey {
		if p.ID == id {
			p.Valor = valor
			f.byKey[k] = p
			return p, nil
		}
	}
	return parameter.SystemParameter{}, parameter.ErrParameterNotFound
}

func TestIntValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(newFakeParameterRepo(
		parameter.SystemParameter{ID: "1", Clave: parameter.KeyWeeklyHours, Valor: "45"},
	))

	v, err := svc.IntValue(ctx, parameter.KeyWeeklyHours)
	require.NoError(t, err)
	assert.Equal(t, 45, v)
}

func TestIntValue_MissingKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(newFakeParameterRepo())

	_, err := svc.IntValue(ctx, parameter.KeyToleranceMinutes)
	require.Error(t, err)
	assert.ErrorIs(t, err, parameter.ErrParameterNotFound)
	// The failing key is named so operators can fix the row
	assert.Contains(t, err.Error(), parameter.KeyToleranceMinutes)
}

func TestIntValue_NonNumericValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(newFakeParameterRepo(
		parameter.SystemParameter{ID: "1", Clave: parameter.KeyWeeklyHours, Valor: "cuarenta y cinco"},
	))

	_, err := svc.IntValue(ctx, parameter.KeyWeeklyHours)
	assert.ErrorIs(t, err, parameter.ErrParameterNotNumeric)
}

func TestUpdateValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeParameterRepo(
		parameter.SystemParameter{ID: "1", Clave: parameter.KeyWeeklyHours, Valor: "45"},
		parameter.SystemParameter{ID: "2", Clave: parameter.KeyToleranceMinutes, Valor: "15"},
	)
	svc := NewService(repo)

	updated, err := svc.UpdateValues(ctx, []parameter.UpdateParameterRequest{
		{ID: "1", Valor: "40"},
		{ID: "2", Valor: "10"},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	v, err := svc.IntValue(ctx, parameter.KeyWeeklyHours)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

func TestUpdateValues_UnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(newFakeParameterRepo())

	_, err := svc.UpdateValues(ctx, []parameter.UpdateParameterRequest{{ID: "missing", Valor: "1"}})
	assert.ErrorIs(t, err, parameter.ErrParameterNotFound)
}
