package attendance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/employee"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
)

// fakePunchRepo is an in-memory PunchRepository with the same promotion
// semantics as the SQL implementation: at most one official punch per
// (employee, date, kind).
type fakePunchRepo struct {
	mu      sync.Mutex
	punches []attendance.Punch
	nextID  int

	promoteCalls int
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{nextID: 1}
}

func (f *fakePunchRepo) Create(_ context.Context, p attendance.Punch) (attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = fmt.Sprintf("p%d", f.nextID)
	f.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id string) (attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.punches {
		if p.ID == id {
			return p, nil
		}
	}
	return attendance.Punch{}, attendance.ErrPunchNotFound
}

func (f *fakePunchRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Punch
	for _, p := range f.punches {
		if sameDate(p.Timestamp, date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && sameDate(p.Timestamp, date) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByRutAndRange(_ context.Context, rut string, from, to time.Time) ([]attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.EmployeeRut == rut && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByPartialRutAndRange(_ context.Context, rutPrefix string, from, to time.Time) ([]attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Punch
	for _, p := range f.punches {
		if strings.HasPrefix(p.EmployeeRut, rutPrefix) && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) FindOfficial(_ context.Context, employeeID string, date time.Time, kind string) (*attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.punches {
		if p.EsOficial && p.EmployeeID == employeeID && p.Kind == kind && sameDate(p.Timestamp, date) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepo) PromoteOfficial(_ context.Context, id string) (attendance.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.promoteCalls++

	idx := -1
	for i, p := range f.punches {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return attendance.Punch{}, attendance.ErrPunchNotFound
	}

	target := f.punches[idx]
	for i, p := range f.punches {
		if p.ID != id && p.EsOficial && p.EmployeeID == target.EmployeeID &&
			p.Kind == target.Kind && sameDate(p.Timestamp, target.Timestamp) {
			f.punches[i].EsOficial = false
		}
	}
	f.punches[idx].EsOficial = true
	return f.punches[idx], nil
}

func (f *fakePunchRepo) SetOfficial(_ context.Context, id string, official bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.punches {
		if p.ID == id {
			f.punches[i].EsOficial = official
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

func (f *fakePunchRepo) SetEstado(_ context.Context, id string, estado string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.punches {
		if p.ID == id {
			f.punches[i].Estado = estado
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

func (f *fakePunchRepo) officialCount(employeeID string, date time.Time, kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.punches {
		if p.EsOficial && p.EmployeeID == employeeID && p.Kind == kind && sameDate(p.Timestamp, date) {
			n++
		}
	}
	return n
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// fakeEmployeeRepo resolves employees by rut from a fixed map.
type fakeEmployeeRepo struct {
	byRut map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	byRut := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byRut[e.Rut] = e
	}
	return &fakeEmployeeRepo{byRut: byRut}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.byRut[emp.Rut] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.byRut {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByRut(_ context.Context, rut string) (employee.Employee, error) {
	e, ok := f.byRut[rut]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.byRut))
	for _, e := range f.byRut {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.byRut[emp.Rut] = emp
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string) error {
	return nil
}

// stubCalendar marks configured dates as special and can fail on demand.
type stubCalendar struct {
	special map[string]bool
	failOn  map[string]error
}

func newStubCalendar() *stubCalendar {
	return &stubCalendar{
		special: make(map[string]bool),
		failOn:  make(map[string]error),
	}
}

func (s *stubCalendar) markSpecial(date time.Time) {
	s.special[date.Format(time.DateOnly)] = true
}

func (s *stubCalendar) IsWeekendOrHoliday(_ context.Context, date time.Time) (bool, error) {
	key := date.Format(time.DateOnly)
	if err, ok := s.failOn[key]; ok {
		return false, err
	}
	return s.special[key], nil
}

// stubParams serves integer parameters from a map; a missing key surfaces
// the not-found sentinel the way the real parameter service does.
type stubParams struct {
	values map[string]int
}

func newStubParams(weeklyHours, toleranceMinutes int) *stubParams {
	return &stubParams{values: map[string]int{
		parameter.KeyWeeklyHours:      weeklyHours,
		parameter.KeyToleranceMinutes: toleranceMinutes,
	}}
}

func (s *stubParams) IntValue(_ context.Context, clave string) (int, error) {
	v, ok := s.values[clave]
	if !ok {
		return 0, fmt.Errorf("parameter %q: %w", clave, parameter.ErrParameterNotFound)
	}
	return v, nil
}
