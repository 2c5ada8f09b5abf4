package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/holiday"
)

// MonthDay keys the fixed holiday table.
type MonthDay struct {
	Month time.Month
	Day   int
}

// FixedHolidays is the statutory holiday table, keyed by month and day.
// Dates that move year to year are managed through the holiday store
// instead.
var FixedHolidays = []MonthDay{
	{time.January, 1},    // Año Nuevo
	{time.March, 29},     // Viernes Santo
	{time.March, 30},     // Sábado Santo
	{time.May, 1},        // Día del Trabajo
	{time.May, 21},       // Día de las Glorias Navales
	{time.June, 9},       // Día de la Región de Arica y Parinacota
	{time.June, 20},      // Día Nacional de los Pueblos Indígenas
	{time.June, 29},      // San Pedro y San Pablo
	{time.July, 16},      // Día de la Virgen del Carmen
	{time.August, 15},    // Asunción de la Virgen
	{time.September, 18}, // Independencia Nacional
	{time.September, 19}, // Día de las Glorias del Ejército
	{time.September, 20}, // Feriado adicional
	{time.October, 12},   // Encuentro de Dos Mundos
	{time.October, 27},   // Día de las Iglesias Evangélicas y Protestantes
	{time.October, 31},   // Día Nacional de las Iglesias Evangélicas
	{time.November, 1},   // Día de Todos los Santos
	{time.December, 8},   // Inmaculada Concepción
	{time.December, 25},  // Navidad
}

// Service answers whether a date counts as a working day. It combines the
// fixed statutory table with the dynamic holiday store. Constructed once at
// startup and injected wherever day-type decisions are made, so tests can
// substitute their own instance.
type Service struct {
	holiday.HolidayRepository
	fixed map[MonthDay]struct{}
}

func NewService(holidayRepository holiday.HolidayRepository) *Service {
	return NewServiceWithFixed(holidayRepository, FixedHolidays)
}

func NewServiceWithFixed(holidayRepository holiday.HolidayRepository, fixed []MonthDay) *Service {
	set := make(map[MonthDay]struct{}, len(fixed))
	for _, md := range fixed {
		set[md] = struct{}{}
	}
	return &Service{
		HolidayRepository: holidayRepository,
		fixed:             set,
	}
}

// IsHoliday reports whether the date is a statutory or stored holiday.
func (s *Service) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	if _, ok := s.fixed[MonthDay{date.Month(), date.Day()}]; ok {
		return true, nil
	}

	exists, err := s.HolidayRepository.ExistsActiveOn(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check stored holidays: %w", err)
	}
	return exists, nil
}

// IsWeekendOrHoliday reports whether the date is a special (non-working)
// day: Saturday, Sunday, or any holiday.
func (s *Service) IsWeekendOrHoliday(ctx context.Context, date time.Time) (bool, error) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true, nil
	}
	return s.IsHoliday(ctx, date)
}

func (s *Service) AddHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	fecha, _ := time.Parse(time.DateOnly, req.Fecha)
	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Fecha:       fecha,
		Descripcion: req.Descripcion,
		Activo:      true,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (s *Service) RemoveHoliday(ctx context.Context, id string) error {
	if err := s.HolidayRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate holiday: %w", err)
	}
	return nil
}

func (s *Service) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	return s.HolidayRepository.List(ctx)
}

func (s *Service) ListHolidaysInRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return s.HolidayRepository.ListInRange(ctx, from, to)
}
