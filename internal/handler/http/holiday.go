package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/holiday"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/response"
	calendarservice "github.com/relojcontrol/timeclock-backend-go/internal/service/calendar"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	calendarService *calendarservice.Service
}

func NewHolidayHandler(calendarService *calendarservice.Service) HolidayHandler {
	return &HolidayHandlerImpl{calendarService: calendarService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.calendarService.AddHoliday(r.Context(), createReq)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Holiday created", "holiday_id", created.ID, "fecha", createReq.Fecha)
	response.Created(w, "Holiday created successfully", created.ToResponse())
}

// List implements HolidayHandler. With desde/hasta it lists only holidays
// inside the inclusive range.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		holidays []holiday.Holiday
		err      error
	)
	if r.URL.Query().Get("desde") != "" || r.URL.Query().Get("hasta") != "" {
		desde, hasta, rangeErr := parseRangeParams(r)
		if rangeErr != nil {
			response.BadRequest(w, "desde and hasta must be in format 2006-01-02", nil)
			return
		}
		holidays, err = h.calendarService.ListHolidaysInRange(r.Context(), desde, hasta)
	} else {
		holidays, err = h.calendarService.ListHolidays(r.Context())
	}
	if err != nil {
		slog.Error("List holidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, d := range holidays {
		responses = append(responses, d.ToResponse())
	}
	response.Success(w, responses)
}

// Deactivate implements HolidayHandler.
func (h *HolidayHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.calendarService.RemoveHoliday(r.Context(), id); err != nil {
		slog.Error("Deactivate holiday service error", "error", err, "holiday_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deactivated successfully", nil)
}
