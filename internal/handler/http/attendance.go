package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/attendance"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/response"
	attendanceservice "github.com/relojcontrol/timeclock-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	SummaryByDate(w http.ResponseWriter, r *http.Request)
	SummaryByRut(w http.ResponseWriter, r *http.Request)
	SummaryByPartialRut(w http.ResponseWriter, r *http.Request)
	CreatePunch(w http.ResponseWriter, r *http.Request)
	UpdateEstado(w http.ResponseWriter, r *http.Request)
	UpdateOficial(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// SummaryByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SummaryByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r, "fecha")
	if err != nil {
		response.BadRequest(w, "fecha must be in format 2006-01-02", nil)
		return
	}

	summaries, err := h.attendanceService.SummaryByDate(r.Context(), date)
	if err != nil {
		slog.Error("SummaryByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSummaryResponses(summaries))
}

// SummaryByRut implements AttendanceHandler. With fecha it reconciles a
// single date; with desde/hasta it covers an inclusive range.
func (h *AttendanceHandlerImpl) SummaryByRut(w http.ResponseWriter, r *http.Request) {
	rut := chi.URLParam(r, "rut")

	var (
		summaries []attendance.DaySummary
		err       error
	)
	if r.URL.Query().Get("fecha") != "" {
		var date time.Time
		date, err = parseDateParam(r, "fecha")
		if err != nil {
			response.BadRequest(w, "fecha must be in format 2006-01-02", nil)
			return
		}
		summaries, err = h.attendanceService.SummaryByRutAndDate(r.Context(), rut, date)
	} else {
		var desde, hasta time.Time
		desde, hasta, err = parseRangeParams(r)
		if err != nil {
			response.BadRequest(w, "desde and hasta must be in format 2006-01-02", nil)
			return
		}
		summaries, err = h.attendanceService.SummaryByRutAndRange(r.Context(), rut, desde, hasta)
	}
	if err != nil {
		slog.Error("SummaryByRut service error", "error", err, "rut", rut)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSummaryResponses(summaries))
}

// SummaryByPartialRut implements AttendanceHandler. The rut query parameter
// is matched as a prefix.
func (h *AttendanceHandlerImpl) SummaryByPartialRut(w http.ResponseWriter, r *http.Request) {
	rutPrefix := r.URL.Query().Get("rut")
	if rutPrefix == "" {
		response.BadRequest(w, "rut query parameter is required", nil)
		return
	}

	desde, hasta, err := parseRangeParams(r)
	if err != nil {
		response.BadRequest(w, "desde and hasta must be in format 2006-01-02", nil)
		return
	}

	summaries, err := h.attendanceService.SummaryByPartialRut(r.Context(), rutPrefix, desde, hasta)
	if err != nil {
		slog.Error("SummaryByPartialRut service error", "error", err, "rut", rutPrefix)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSummaryResponses(summaries))
}

// CreatePunch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreatePunch(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punch, err := h.attendanceService.CreatePunch(r.Context(), createReq)
	if err != nil {
		slog.Error("CreatePunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch created", "punch_id", punch.ID, "rut", createReq.Rut)
	response.Created(w, "Punch created successfully", punch.ToResponse())
}

// UpdateEstado implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq attendance.UpdateEstadoRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEstado decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.UpdateEstado(r.Context(), id, updateReq); err != nil {
		slog.Error("UpdateEstado service error", "error", err, "punch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch estado updated successfully", nil)
}

// UpdateOficial implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateOficial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq attendance.UpdateOficialRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateOficial decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punch, err := h.attendanceService.UpdateOficial(r.Context(), id, updateReq.EsOficial)
	if err != nil {
		slog.Error("UpdateOficial service error", "error", err, "punch_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch official flag updated successfully", punch.ToResponse())
}

// toSummaryResponses orders summaries by date then employee name before
// converting to the wire form. Ordering is a presentation concern; the
// engine returns groups in first-seen order.
func toSummaryResponses(summaries []attendance.DaySummary) []attendance.DaySummaryResponse {
	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].Day.Equal(summaries[j].Day) {
			return summaries[i].Day.Before(summaries[j].Day)
		}
		return summaries[i].Name < summaries[j].Name
	})

	responses := make([]attendance.DaySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, s.ToResponse())
	}
	return responses
}

func parseDateParam(r *http.Request, name string) (time.Time, error) {
	return time.Parse(time.DateOnly, r.URL.Query().Get(name))
}

func parseRangeParams(r *http.Request) (time.Time, time.Time, error) {
	desde, err := parseDateParam(r, "desde")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := parseDateParam(r, "hasta")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return desde, hasta, nil
}
