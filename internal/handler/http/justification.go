package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/justification"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/response"
	justificationservice "github.com/relojcontrol/timeclock-backend-go/internal/service/justification"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByRut(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	UpdateEstado(w http.ResponseWriter, r *http.Request)
	ListPermitTypes(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	justificationService *justificationservice.Service
}

func NewJustificationHandler(justificationService *justificationservice.Service) JustificationHandler {
	return &JustificationHandlerImpl{justificationService: justificationService}
}

// Create implements JustificationHandler.
func (h *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq justification.CreateJustificationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.justificationService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Justification created", "justification_id", created.ID, "rut", createReq.Rut)
	response.Created(w, "Justification created successfully", created.ToResponse())
}

// ListByRut implements JustificationHandler.
func (h *JustificationHandlerImpl) ListByRut(w http.ResponseWriter, r *http.Request) {
	rut := chi.URLParam(r, "rut")

	justifications, err := h.justificationService.ListByRut(r.Context(), rut)
	if err != nil {
		slog.Error("ListByRut justifications service error", "error", err, "rut", rut)
		response.HandleError(w, err)
		return
	}

	responses := make([]justification.JustificationResponse, 0, len(justifications))
	for _, j := range justifications {
		responses = append(responses, j.ToResponse())
	}
	response.Success(w, responses)
}

// GetByID implements JustificationHandler.
func (h *JustificationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	j, err := h.justificationService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, j.ToResponse())
}

// UpdateEstado implements JustificationHandler. Approval triggers the
// attendance backfill for the justified range.
func (h *JustificationHandlerImpl) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq justification.UpdateJustificationEstadoRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEstado justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.justificationService.UpdateEstado(r.Context(), id, justification.Estado(updateReq.Estado))
	if err != nil {
		slog.Error("UpdateEstado justification service error", "error", err, "justification_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Justification resolved", "justification_id", id, "estado", updateReq.Estado)
	response.SuccessWithMessage(w, "Justification estado updated successfully", updated.ToResponse())
}

// ListPermitTypes implements JustificationHandler.
func (h *JustificationHandlerImpl) ListPermitTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.justificationService.ListPermitTypes(r.Context())
	if err != nil {
		slog.Error("ListPermitTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]justification.PermitTypeResponse, 0, len(types))
	for _, t := range types {
		responses = append(responses, t.ToResponse())
	}
	response.Success(w, responses)
}
