package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/relojcontrol/timeclock-backend-go/internal/domain/parameter"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/response"
	parameterservice "github.com/relojcontrol/timeclock-backend-go/internal/service/parameter"
)

type ParameterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ParameterHandlerImpl struct {
	parameterService *parameterservice.Service
}

func NewParameterHandler(parameterService *parameterservice.Service) ParameterHandler {
	return &ParameterHandlerImpl{parameterService: parameterService}
}

// List implements ParameterHandler.
func (h *ParameterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	parameters, err := h.parameterService.List(r.Context())
	if err != nil {
		slog.Error("List parameters service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]parameter.ParameterResponse, 0, len(parameters))
	for _, p := range parameters {
		responses = append(responses, p.ToResponse())
	}
	response.Success(w, responses)
}

// Update implements ParameterHandler. Accepts a batch so the jornada pair
// can change in one request.
func (h *ParameterHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updates []parameter.UpdateParameterRequest

	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		slog.Error("Update parameters decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(updates) == 0 {
		response.BadRequest(w, "At least one parameter update is required", nil)
		return
	}

	updated, err := h.parameterService.UpdateValues(r.Context(), updates)
	if err != nil {
		slog.Error("Update parameters service error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]parameter.ParameterResponse, 0, len(updated))
	for _, p := range updated {
		responses = append(responses, p.ToResponse())
	}
	slog.Info("System parameters updated", "count", len(responses))
	response.SuccessWithMessage(w, "Parameters updated successfully", responses)
}
