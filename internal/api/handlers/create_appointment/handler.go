package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw, err := handlers.DecodeJSONMap(r)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := ToUseCaseRequest(raw)

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var vErr *createAppointment.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /appointments - Validation failed: %s", vErr.Error())
			handlers.RespondBadRequest(w, vErr.Error())

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondServerError(w, err)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, CreateAppointmentResponse{NewAppointmentID: result.ID})
}
