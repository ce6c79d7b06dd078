package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/normalize"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "Invalid appointment id"
	msgInvalidRequestBody   = "Invalid request body"
	msgStatusRequired       = "Status is required"
	msgInvalidStatus        = "Invalid status"
	msgNotFound             = "Appointment not found"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %q", appointmentIDStr)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	raw, err := handlers.DecodeJSONMap(r)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Статус принимается в обоих соглашениях об именовании
	status := ""
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.Status); ok {
		status = normalize.AsString(v)
	}
	if strings.TrimSpace(status) == "" {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing status: appointment_id=%d", appointmentID)
		handlers.RespondBadRequest(w, msgStatusRequired)
		return
	}

	updated, err := h.service.SetStatus(r.Context(), appointmentID, status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrUnknownStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Unknown status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgStatusRequired)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondServerError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%d, status=%s",
		updated.AppointmentID, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
