package list_dictionaries

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
)

// Handler обслуживает четыре справочных эндпоинта
// Справочники отличаются только типом строк, поэтому живут в одном handler-е
type Handler struct {
	service DictionaryService
	logger  Logger
}

func NewHandler(service DictionaryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Doctors GET /api/doctors
func (h *Handler) Doctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.ListDoctors(r.Context())
	if err != nil {
		h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
		handlers.RespondServerError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doctors)
}

// Services GET /api/services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondServerError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, services)
}

// Cabinets GET /api/cabinets
func (h *Handler) Cabinets(w http.ResponseWriter, r *http.Request) {
	cabinets, err := h.service.ListCabinets(r.Context())
	if err != nil {
		h.logger.Error("GET /cabinets - Failed to list cabinets: %v", err)
		handlers.RespondServerError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cabinets)
}

// Patients GET /api/patients
func (h *Handler) Patients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.service.ListPatients(r.Context())
	if err != nil {
		h.logger.Error("GET /patients - Failed to list patients: %v", err)
		handlers.RespondServerError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, patients)
}
