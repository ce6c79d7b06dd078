package health

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
)

// Response тело ответа проверки работоспособности
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type Handler struct {
	pool   DBProvider
	logger Logger
}

func NewHandler(pool DBProvider, logger Logger) *Handler {
	return &Handler{
		pool:   pool,
		logger: logger,
	}
}

// Handle GET /api/health
// Первое обращение инициализирует пул соединений (ленивая инициализация)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	db, err := h.pool.Get(r.Context())
	if err == nil {
		err = db.PingContext(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /health - Database unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, Response{OK: false, Error: err.Error()})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{OK: true})
}
