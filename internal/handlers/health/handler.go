package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lembra/shared/constant"
	"lembra/shared/timezone"
	"lembra/transport/http/response"
)

type Status struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

type Handler struct {
	startedAt time.Time
}

func New() Handler {
	return Handler{
		startedAt: timezone.Now(),
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports service liveness.
// @Summary Service health check
// @Description Report service status, current time and uptime in seconds.
// @Tags Health
// @Produce json
// @Success 200 {object} health.Status
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{
		Status:    "OK",
		Timestamp: timezone.Format(timezone.Now(), constant.DateFormat),
		Uptime:    timezone.Now().Sub(h.startedAt).Seconds(),
	})
}
