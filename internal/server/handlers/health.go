package handlers

import (
	"net/http"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
)

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status  string `json:"status"`
	Loaded  bool   `json:"loaded"`
	Records int    `json:"records"`
}

// HandleHealth reports liveness and whether the dataset is loaded.
// It always answers 200 so load balancers keep routing while the
// first load is still in flight.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	stats := h.mapper.Stats()
	status := "ok"
	if !stats.Loaded {
		status = "loading"
	}

	response.OK(w, healthStatus{
		Status:  status,
		Loaded:  stats.Loaded,
		Records: stats.Records,
	})
}
