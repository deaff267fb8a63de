package handlers

import (
	"net/http"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
)

// HandleStats returns dataset and refresh bookkeeping.
func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	response.OK(w, h.mapper.Stats())
}
