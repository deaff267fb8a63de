package handlers

import (
	"net/http"
	"strings"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

type trimPayload struct {
	Trim  *vehicles.Trim `json:"trim"`
	Specs vehicles.Specs `json:"specs"`
	Class vehicles.Class `json:"vehicle_class"`
}

// HandleTrim returns one target record by its provider code. The path
// is /api/v1/trims/{natcode}.
func (h *Handlers) HandleTrim(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	natcode := strings.TrimPrefix(r.URL.Path, "/api/v1/trims/")
	if natcode == "" || strings.Contains(natcode, "/") {
		response.BadRequest(w, "Invalid request", "a single natcode path segment is required")
		return
	}

	trim, specs, err := h.mapper.Lookup(natcode)
	if err != nil {
		response.FromError(w, err)
		return
	}

	class := vehicles.Identify(trim.NormalizedMake, trim.NormalizedModel, specs.BodyNorm)
	response.OK(w, trimPayload{Trim: trim, Specs: specs, Class: class})
}
