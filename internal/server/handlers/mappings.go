package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

type mappingRequest struct {
	SourceCode   string `json:"source_code"`
	Natcode      string `json:"natcode"`
	Score        int    `json:"score"`
	MaxScore     int    `json:"max_score"`
	VehicleClass string `json:"vehicle_class"`
	Country      string `json:"country"`
}

type mappingAccepted struct {
	SourceCode string `json:"source_code"`
	Natcode    string `json:"natcode"`
	Submitted  bool   `json:"submitted"`
}

// HandleCreateMapping records a confirmed source-to-target mapping in
// the upstream mapping store.
func (h *Handlers) HandleCreateMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.MethodNotAllowed(w, r.Method)
		return
	}
	if h.mappings == nil {
		response.ServiceUnavailable(w, "Mapping store not configured")
		return
	}

	var req mappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request", "malformed JSON body")
		return
	}

	switch {
	case req.SourceCode == "":
		response.BadRequest(w, "Invalid request", "source_code is required")
		return
	case req.Natcode == "":
		response.BadRequest(w, "Invalid request", "natcode is required")
		return
	case req.Score < 0 || req.MaxScore <= 0 || req.Score > req.MaxScore:
		response.BadRequest(w, "Invalid request", "score must be between 0 and max_score")
		return
	}

	class := vehicles.ClassCar
	if req.VehicleClass == string(vehicles.ClassLCV) {
		class = vehicles.ClassLCV
	}
	country := req.Country
	if country == "" {
		country = h.country
	}

	err := h.mappings.SubmitMapping(r.Context(), req.SourceCode, req.Natcode, req.Score, req.MaxScore, class, country)
	if err != nil {
		response.FromError(w, err)
		return
	}

	h.logger.Info().
		Str("source_code", req.SourceCode).
		Str("natcode", req.Natcode).
		Int("score", req.Score).
		Msg("mapping submitted")
	response.Created(w, mappingAccepted{
		SourceCode: req.SourceCode,
		Natcode:    req.Natcode,
		Submitted:  true,
	})
}
