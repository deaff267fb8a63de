package handlers

import (
	"net/http"

	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
)

type profileInfo struct {
	Name     string        `json:"name"`
	MaxScore int           `json:"max_score"`
	Weights  match.Weights `json:"weights"`
}

type profilesPayload struct {
	Default  string        `json:"default"`
	Profiles []profileInfo `json:"profiles"`
}

// HandleProfiles lists the registered weight profiles.
func (h *Handlers) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	registry := h.mapper.Profiles()
	names := registry.Names()

	payload := profilesPayload{
		Default:  match.DefaultProfile,
		Profiles: make([]profileInfo, 0, len(names)),
	}
	for _, name := range names {
		weights, err := registry.Get(name)
		if err != nil {
			continue
		}
		payload.Profiles = append(payload.Profiles, profileInfo{
			Name:     name,
			MaxScore: weights.Max(),
			Weights:  weights,
		})
	}

	response.OK(w, payload)
}
