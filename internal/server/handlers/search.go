package handlers

import (
	"net/http"

	gocache "github.com/patrickmn/go-cache"

	mapper "github.com/loukach/infocar-eurotax-mapper"
	"github.com/loukach/infocar-eurotax-mapper/internal/server/response"
	"github.com/loukach/infocar-eurotax-mapper/internal/sources/xcatalog"
)

// searchResult enriches a match result with the mapping already on
// record upstream, when one exists.
type searchResult struct {
	*mapper.Result
	ExistingMapping *xcatalog.Mapping `json:"existing_mapping,omitempty"`
}

// HandleSearch resolves a source provider code and returns the ranked
// candidates. Results are cached per code and profile.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.MethodNotAllowed(w, r.Method)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Invalid request", "query parameter 'code' is required")
		return
	}
	profile := r.URL.Query().Get("profile")

	cacheKey := "search:" + code + ":" + profile
	if cached, ok := h.cache.Get(cacheKey); ok {
		response.OK(w, cached)
		return
	}

	result, err := h.mapper.Match(r.Context(), code, profile)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if len(result.Candidates) > maxCandidates {
		result.Candidates = result.Candidates[:maxCandidates]
	}

	out := searchResult{Result: result}
	if h.mappings != nil && result.Found {
		existing, err := h.mappings.ExistingMapping(r.Context(), result.SourceCode, result.Class.VehicleType(), h.country)
		if err != nil {
			// The match result stands on its own.
			h.logger.Warn().Err(err).Str("code", code).Msg("existing mapping lookup failed")
		} else {
			out.ExistingMapping = existing
		}
	}

	h.cache.Set(cacheKey, out, gocache.DefaultExpiration)
	response.OK(w, out)
}
