// Package handlers implements the HTTP handlers for the mapper API.
package handlers

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	mapper "github.com/loukach/infocar-eurotax-mapper"
	"github.com/loukach/infocar-eurotax-mapper/internal/sources/xcatalog"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// maxCandidates caps the candidate list in search responses. The full
// ranked list stays available through the library API.
const maxCandidates = 10

// MappingAPI is the upstream mapping store surface the handlers need.
type MappingAPI interface {
	ExistingMapping(ctx context.Context, sourceCode, vehicleType, country string) (*xcatalog.Mapping, error)
	SubmitMapping(ctx context.Context, sourceCode, destCode string, score, maxScore int, class vehicles.Class, country string) error
}

// Handlers holds the dependencies shared by all HTTP handlers.
type Handlers struct {
	mapper   mapper.Mapper
	mappings MappingAPI // nil disables mapping lookups and submission
	cache    *gocache.Cache
	logger   *zerolog.Logger
	country  string
}

// New creates the handlers instance.
func New(m mapper.Mapper, mappings MappingAPI, cacheTTL time.Duration, country string, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		mapper:   m,
		mappings: mappings,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		logger:   logger,
		country:  country,
	}
}
