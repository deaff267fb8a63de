// Package mapper maps Infocar catalogue records to their Eurotax
// counterparts. It loads the target dataset into an immutable index,
// selects candidates by make and model containment, scores them field
// by field under a weight profile and labels the best candidate with a
// confidence level.
package mapper

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// Compile-time interface check.
var _ Mapper = (*client)(nil)

// DatasetProvider supplies the full target dataset for a country.
type DatasetProvider interface {
	FetchTrims(ctx context.Context, country string) ([]vehicles.Trim, error)
}

// TrimFetcher resolves a source provider code to its catalogue record.
// A nil record with a nil error means the code is unknown upstream.
type TrimFetcher interface {
	FetchTrim(ctx context.Context, providerCode, country string) (*vehicles.Trim, error)
}

// Mapper is the matching engine facade.
type Mapper interface {
	// Load fetches the target dataset, builds a fresh index and swaps
	// it in atomically. In-flight matches keep the index they started
	// with.
	Load(ctx context.Context) error

	// Match resolves a source provider code upstream and runs the
	// matching pipeline against the loaded index. When the code is
	// unknown, the 12-digit inverted form is tried before giving up.
	Match(ctx context.Context, sourceCode, profileName string) (*Result, error)

	// MatchRecord runs the matching pipeline for a caller-supplied
	// source record without any upstream round-trip.
	MatchRecord(trim *vehicles.Trim, profileName string) (*Result, error)

	// Lookup returns the target record with the given provider code.
	Lookup(natcode string) (*vehicles.Trim, vehicles.Specs, error)

	// Profiles returns the weight profile registry in use.
	Profiles() match.Profiles

	// AutoRefreshOn starts periodic dataset reloads.
	AutoRefreshOn() error

	// AutoRefreshOff stops periodic dataset reloads.
	AutoRefreshOff() error

	// Stats reports dataset and refresh bookkeeping.
	Stats() Stats
}

// Stats is a snapshot of dataset and refresh state.
type Stats struct {
	Loaded          bool          `json:"loaded"`
	Records         int           `json:"records"`
	OEMCodes        int           `json:"oem_codes"`
	Makes           int           `json:"makes"`
	Country         string        `json:"country"`
	RefreshInterval time.Duration `json:"refresh_interval"`
	LastRefresh     time.Time     `json:"last_refresh"`
	NextRefreshIn   time.Duration `json:"next_refresh_in"`
	RefreshCount    int64         `json:"refresh_count"`
}

type client struct {
	options *options
	logger  *zerolog.Logger

	// index holds the current dataset snapshot. Swapped wholesale on
	// every load, never mutated in place.
	index atomic.Pointer[match.Index]

	lastRefresh  atomic.Int64 // unix seconds, 0 until first load
	refreshCount atomic.Int64

	refreshMu     sync.Mutex
	refreshTicker *time.Ticker
	refreshCancel context.CancelFunc
	stopCh        chan struct{}
}

// New creates a Mapper with the given options. A dataset provider is
// required; a trim fetcher is only required for Match.
func New(opts ...Option) (Mapper, error) {
	options := defaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if options.dataset == nil {
		return nil, &errors.ConfigError{
			Component: "mapper",
			Message:   "a dataset provider is required",
		}
	}

	return &client{
		options: options,
		logger:  options.logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Load implements Mapper.
func (c *client) Load(ctx context.Context) error {
	started := time.Now()

	trims, err := c.options.dataset.FetchTrims(ctx, c.options.country)
	if err != nil {
		return err
	}

	idx := match.NewIndex(trims)
	c.index.Store(idx)
	c.lastRefresh.Store(time.Now().Unix())
	c.refreshCount.Add(1)

	c.logger.Info().
		Str("country", c.options.country).
		Int("records", idx.Size()).
		Int("oem_codes", idx.OEMCodeCount()).
		Dur("elapsed", time.Since(started)).
		Msg("target dataset loaded")
	return nil
}

// Match implements Mapper.
func (c *client) Match(ctx context.Context, sourceCode, profileName string) (*Result, error) {
	idx := c.index.Load()
	if idx == nil {
		return nil, errors.ErrNotLoaded
	}
	if c.options.fetcher == nil {
		return nil, &errors.ConfigError{
			Component: "mapper",
			Message:   "a trim fetcher is required for Match",
		}
	}

	weights, err := c.options.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}

	trim, err := c.options.fetcher.FetchTrim(ctx, sourceCode, c.options.country)
	if err != nil {
		return nil, err
	}

	usedCode := sourceCode
	wasInverted := false
	if trim == nil {
		// Source systems occasionally swap the two halves of the code.
		if inverted, invErr := vehicles.InvertProviderCode(sourceCode); invErr == nil {
			trim, err = c.options.fetcher.FetchTrim(ctx, inverted, c.options.country)
			if err != nil {
				return nil, err
			}
			if trim != nil {
				usedCode = inverted
				wasInverted = true
			}
		}
	}

	if trim == nil {
		return &Result{
			Found:        false,
			OriginalCode: sourceCode,
			Profile:      c.profileOrDefault(profileName),
			MaxScore:     weights.Max(),
		}, nil
	}

	result := c.matchTrim(idx, trim, profileName, weights)
	result.SourceCode = usedCode
	result.OriginalCode = sourceCode
	result.WasInverted = wasInverted
	return result, nil
}

// MatchRecord implements Mapper.
func (c *client) MatchRecord(trim *vehicles.Trim, profileName string) (*Result, error) {
	idx := c.index.Load()
	if idx == nil {
		return nil, errors.ErrNotLoaded
	}
	if trim == nil {
		return nil, &errors.ValidationError{
			Field:   "trim",
			Message: "a source record is required",
		}
	}

	weights, err := c.options.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}

	result := c.matchTrim(idx, trim, profileName, weights)
	result.SourceCode = trim.ProviderCode
	result.OriginalCode = trim.ProviderCode
	return result, nil
}

// matchTrim runs classification, selection, ranking and confidence
// labeling for a resolved source record.
func (c *client) matchTrim(idx *match.Index, trim *vehicles.Trim, profileName string, weights match.Weights) *Result {
	brand := strings.ToUpper(strings.TrimSpace(trim.NormalizedMake))
	if brand == "" {
		brand = strings.ToUpper(strings.TrimSpace(trim.Make))
	}
	model := strings.ToLower(strings.TrimSpace(trim.NormalizedModel))
	oemCode := trim.ManufacturerCode
	specs := vehicles.ExtractSpecs(trim)
	class := vehicles.Identify(brand, model, normalize.Body(trim.BodyType))

	result := &Result{
		Found:       true,
		OEMCode:     oemCode,
		Brand:       brand,
		SourceName:  trim.Name,
		SourceSpecs: specs,
		SourceTrims: match.ExtractTrimTokens(trim.Name),
		Class:       class,
		Profile:     c.profileOrDefault(profileName),
		MaxScore:    weights.Max(),
	}

	candidates := idx.Candidates(brand, model, class)
	if len(candidates) == 0 {
		result.Decision = DecisionNoCandidates
		return result
	}

	ranked := match.Rank(specs, candidates, oemCode, brand, weights)
	result.Candidates = makeCandidates(ranked, weights.Max())

	top := result.Candidates[0]
	result.Decision = string(top.Confidence)
	result.Confidence = float64(top.Score) / float64(weights.Max())
	result.RecommendedNatcode = top.Natcode
	return result
}

// Lookup implements Mapper.
func (c *client) Lookup(natcode string) (*vehicles.Trim, vehicles.Specs, error) {
	idx := c.index.Load()
	if idx == nil {
		return nil, vehicles.Specs{}, errors.ErrNotLoaded
	}

	rec, ok := idx.Lookup(natcode)
	if !ok {
		return nil, vehicles.Specs{}, &errors.NotFoundError{Resource: "trim", ID: natcode}
	}
	return rec.Trim, rec.Specs, nil
}

// Profiles implements Mapper.
func (c *client) Profiles() match.Profiles {
	return c.options.profiles
}

// Stats implements Mapper.
func (c *client) Stats() Stats {
	stats := Stats{
		Country:         c.options.country,
		RefreshInterval: c.options.refreshInterval,
		RefreshCount:    c.refreshCount.Load(),
	}

	if idx := c.index.Load(); idx != nil {
		stats.Loaded = true
		stats.Records = idx.Size()
		stats.OEMCodes = idx.OEMCodeCount()
		stats.Makes = idx.MakeCount()
	}

	if last := c.lastRefresh.Load(); last > 0 {
		stats.LastRefresh = time.Unix(last, 0)
		if c.options.refreshInterval > 0 {
			next := c.options.refreshInterval - time.Since(stats.LastRefresh)
			if next < 0 {
				next = 0
			}
			stats.NextRefreshIn = next
		}
	}

	return stats
}

func (c *client) profileOrDefault(name string) string {
	if name == "" {
		return match.DefaultProfile
	}
	return name
}
