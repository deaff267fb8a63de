// Package catalogue loads the target (Eurotax) trim dataset from the
// catalogue export API and deduplicates it to one record per provider
// code.
package catalogue

import (
	"context"
	"net/url"

	"github.com/loukach/infocar-eurotax-mapper/internal/transport"
	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/logging"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

const providerName = "eurotax"

// Client fetches eurotax trims from the catalogue export endpoint.
type Client struct {
	transport *transport.Client
}

// New creates a catalogue client against the given base URL. An API key
// is sent as an X-Api-Key header when provided.
func New(baseURL, apiKey string) *Client {
	var auth transport.Authenticator
	if apiKey != "" {
		auth = &transport.HeaderAuth{Header: "X-Api-Key"}
	}
	return &Client{
		transport: transport.New(providerName, baseURL, auth, apiKey),
	}
}

// NewWithTransport creates a catalogue client over an existing
// transport, mainly for tests.
func NewWithTransport(t *transport.Client) *Client {
	return &Client{transport: t}
}

// FetchTrims loads all eurotax trims for a country and deduplicates
// them per provider code, keeping the most complete record.
func (c *Client) FetchTrims(ctx context.Context, country string) ([]vehicles.Trim, error) {
	if country == "" {
		return nil, &errors.ValidationError{
			Field:   "country",
			Message: "country is required",
		}
	}

	query := url.Values{
		"country": {country},
		"source":  {providerName},
	}

	var raw []vehicles.Trim
	if err := c.transport.Get(ctx, "/v1/private/trims", query, &raw); err != nil {
		return nil, errors.NewLoadError(providerName, country, err)
	}

	deduped := Dedupe(raw)
	logging.Ctx(ctx).Info().
		Str("country", country).
		Int("raw", len(raw)).
		Int("deduped", len(deduped)).
		Msg("fetched target trims")

	return deduped, nil
}
