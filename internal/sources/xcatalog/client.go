// Package xcatalog talks to the X-Catalog API: source (Infocar) trim
// lookups, existing-mapping queries and mapping submission.
package xcatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/loukach/infocar-eurotax-mapper/internal/transport"
	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/logging"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

const (
	providerName   = "x-catalog"
	sourceProvider = "infocar"
	destProvider   = "eurotax"
)

// Client is the X-Catalog API client.
type Client struct {
	transport *transport.Client
}

// New creates an X-Catalog client against the given base URL. An API
// key is sent as a Bearer token when provided.
func New(baseURL, apiKey string) *Client {
	var auth transport.Authenticator
	if apiKey != "" {
		auth = &transport.BearerAuth{}
	}
	return &Client{
		transport: transport.New(providerName, baseURL, auth, apiKey),
	}
}

// NewWithTransport creates a client over an existing transport, mainly
// for tests.
func NewWithTransport(t *transport.Client) *Client {
	return &Client{transport: t}
}

// trimSearchRequest is the PUT /trim/search payload.
type trimSearchRequest struct {
	Country        string   `json:"country"`
	Source         string   `json:"source"`
	ReferenceCode  string   `json:"referenceCode"`
	VehicleType    string   `json:"vehicleType"`
	ReferenceDate  string   `json:"referenceDate"`
	EquipmentTypes []string `json:"equipmentTypes"`
	OptionCodes    any      `json:"optionCodes"`
}

// apiStatus is the error-shaped body the search endpoint returns when
// it has nothing, with a 200 status.
type apiStatus struct {
	Code string `json:"code"`
}

// FetchTrim looks up a source trim by provider code. A code unknown to
// the API yields (nil, nil): absence is an outcome, not an error.
func (c *Client) FetchTrim(ctx context.Context, providerCode, country string) (*vehicles.Trim, error) {
	if providerCode == "" {
		return nil, &errors.ValidationError{
			Field:   "providerCode",
			Message: "provider code is required",
		}
	}

	payload := trimSearchRequest{
		Country:        country,
		Source:         sourceProvider,
		ReferenceCode:  providerCode,
		VehicleType:    "auto",
		EquipmentTypes: []string{},
	}

	var raw json.RawMessage
	err := c.transport.PutJSON(ctx, "/trim/search", payload, &raw)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	// The endpoint answers with either a list of trims, a single trim,
	// or a status object carrying an error code.
	switch raw[0] {
	case '[':
		var trims []vehicles.Trim
		if err := json.Unmarshal(raw, &trims); err != nil {
			return nil, errors.WrapAPI(providerName, 0, err)
		}
		if len(trims) == 0 {
			return nil, nil
		}
		return &trims[0], nil

	case '{':
		var status apiStatus
		if err := json.Unmarshal(raw, &status); err == nil {
			switch status.Code {
			case "TRIM_NOT_FOUND", "NOT_FOUND", "ERROR":
				return nil, nil
			}
		}
		var trim vehicles.Trim
		if err := json.Unmarshal(raw, &trim); err != nil {
			return nil, errors.WrapAPI(providerName, 0, err)
		}
		if trim.Make == "" && trim.NormalizedMake == "" && trim.Name == "" {
			return nil, nil
		}
		return &trim, nil
	}

	return nil, nil
}

// Mapping is one source-to-target mapping as stored upstream.
type Mapping struct {
	ID           string   `json:"id"`
	Country      string   `json:"country"`
	SourceCode   string   `json:"sourceCode"`
	DestCode     string   `json:"destCode"`
	DestProvider string   `json:"destProvider"`
	Score        *float64 `json:"score,omitempty"`
	Strategy     string   `json:"strategy,omitempty"`
	VehicleType  string   `json:"vehicleType,omitempty"`
}

// ExistingMapping returns the most recent eurotax mapping for a source
// code, or nil when none exists. Recency is decided by the greatest id;
// ids encode their creation time.
func (c *Client) ExistingMapping(ctx context.Context, sourceCode, vehicleType, country string) (*Mapping, error) {
	query := url.Values{
		"country":     {country},
		"vehicleType": {vehicleType},
	}

	var mappings []Mapping
	path := fmt.Sprintf("/v1/private/mapping/%s/%s", sourceProvider, url.PathEscape(sourceCode))
	if err := c.transport.Get(ctx, path, query, &mappings); err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var latest *Mapping
	for i := range mappings {
		m := &mappings[i]
		if m.DestProvider != destProvider {
			continue
		}
		if latest == nil || m.ID > latest.ID {
			latest = m
		}
	}
	return latest, nil
}

// SubmitMapping records a confirmed source-to-target mapping upstream.
// The raw score is normalized to [0,1] against the profile maximum.
func (c *Client) SubmitMapping(ctx context.Context, sourceCode, destCode string, score, maxScore int, class vehicles.Class, country string) error {
	if sourceCode == "" || destCode == "" {
		return &errors.ValidationError{
			Field:   "mapping",
			Message: "source and destination codes are required",
		}
	}

	normalized := 0.0
	if maxScore > 0 {
		normalized = math.Round(float64(score)/float64(maxScore)*10000) / 10000
	}

	payload := map[string]any{
		"country":        country,
		"destCode":       destCode,
		"destProvider":   destProvider,
		"score":          normalized,
		"sourceCode":     sourceCode,
		"sourceProvider": sourceProvider,
		"strategy":       "manual",
		"vehicleType":    class.VehicleType(),
	}

	if err := c.transport.PostJSON(ctx, "/v1/private/mapping", payload, nil); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("source_code", sourceCode).
		Str("dest_code", destCode).
		Float64("score", normalized).
		Msg("submitted mapping")
	return nil
}
