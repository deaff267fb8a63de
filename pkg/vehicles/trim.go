// Package vehicles defines the catalogue trim record shared by both
// providers, the derived comparable spec set, vehicle class
// identification and provider code handling.
package vehicles

import (
	"encoding/json"
	"strconv"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
)

// Trim is a single catalogue record as served by the trims collection.
// Records from either provider share this shape; only the provider code
// namespace differs.
type Trim struct {
	ProviderCode     string          `json:"providerCode"`
	ManufacturerCode string          `json:"manufacturerCode,omitempty"`
	Name             string          `json:"name"`
	Make             string          `json:"make,omitempty"`
	NormalizedMake   string          `json:"normalizedMake"`
	NormalizedModel  string          `json:"normalizedModel"`
	BodyType         string          `json:"bodyType,omitempty"`
	FuelType         string          `json:"fuelType,omitempty"`
	GearType         string          `json:"gearType,omitempty"`
	TractionType     string          `json:"tractionType,omitempty"`
	CC               int             `json:"cc,omitempty"`
	PowerHP          int             `json:"powerHp,omitempty"`
	PowerKW          int             `json:"powerKw,omitempty"`
	Doors            int             `json:"doors,omitempty"`
	Seats            int             `json:"seats,omitempty"`
	Gears            int             `json:"gears,omitempty"`
	Mass             float64         `json:"mass,omitempty"`
	Price            float64         `json:"price,omitempty"`
	Prices           *Prices         `json:"prices,omitempty"`
	SellableWindow   *SellableWindow `json:"sellableWindow,omitempty"`
}

// Prices is the nested price block some records carry instead of a
// top-level price.
type Prices struct {
	OnTheRoad *PriceValue `json:"onTheRoad,omitempty"`
}

// PriceValue is a single priced amount.
type PriceValue struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency,omitempty"`
}

// SellableWindow is the period a trim was on sale, in epoch
// milliseconds. A zero End means the trim is still on sale.
type SellableWindow struct {
	Begin EpochMillis `json:"begin,omitempty"`
	End   EpochMillis `json:"end,omitempty"`
}

// EpochMillis is a millisecond timestamp that decodes from either a
// bare JSON number or the extended-JSON form {"$numberLong": "..."}
// that Mongo exports produce.
type EpochMillis int64

// UnmarshalJSON implements json.Unmarshaler.
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*e = 0
		return nil
	}

	if data[0] == '{' {
		var ext struct {
			NumberLong string `json:"$numberLong"`
		}
		if err := json.Unmarshal(data, &ext); err != nil {
			return err
		}
		if ext.NumberLong == "" {
			*e = 0
			return nil
		}
		n, err := strconv.ParseInt(ext.NumberLong, 10, 64)
		if err != nil {
			return err
		}
		*e = EpochMillis(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*e = EpochMillis(n)
	return nil
}

// Year converts the timestamp to a calendar year using whole 365-day
// years from the epoch. Matching only ever compares windows at year
// granularity. Zero maps to year zero, meaning unknown.
func (e EpochMillis) Year() int {
	if e == 0 {
		return 0
	}
	return int(int64(e)/1000/86400/365) + 1970
}

// InvertProviderCode swaps the two 6-digit halves of a 12-digit
// provider code. Source systems occasionally emit codes with the
// halves reversed, and the swapped form is the only fallback lookup
// worth trying.
func InvertProviderCode(code string) (string, error) {
	if len(code) != 12 {
		return "", &errors.ValidationError{
			Field:   "providerCode",
			Value:   code,
			Message: "must be exactly 12 digits",
		}
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return "", &errors.ValidationError{
				Field:   "providerCode",
				Value:   code,
				Message: "must contain only digits",
			}
		}
	}
	return code[6:] + code[:6], nil
}
