// Package match implements the two-stage record matching engine:
// candidate selection over an immutable index, then weighted
// field-by-field scoring with confidence classification.
package match

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
)

// Weights assigns a maximum point value to every scored field. Scorers
// award the full weight, a fixed fraction of it, or zero; the sum of
// all weights is the maximum achievable score for a candidate.
type Weights struct {
	Price        int `yaml:"price" json:"price"`
	HP           int `yaml:"hp" json:"hp"`
	Trim         int `yaml:"trim" json:"trim"`
	CC           int `yaml:"cc" json:"cc"`
	Fuel         int `yaml:"fuel" json:"fuel"`
	Sellable     int `yaml:"sellable" json:"sellable"`
	Body         int `yaml:"body" json:"body"`
	OEM          int `yaml:"oem" json:"oem"`
	Model        int `yaml:"model" json:"model"`
	Transmission int `yaml:"transmission" json:"transmission"`
	Traction     int `yaml:"traction" json:"traction"`
	Doors        int `yaml:"doors" json:"doors"`
	Name         int `yaml:"name" json:"name"`
	Seats        int `yaml:"seats" json:"seats"`
	Gears        int `yaml:"gears" json:"gears"`
	KW           int `yaml:"kw" json:"kw"`
	Mass         int `yaml:"mass" json:"mass"`
}

// Max returns the maximum achievable score, the sum of all weights.
func (w Weights) Max() int {
	return w.Price + w.HP + w.Trim + w.CC + w.Fuel + w.Sellable +
		w.Body + w.OEM + w.Model + w.Transmission + w.Traction +
		w.Doors + w.Name + w.Seats + w.Gears + w.KW + w.Mass
}

// Validate checks that no weight is negative and at least one is
// positive.
func (w Weights) Validate() error {
	fields := map[string]int{
		"price": w.Price, "hp": w.HP, "trim": w.Trim, "cc": w.CC,
		"fuel": w.Fuel, "sellable": w.Sellable, "body": w.Body,
		"oem": w.OEM, "model": w.Model, "transmission": w.Transmission,
		"traction": w.Traction, "doors": w.Doors, "name": w.Name,
		"seats": w.Seats, "gears": w.Gears, "kw": w.KW, "mass": w.Mass,
	}
	for name, v := range fields {
		if v < 0 {
			return &errors.ValidationError{
				Field:   name,
				Value:   fmt.Sprintf("%d", v),
				Message: "weight must not be negative",
			}
		}
	}
	if w.Max() == 0 {
		return &errors.ValidationError{
			Field:   "weights",
			Message: "at least one weight must be positive",
		}
	}
	return nil
}

// DefaultProfile is the profile used when none is requested.
const DefaultProfile = "default"

// builtinProfiles are the tuned weight sets shipped with the engine.
// The default profile favors price and power, the strongest
// discriminators between trims of the same model. The trim_heavy
// profile exists for makes whose trims differ mostly by equipment name.
var builtinProfiles = map[string]Weights{
	"default": {
		Price: 25, HP: 20, Trim: 15, CC: 15, Fuel: 15,
		Sellable: 10, Body: 10, OEM: 10,
		Model: 5, Transmission: 5, Traction: 5, Doors: 5, Name: 5,
		Seats: 3, Gears: 3, KW: 3, Mass: 3,
	},
	"flat": {
		Price: 10, HP: 10, Trim: 10, CC: 10, Fuel: 10,
		Sellable: 10, Body: 10, OEM: 10,
		Model: 10, Transmission: 10, Traction: 10, Doors: 10, Name: 10,
		Seats: 3, Gears: 3, KW: 3, Mass: 3,
	},
	"trim_heavy": {
		Price: 5, HP: 10, Trim: 40, CC: 10, Fuel: 10,
		Sellable: 20, Body: 10, OEM: 5,
		Model: 5, Transmission: 5, Traction: 5, Doors: 5, Name: 5,
		Seats: 3, Gears: 3, KW: 3, Mass: 3,
	},
}

// Profiles is a named registry of weight sets.
type Profiles map[string]Weights

// BuiltinProfiles returns a copy of the shipped profile registry.
func BuiltinProfiles() Profiles {
	out := make(Profiles, len(builtinProfiles))
	for name, w := range builtinProfiles {
		out[name] = w
	}
	return out
}

// Get resolves a profile by name; the empty name resolves to the
// default profile.
func (p Profiles) Get(name string) (Weights, error) {
	if name == "" {
		name = DefaultProfile
	}
	w, ok := p[name]
	if !ok {
		return Weights{}, &errors.NotFoundError{Resource: "weight profile", ID: name}
	}
	return w, nil
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadProfiles reads additional weight profiles from YAML and merges
// them over the builtin registry. A loaded profile may override a
// builtin one of the same name.
func LoadProfiles(r io.Reader) (Profiles, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "weight profiles", err)
	}

	var loaded map[string]Weights
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, &errors.ConfigError{
			Component: "weight profiles",
			Message:   "invalid YAML",
			Err:       err,
		}
	}

	profiles := BuiltinProfiles()
	for name, w := range loaded {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		profiles[name] = w
	}
	return profiles, nil
}
