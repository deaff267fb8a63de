package vehicles

import "github.com/loukach/infocar-eurotax-mapper/pkg/normalize"

// Specs is the comparable attribute set extracted from a trim record.
// Zero values mean the attribute is unknown; every scorer treats
// unknown on either side as no evidence rather than a mismatch.
type Specs struct {
	Name  string  `json:"name"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	CC    int     `json:"cc,omitempty"`
	HP    int     `json:"hp,omitempty"`
	KW    int     `json:"kw,omitempty"`
	Price float64 `json:"price,omitempty"`
	Doors int     `json:"doors,omitempty"`
	Seats int     `json:"seats,omitempty"`
	Gears int     `json:"gears,omitempty"`
	Mass  float64 `json:"mass,omitempty"`

	// Raw provider strings, kept for display.
	Fuel     string `json:"fuel,omitempty"`
	Body     string `json:"body,omitempty"`
	GearType string `json:"gear_type,omitempty"`
	Traction string `json:"traction,omitempty"`

	// Sellable window at year granularity. Zero means unknown.
	SellableBegin int `json:"sellable_begin,omitempty"`
	SellableEnd   int `json:"sellable_end,omitempty"`

	// Canonical forms of the raw strings above.
	FuelNorm     normalize.FuelClass         `json:"fuel_norm,omitempty"`
	BodyNorm     normalize.BodyClass         `json:"body_norm,omitempty"`
	GearTypeNorm normalize.TransmissionClass `json:"gear_type_norm,omitempty"`
	TractionNorm normalize.TractionClass     `json:"traction_norm,omitempty"`
}

// ExtractSpecs pulls the comparable attributes out of a trim record,
// resolving the nested price fallback and converting the sellable
// window to years.
func ExtractSpecs(t *Trim) Specs {
	price := t.Price
	if price == 0 && t.Prices != nil && t.Prices.OnTheRoad != nil {
		price = t.Prices.OnTheRoad.Value
	}

	var begin, end int
	if t.SellableWindow != nil {
		begin = t.SellableWindow.Begin.Year()
		end = t.SellableWindow.End.Year()
	}

	return Specs{
		Name:          t.Name,
		Make:          t.NormalizedMake,
		Model:         normalize.Model(t.NormalizedModel),
		CC:            t.CC,
		HP:            t.PowerHP,
		KW:            t.PowerKW,
		Price:         price,
		Doors:         t.Doors,
		Seats:         t.Seats,
		Gears:         t.Gears,
		Mass:          t.Mass,
		Fuel:          t.FuelType,
		Body:          t.BodyType,
		GearType:      t.GearType,
		Traction:      t.TractionType,
		SellableBegin: begin,
		SellableEnd:   end,
		FuelNorm:      normalize.Fuel(t.FuelType),
		BodyNorm:      normalize.Body(t.BodyType),
		GearTypeNorm:  normalize.Transmission(t.GearType),
		TractionNorm:  normalize.Traction(t.TractionType),
	}
}
