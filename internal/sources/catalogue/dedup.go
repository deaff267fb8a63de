package catalogue

import "github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"

// Dedupe keeps one trim per provider code, preferring the record with
// the most populated fields. Catalogue exports carry several revisions
// of the same natcode and the sparser ones lose attributes the scorer
// needs. Records without a provider code are dropped. Order of first
// appearance is preserved.
func Dedupe(trims []vehicles.Trim) []vehicles.Trim {
	best := make(map[string]int, len(trims)) // providerCode -> index into out
	out := make([]vehicles.Trim, 0, len(trims))

	for _, trim := range trims {
		code := trim.ProviderCode
		if code == "" {
			continue
		}

		at, seen := best[code]
		if !seen {
			best[code] = len(out)
			out = append(out, trim)
			continue
		}

		if completeness(&trim) > completeness(&out[at]) {
			out[at] = trim
		}
	}

	return out
}

// completeness counts the populated fields the scorer cares about.
func completeness(t *vehicles.Trim) int {
	n := 0
	if t.Name != "" {
		n++
	}
	if t.ManufacturerCode != "" {
		n++
	}
	if t.PowerHP != 0 {
		n++
	}
	if t.PowerKW != 0 {
		n++
	}
	if t.CC != 0 {
		n++
	}
	if t.Price != 0 || (t.Prices != nil && t.Prices.OnTheRoad != nil && t.Prices.OnTheRoad.Value != 0) {
		n++
	}
	if t.FuelType != "" {
		n++
	}
	if t.BodyType != "" {
		n++
	}
	if t.Doors != 0 {
		n++
	}
	if t.Gears != 0 {
		n++
	}
	if t.GearType != "" {
		n++
	}
	if t.TractionType != "" {
		n++
	}
	if t.Seats != 0 {
		n++
	}
	if t.Mass != 0 {
		n++
	}
	return n
}
