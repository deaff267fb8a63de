package normalize

// FuelClass is a canonical fuel type. The empty value means unknown.
type FuelClass string

// Canonical fuel classes.
const (
	FuelDiesel       FuelClass = "DIESEL"
	FuelPetrol       FuelClass = "PETROL"
	FuelHybridPetrol FuelClass = "HYBRID_PETROL"
	FuelHybridDiesel FuelClass = "HYBRID_DIESEL"
	FuelElectric     FuelClass = "ELECTRIC"
	FuelLPG          FuelClass = "LPG"
	FuelCNG          FuelClass = "CNG"
)

// Hybrid reports whether the class is one of the hybrid variants.
func (f FuelClass) Hybrid() bool {
	return f == FuelHybridPetrol || f == FuelHybridDiesel
}

// Fuel canonicalizes a raw fuel type string.
//
// Hybrid detection takes priority over base-fuel detection, and plug-in
// variants collapse into the corresponding non-plug-in hybrid class.
// Combined phrases naming both an electric motor and a combustion fuel
// ("elettrica/benzina") resolve to the matching hybrid class.
func Fuel(raw string) FuelClass {
	if raw == "" {
		return ""
	}

	fuel := clean(raw)

	// Pure electric spellings.
	switch fuel {
	case "elettrica", "elettrico", "electric":
		return FuelElectric
	}

	// Hybrids before base fuels: "ibrido benzina" must not fall through
	// to PETROL.
	if containsAny(fuel, "ibrido", "ibrida", "hybrid") {
		if containsAny(fuel, "plug-in", "plug in", "phev") {
			if containsAny(fuel, "diesel", "gasolio") {
				return FuelHybridDiesel
			}
			return FuelHybridPetrol
		}
		if containsAny(fuel, "diesel", "gasolio") {
			return FuelHybridDiesel
		}
		return FuelHybridPetrol
	}

	// Electric combinations, after the explicit hybrid check.
	if containsAny(fuel, "elettric") {
		if containsAny(fuel, "benzina", "petrol") {
			return FuelHybridPetrol
		}
		if containsAny(fuel, "gasolio", "diesel") {
			return FuelHybridDiesel
		}
		return FuelElectric
	}

	// Base fuels.
	switch {
	case containsAny(fuel, "diesel", "gasolio"):
		return FuelDiesel
	case containsAny(fuel, "benzina", "petrol", "gasoline"):
		return FuelPetrol
	case containsAny(fuel, "metano", "cng"):
		return FuelCNG
	case containsAny(fuel, "gpl", "lpg"):
		return FuelLPG
	}

	return ""
}
