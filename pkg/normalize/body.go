package normalize

import (
	"regexp"
	"strings"
)

// BodyClass is a canonical body style. The empty value means unknown.
type BodyClass string

// Canonical body classes.
const (
	BodyPickup      BodyClass = "PICKUP"
	BodyBus         BodyClass = "BUS"
	BodyPlatform    BodyClass = "PLATFORM"
	BodyVan         BodyClass = "VAN"
	BodyChassis     BodyClass = "CHASSIS"
	BodySUV         BodyClass = "SUV"
	BodyWagon       BodyClass = "WAGON"
	BodyConvertible BodyClass = "CONVERTIBLE"
	BodyCoupe       BodyClass = "COUPE"
	BodyMPV         BodyClass = "MPV"
	BodyHatchback   BodyClass = "HATCHBACK"
	BodySedan       BodyClass = "SEDAN"
)

// doorSuffixRe matches door-count suffixes like "3 porte" / "5porte".
var doorSuffixRe = regexp.MustCompile(`\s*\d+\s*port[ei]`)

// Body canonicalizes a raw body type string.
//
// Matching is ordered substring matching: compound phrases from either
// provider legitimately contain several keyword stems ("microfurgone
// pick-up", "coupe-cabriolet", "berlina multispazio"), so the first
// matching class in priority order wins. Reordering the checks changes
// the result for those compounds.
func Body(raw string) BodyClass {
	if raw == "" {
		return ""
	}

	body := clean(raw)
	body = strings.TrimSpace(doorSuffixRe.ReplaceAllString(body, ""))

	switch {
	// PICKUP before VAN: "microfurgone pick-up" contains both stems.
	case containsAny(body, "pick-up", "pick up", "pickup"):
		return BodyPickup

	case containsAny(body, "autobus", "scuolabus") || body == "bus":
		return BodyBus

	// Cassone/carro before CHASSIS to catch "cabinato con cassone".
	case containsAny(body, "cassone", "carro"):
		return BodyPlatform

	// VAN before CHASSIS: "cabinato allestito" is a van fit-out.
	case containsAny(body, "furgone", "furgonato", "scudato", "pulmino",
		"promiscuo", "combi", "allestito") || body == "van":
		return BodyVan

	case containsAny(body, "cabinato", "telaio") || body == "chassis" || body == "cab":
		return BodyChassis

	// Remaining platform spellings (pianale without cabinato).
	case containsAny(body, "pianale", "platform"):
		return BodyPlatform

	case containsAny(body, "suv", "crossover", "fuoristrada", "torpedo") || body == "fst":
		return BodySUV

	case containsAny(body, "wagon", "familiare", "estate", "touring"):
		return BodyWagon

	// CONVERTIBLE before COUPE: "coupe-cabriolet" opens.
	case containsAny(body, "cabrio", "spider", "roadster", "convertible",
		"apribile", "barchetta"):
		return BodyConvertible

	// "coup" covers "coupe" and accented spellings after folding.
	case containsAny(body, "coup"):
		return BodyCoupe

	// MPV before SEDAN: "berlina multispazio" is an MPV.
	case containsAny(body, "monovolume", "mpv", "minivan", "multispazio"):
		return BodyMPV

	case containsAny(body, "hatchback"):
		return BodyHatchback

	case containsAny(body, "berlina", "sedan", "3 volumi"):
		return BodySedan
	}

	return ""
}
