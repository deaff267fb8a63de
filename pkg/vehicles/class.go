package vehicles

import (
	"strings"

	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
)

// Class separates passenger cars from light commercial vehicles. The
// two populations are matched independently: a Fiat Doblo panel van
// must never be offered as a candidate for a Doblo passenger MPV.
type Class string

// Vehicle classes.
const (
	ClassCar Class = "CAR"
	ClassLCV Class = "LCV"
)

// VehicleType returns the lowercase type tag the mapping API uses.
func (c Class) VehicleType() string {
	if c == ClassLCV {
		return "lcv"
	}
	return "car"
}

// Makes that only produce commercial vehicles.
var lcvMakes = map[string]struct{}{
	"IVECO":                       {},
	"MAN":                         {},
	"ISUZU":                       {},
	"PIAGGIO VEICOLI COMMERCIALI": {},
}

// Model name fragments that identify commercial vehicles regardless of
// body type.
var lcvModels = []string{
	"ducato", "daily", "sprinter", "transit", "transporter", "crafter",
	"vito", "citan", "boxer", "jumper", "expert", "jumpy",
	"berlingo van", "partner", "kangoo", "trafic", "master", "movano",
	"vivaro", "combo cargo", "proace", "hiace",
	"nv200", "nv300", "nv400", "e-nv200", "tourneo",
}

// Body classes that imply a commercial vehicle.
var lcvBodies = map[normalize.BodyClass]struct{}{
	normalize.BodyVan:      {},
	normalize.BodyChassis:  {},
	normalize.BodyPickup:   {},
	normalize.BodyPlatform: {},
	normalize.BodyBus:      {},
}

// Identify classifies a vehicle as CAR or LCV. Rules apply in order:
// LCV-only make, LCV model name fragment, LCV body class, default CAR.
func Identify(make, model string, body normalize.BodyClass) Class {
	if make != "" {
		if _, ok := lcvMakes[strings.ToUpper(make)]; ok {
			return ClassLCV
		}
	}

	if model != "" {
		lower := strings.ToLower(model)
		for _, fragment := range lcvModels {
			if strings.Contains(lower, fragment) {
				return ClassLCV
			}
		}
	}

	if _, ok := lcvBodies[body]; ok {
		return ClassLCV
	}

	return ClassCar
}
