package normalize

// TransmissionClass is a canonical transmission type. The empty value
// means unknown.
type TransmissionClass string

// Canonical transmission classes. Dual-clutch and sequential/robotized
// gearboxes count as AUTOMATIC.
const (
	TransmissionAutomatic TransmissionClass = "AUTOMATIC"
	TransmissionManual    TransmissionClass = "MANUAL"
	TransmissionCVT       TransmissionClass = "CVT"
)

// Transmission canonicalizes a raw transmission type string.
func Transmission(raw string) TransmissionClass {
	if raw == "" {
		return ""
	}

	trans := clean(raw)

	switch {
	case containsAny(trans, "automatic", "auto", "dsg", "dct", "robotizzato", "sequenziale"):
		return TransmissionAutomatic
	case containsAny(trans, "manual", "manuale", "meccanico"):
		return TransmissionManual
	case containsAny(trans, "cvt"):
		return TransmissionCVT
	}

	return ""
}

// TractionClass is a canonical drivetrain layout. The empty value means
// unknown.
type TractionClass string

// Canonical traction classes. 4x4/4wd spellings map to AWD.
const (
	TractionFWD TractionClass = "FWD"
	TractionRWD TractionClass = "RWD"
	TractionAWD TractionClass = "AWD"
)

// Traction canonicalizes a raw traction type string.
func Traction(raw string) TractionClass {
	if raw == "" {
		return ""
	}

	traction := clean(raw)

	switch {
	case containsAny(traction, "anteriore", "front", "fwd"):
		return TractionFWD
	case containsAny(traction, "posteriore", "rear", "rwd"):
		return TractionRWD
	case containsAny(traction, "integrale", "all-wheel", "awd", "4x4", "4wd"):
		return TractionAWD
	}

	return ""
}
