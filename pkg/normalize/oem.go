package normalize

import (
	"regexp"
	"strings"
)

var (
	renaultPrefixRe    = regexp.MustCompile(`^[A-Z]{2,3}\d(.+)$`)
	renaultAltPrefixRe = regexp.MustCompile(`^[A-Z]{2}\d{2}(.+)$`)
	daciaPrefixRe      = regexp.MustCompile(`^[A-Z0-9]{2,3}\d?([A-Z].+)$`)
	vwSuffixRe         = regexp.MustCompile(`-[A-Z0-9]{3}$`)
	mercedesDLRe       = regexp.MustCompile(`^(.+DL\d)`)
	mercedesSuffixRe   = regexp.MustCompile(`-[A-Z0-9]{2}$`)
	audiSuffixRe       = regexp.MustCompile(`^(.+)-[A-Z0-9]{1,3}$`)
	cupraSuffixRe      = regexp.MustCompile(`^(.+?)(P[0-9X][0-9A-Z]|PF[0-9]).*$`)
	mgSuffixRe         = regexp.MustCompile(`^(.+?)(BJAY|WSB|JAY|JAB|LMD|LJAY|SSA|YGM|RSJ)$`)
)

var (
	skodaSuffixes = []string{"RAA", "WI1"}
	audiSuffixes  = []string{"YEG", "YEA", "WK4"}
	miniSuffixes  = []string{"7EL", "ZKQ", "ZEA", "ZEB", "ZBI", "ZBU", "ZBX"}
)

// CleanOEM applies a brand-specific transformation to an OEM code,
// stripping the dealer or market suffixes and prefixes that one side of
// a mapping carries and the other does not. It returns the cleaned code
// and true, or "" and false when no rule applies for the brand.
func CleanOEM(oem, brand string) (string, bool) {
	if oem == "" {
		return "", false
	}

	oem = strings.ToUpper(strings.TrimSpace(oem))
	brand = strings.ToUpper(strings.TrimSpace(brand))

	switch brand {
	case "RENAULT":
		if m := renaultPrefixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1], true
		}
		if m := renaultAltPrefixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1], true
		}
		if len(oem) > 6 {
			return oem[3:], true
		}

	case "DACIA":
		if m := daciaPrefixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1], true
		}
		if len(oem) > 8 {
			return oem[3:], true
		}

	case "VOLKSWAGEN":
		if vwSuffixRe.MatchString(oem) {
			return oem[:len(oem)-4], true
		}

	case "SKODA":
		for _, suffix := range skodaSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return oem[:len(oem)-len(suffix)], true
			}
		}

	case "MERCEDES", "MERCEDES-BENZ":
		if m := mercedesDLRe.FindStringSubmatch(oem); m != nil {
			return m[1], true
		}
		if mercedesSuffixRe.MatchString(oem) {
			return oem[:len(oem)-3], true
		}

	case "AUDI":
		for _, suffix := range audiSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return oem[:len(oem)-len(suffix)], true
			}
		}
		if m := audiSuffixRe.FindStringSubmatch(oem); m != nil {
			return m[1], true
		}

	case "OPEL":
		if len(oem) >= 7 && isLetter(oem[len(oem)-1]) && !isLetter(oem[len(oem)-2]) {
			return oem[:len(oem)-1], true
		}
		if len(oem) >= 7 {
			return oem[:len(oem)-2], true
		}

	case "MINI":
		for _, suffix := range miniSuffixes {
			if strings.HasSuffix(oem, suffix) {
				return oem[:len(oem)-len(suffix)], true
			}
		}

	case "PEUGEOT", "CITROEN", "DS":
		if len(oem) >= 8 {
			return oem[:len(oem)-2], true
		}

	case "KIA", "HYUNDAI":
		if len(oem) >= 8 {
			return oem[:len(oem)-3], true
		}

	case "MAZDA":
		if len(oem) >= 5 {
			return oem[:len(oem)-1], true
		}

	case "CUPRA":
		if m := cupraSuffixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 5 {
			return m[1], true
		}

	case "MG":
		if m := mgSuffixRe.FindStringSubmatch(oem); m != nil && len(m[1]) >= 8 {
			return m[1], true
		}
	}

	return "", false
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}
