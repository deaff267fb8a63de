package match

import (
	"regexp"
	"sort"
	"strings"
)

// trimTokens is the known trim-level vocabulary. Tokens are matched as
// whole words against lowercased vehicle names; multi-word and
// hyphenated entries are legal.
var trimTokens = []string{
	// Performance / sporty
	"sport", "sportline", "s-line", "s line", "sline",
	"amg", "amg line", "m sport", "msport", "r-line", "r line", "rline",
	"gt line", "gtline", "gt-line", "n line", "nline",
	"gs line", "gsline", "gs-line",
	"fr", "cupra", "st", "rs", "vrs", "gti", "gtd", "gte", "gt", "gts",
	"r-design", "r-dynamic", "polestar", "veloce", "competition",
	"performance", "sprint", "racing", "s-design",
	// Luxury / premium
	"executive", "premium", "luxury", "exclusive", "ultimate",
	"inscription", "designo", "maybach", "lusso", "tributo",
	"prestige", "platinum", "vip", "deluxe", "luxe",
	// Equipment levels
	"business", "businessline", "style", "elegance", "ambition", "ambiente",
	"comfort", "life", "edition", "special", "limited", "advanced", "tech",
	"active", "plus", "pro", "base", "standard", "lounge", "pop", "cult",
	"icon", "iconic", "trend", "essential", "select", "selection", "core",
	"pure", "prime", "entry", "move", "access", "modern", "individual",
	"signature", "collection", "premiere", "bright", "fresh",
	// Renault / Dacia
	"dynamique", "seduction", "initiale", "intens", "intense", "zen",
	"expression", "laureate", "equilibre", "ambiance", "energy",
	"esprit", "hypnotic", "classique", "authentique", "invite",
	"techroad", "stepway", "wave", "evolve",
	// Peugeot / Citroen / DS
	"shine", "allure", "feline", "feel", "live", "uptown",
	"sense", "chic", "hype", "mylife", "allstreet", "crossway",
	"bastille", "rivoli", "opera", "etoile", "sesame", "trocadero",
	"extravagance", "irresistible", "attitude",
	// Fiat / Alfa Romeo / Maserati / Abarth
	"easy", "distinctive", "eletta", "progression", "dolcevita",
	"mirror", "ecochic", "elective", "eccelsa", "duel", "goldplay",
	"passion", "glam", "trekking", "competizione", "quadrifoglio",
	"trofeo", "modena",
	// VW group / Seat / Skoda
	"comfortline", "highline", "trendline", "xcellence", "xperience",
	"admired", "monte carlo", "scout", "scoutline", "connectline",
	"emotion",
	// BMW
	"xline", "x-line", "advantage", "sport line", "luxury line",
	// Mercedes
	"avantgarde", "progressive", "black edition", "dark",
	"night edition", "atmosphere",
	// Volvo
	"kinetic", "summum", "design",
	// Opel
	"cosmo", "attraction", "enjoy", "youngster",
	// Ford
	"titanium", "vignale", "zetec", "ghia", "wildtrak",
	"connected", "st-line",
	// Nissan
	"acenta", "tekna", "visia", "n-connecta", "n-design", "n-joy",
	// Honda / Mazda
	"instyle", "homura", "takumi",
	// Hyundai / Kia / Genesis
	"essentia", "calligraphy", "exceed",
	// Suzuki
	"attiva", "excite",
	// Jaguar / Land Rover
	"hse", "se", "dynamic", "momentum", "autobiography",
	"portfolio", "vogue",
	// Jeep
	"longitude", "altitude", "overland", "trailhawk", "rebel",
	"summit", "sahara", "rubicon",
	// MG / other
	"trophy", "futura", "classic", "favoured",
	"blackline", "startline", "ocean", "outdoor", "trail",
	// Special editions
	"anniversary", "innovation", "advance", "connect",
	"first edition", "launch", "techno",
	"evolution", "ultra", "extreme",
	"authentic", "lifestyle", "pulse",
	"junior", "club",
	// Variants / drivetrain
	"urban", "city", "cross", "adventure", "offroad", "allroad", "quattro",
	"4matic", "xdrive", "4x4", "4wd", "traction",
}

// trimPatterns holds one word-boundary anchored pattern per token,
// compiled once at init.
var trimPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(trimTokens))
	for _, token := range trimTokens {
		patterns[token] = regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
	}
	return patterns
}()

// ExtractTrimTokens returns the trim tokens found in a vehicle name as
// whole words, in sorted order. A token like "sport" does not match
// inside "sportback".
func ExtractTrimTokens(name string) []string {
	if name == "" {
		return nil
	}

	lower := strings.ToLower(name)
	var found []string
	for token, pattern := range trimPatterns {
		if pattern.MatchString(lower) {
			found = append(found, token)
		}
	}

	sort.Strings(found)
	return found
}
