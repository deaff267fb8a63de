package match

import (
	"regexp"
	"strings"

	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// OEMMatchType describes how a candidate's OEM code related to the
// source code during scoring.
type OEMMatchType string

// OEM match types.
const (
	OEMMatchExact   OEMMatchType = "EXACT"
	OEMMatchCleaned OEMMatchType = "CLEANED"
	OEMMatchNone    OEMMatchType = "NONE"
)

// Breakdown maps each scored field name to the points it contributed.
// The total score of a candidate is exactly the sum of its values.
type Breakdown map[string]int

// Total sums all field contributions.
func (b Breakdown) Total() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Score is the result of scoring one candidate against a source
// vehicle.
type Score struct {
	Total     int       `json:"total"`
	Breakdown Breakdown `json:"breakdown"`

	// Trim token diagnostics, sorted.
	TrimMatched    []string `json:"trim_matched"`
	TrimSourceOnly []string `json:"trim_source_only"`
	TrimTargetOnly []string `json:"trim_target_only"`

	OEMMatch OEMMatchType `json:"oem_match_type"`
}

// ScoreCandidate scores a target candidate against a source vehicle
// using the given weights. Unknown attributes on either side contribute
// zero; a field never subtracts points.
func ScoreCandidate(source, target vehicles.Specs, sourceOEM, targetOEM, brand string, w Weights) Score {
	breakdown := make(Breakdown, 17)

	breakdown["price"] = scorePrice(source.Price, target.Price, w.Price)
	breakdown["hp"] = scoreDiffTiers(source.HP, target.HP, w.HP, 5, 10)
	breakdown["cc"] = scoreDiffTiers(source.CC, target.CC, w.CC, 50, 100)
	breakdown["kw"] = scoreDiffTiers(source.KW, target.KW, w.KW, 5, 10)
	breakdown["fuel"] = scoreFuel(source.FuelNorm, target.FuelNorm, w.Fuel)
	breakdown["body"] = scoreBody(source.BodyNorm, target.BodyNorm, w.Body)
	breakdown["transmission"] = scoreTransmission(source.GearTypeNorm, target.GearTypeNorm, source.FuelNorm, w.Transmission)
	breakdown["traction"] = scoreTraction(source.TractionNorm, target.TractionNorm, w.Traction)
	breakdown["doors"] = scoreOffByOne(source.Doors, target.Doors, w.Doors)
	breakdown["seats"] = scoreOffByOne(source.Seats, target.Seats, w.Seats)
	breakdown["gears"] = scoreOffByOne(source.Gears, target.Gears, w.Gears)
	breakdown["mass"] = scoreMass(source.Mass, target.Mass, w.Mass)
	breakdown["name"] = scoreNameSimilarity(source.Name, target.Name, w.Name)
	breakdown["model"] = scoreModel(source.Model, target.Model, w.Model)
	breakdown["sellable"] = scoreSellableWindow(source.SellableBegin, source.SellableEnd, target.SellableBegin, target.SellableEnd, w.Sellable)

	trimScore, matched, sourceOnly, targetOnly := scoreTrim(source.Name, target.Name, w.Trim)
	breakdown["trim"] = trimScore

	oemScore, oemMatch := scoreOEM(sourceOEM, targetOEM, brand, w.OEM)
	breakdown["oem"] = oemScore

	return Score{
		Total:          breakdown.Total(),
		Breakdown:      breakdown,
		TrimMatched:    matched,
		TrimSourceOnly: sourceOnly,
		TrimTargetOnly: targetOnly,
		OEMMatch:       oemMatch,
	}
}

// scorePrice awards by relative difference against the larger of the
// two prices: within 10% full, 20% partial, 35% marginal.
func scorePrice(source, target float64, w int) int {
	if source <= 0 || target <= 0 {
		return 0
	}

	larger := source
	if target > larger {
		larger = target
	}
	diffPct := abs(source-target) / larger * 100

	switch {
	case diffPct <= 10:
		return w
	case diffPct <= 20:
		return int(float64(w) * 0.6)
	case diffPct <= 35:
		return int(float64(w) * 0.3)
	}
	return 0
}

// scoreDiffTiers awards by absolute difference: exact full, within
// tight 80%, within loose 50%. Used for power and displacement.
func scoreDiffTiers(source, target, w, tight, loose int) int {
	if source == 0 || target == 0 {
		return 0
	}

	diff := source - target
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return w
	case diff <= tight:
		return int(float64(w) * 0.8)
	case diff <= loose:
		return int(float64(w) * 0.5)
	}
	return 0
}

// scoreOffByOne awards full for an exact count and 60% for a one-off
// difference. Door counts in particular disagree by one between
// providers that do or do not count the tailgate.
func scoreOffByOne(source, target, w int) int {
	if source == 0 || target == 0 {
		return 0
	}

	diff := source - target
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return w
	case 1:
		return int(float64(w) * 0.6)
	}
	return 0
}

func scoreFuel(source, target normalize.FuelClass, w int) int {
	if source == "" || target == "" {
		return 0
	}
	if source == target {
		return w
	}
	// Hybrid variants of different base fuels still beat a plain
	// mismatch.
	if source.Hybrid() && target.Hybrid() {
		return int(float64(w) * 0.7)
	}
	return 0
}

func scoreBody(source, target normalize.BodyClass, w int) int {
	if source == "" || target == "" {
		return 0
	}
	if source == target {
		return w
	}
	return 0
}

// scoreTransmission is lenient for electric vehicles, whose single
// reduction gear is encoded inconsistently across providers.
func scoreTransmission(source, target normalize.TransmissionClass, sourceFuel normalize.FuelClass, w int) int {
	if source == "" || target == "" {
		return 0
	}
	if source == target {
		return w
	}
	if sourceFuel == normalize.FuelElectric {
		return int(float64(w) * 0.5)
	}
	return 0
}

func scoreTraction(source, target normalize.TractionClass, w int) int {
	if source == "" || target == "" {
		return 0
	}
	if source == target {
		return w
	}
	return 0
}

// scoreMass awards by relative difference: within 5% full, 10% partial.
func scoreMass(source, target float64, w int) int {
	if source <= 0 || target <= 0 {
		return 0
	}

	larger := source
	if target > larger {
		larger = target
	}
	diffPct := abs(source-target) / larger * 100

	switch {
	case diffPct <= 5:
		return w
	case diffPct <= 10:
		return int(float64(w) * 0.6)
	}
	return 0
}

// scoreTrim compares the trim token sets of the two names and awards
// proportionally to the overlap against the larger set. Both sides
// empty is no evidence; one side empty scores zero but still reports
// the other side's tokens.
func scoreTrim(sourceName, targetName string, w int) (score int, matched, sourceOnly, targetOnly []string) {
	sourceTrims := ExtractTrimTokens(sourceName)
	targetTrims := ExtractTrimTokens(targetName)

	targetSet := make(map[string]struct{}, len(targetTrims))
	for _, t := range targetTrims {
		targetSet[t] = struct{}{}
	}
	sourceSet := make(map[string]struct{}, len(sourceTrims))
	for _, t := range sourceTrims {
		sourceSet[t] = struct{}{}
	}

	matched = []string{}
	sourceOnly = []string{}
	targetOnly = []string{}
	for _, t := range sourceTrims {
		if _, ok := targetSet[t]; ok {
			matched = append(matched, t)
		} else {
			sourceOnly = append(sourceOnly, t)
		}
	}
	for _, t := range targetTrims {
		if _, ok := sourceSet[t]; !ok {
			targetOnly = append(targetOnly, t)
		}
	}

	if len(sourceTrims) == 0 || len(targetTrims) == 0 {
		return 0, matched, sourceOnly, targetOnly
	}

	if len(matched) > 0 {
		larger := len(sourceTrims)
		if len(targetTrims) > larger {
			larger = len(targetTrims)
		}
		ratio := float64(len(matched)) / float64(larger)
		return int(float64(w) * ratio), matched, sourceOnly, targetOnly
	}

	return 0, matched, sourceOnly, targetOnly
}

var wordRe = regexp.MustCompile(`\w+`)

// nameNoise are tokens too common in trim names to carry any signal.
var nameNoise = map[string]struct{}{
	"cv": {}, "hp": {}, "kw": {}, "auto": {}, "aut": {}, "man": {},
	"the": {}, "and": {}, "di": {}, "da": {},
}

// scoreNameSimilarity awards proportionally to the share of word
// tokens the two full names have in common, noise words excluded.
func scoreNameSimilarity(sourceName, targetName string, w int) int {
	if sourceName == "" || targetName == "" {
		return 0
	}

	sourceTokens := nameTokens(sourceName)
	targetTokens := nameTokens(targetName)
	if len(sourceTokens) == 0 || len(targetTokens) == 0 {
		return 0
	}

	common := 0
	for t := range sourceTokens {
		if _, ok := targetTokens[t]; ok {
			common++
		}
	}

	larger := len(sourceTokens)
	if len(targetTokens) > larger {
		larger = len(targetTokens)
	}
	similarity := float64(common) / float64(larger)

	return int(float64(w) * similarity)
}

func nameTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range wordRe.FindAllString(strings.ToLower(name), -1) {
		if _, ok := nameNoise[t]; ok {
			continue
		}
		tokens[t] = struct{}{}
	}
	return tokens
}

// scoreModel awards only for an exact normalized match, space
// insensitive ("500 x" equals "500x"). Containment is already the
// selection criterion and earns nothing here.
func scoreModel(source, target string, w int) int {
	if source == "" || target == "" {
		return 0
	}
	s := strings.ToLower(strings.TrimSpace(source))
	t := strings.ToLower(strings.TrimSpace(target))
	if s == t {
		return w
	}
	if strings.ReplaceAll(s, " ", "") == strings.ReplaceAll(t, " ", "") {
		return w
	}
	return 0
}

// scoreSellableWindow compares sale periods at year granularity. A
// missing end year means the trim is still on sale.
func scoreSellableWindow(sourceBegin, sourceEnd, targetBegin, targetEnd, w int) int {
	if sourceBegin == 0 || targetBegin == 0 {
		return 0
	}

	sEnd := sourceEnd
	if sEnd == 0 {
		sEnd = 9999
	}
	tEnd := targetEnd
	if tEnd == 0 {
		tEnd = 9999
	}

	if sourceBegin > tEnd || targetBegin > sEnd {
		return 0
	}

	if sourceBegin == targetBegin && sEnd == tEnd {
		return w
	}

	return int(float64(w) * 0.5)
}

// scoreOEM awards full weight for an exact code match and half for a
// match after brand-specific cleaning. OEM codes never gate candidate
// selection; shared codes across door-count variants make them
// unreliable as an identity.
func scoreOEM(sourceOEM, targetOEM, brand string, w int) (int, OEMMatchType) {
	if sourceOEM == "" || targetOEM == "" {
		return 0, OEMMatchNone
	}

	source := strings.ToUpper(strings.TrimSpace(sourceOEM))
	target := strings.ToUpper(strings.TrimSpace(targetOEM))

	if source == target {
		return w, OEMMatchExact
	}

	sourceCleaned, sourceOK := normalize.CleanOEM(source, brand)
	targetCleaned, targetOK := normalize.CleanOEM(target, brand)
	if sourceOK && targetOK && strings.EqualFold(sourceCleaned, targetCleaned) {
		return int(float64(w) * 0.5), OEMMatchCleaned
	}

	return 0, OEMMatchNone
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
