package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loukach/infocar-eurotax-mapper/pkg/normalize"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

func TestExtractTrimTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single token", "500X 1.0 T3 120cv Sport", []string{"sport"}},
		{"whole word only", "A3 Sportback 35 TFSI", nil},
		{"multiword token", "Fabia 1.0 TSI Monte Carlo", []string{"monte carlo"}},
		{"hyphenated token", "A4 Avant 40 TDI S-Line", []string{"s-line"}},
		{"several tokens sorted", "Tipo Cross Plus 1.5 Hybrid", []string{"cross", "plus"}},
		{"token inside token", "Golf GT Sport Line", []string{"gt", "sport", "sport line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTrimTokens(tt.in))
		})
	}
}

func TestScorePrice(t *testing.T) {
	tests := []struct {
		name           string
		source, target float64
		want           int
	}{
		{"missing source", 0, 20000, 0},
		{"missing target", 20000, 0, 0},
		{"identical", 20000, 20000, 25},
		{"within 10pct", 20000, 21900, 25},
		{"exactly 10pct", 18000, 20000, 25},
		{"within 20pct", 20000, 24000, 15},
		{"within 35pct", 20000, 29000, 7},
		{"beyond 35pct", 20000, 40000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorePrice(tt.source, tt.target, 25))
		})
	}
}

func TestScoreDiffTiers(t *testing.T) {
	// HP with the default weight of 20 and 5/10 tiers.
	assert.Equal(t, 20, scoreDiffTiers(120, 120, 20, 5, 10))
	assert.Equal(t, 16, scoreDiffTiers(120, 125, 20, 5, 10))
	assert.Equal(t, 10, scoreDiffTiers(120, 130, 20, 5, 10))
	assert.Equal(t, 0, scoreDiffTiers(120, 131, 20, 5, 10))
	assert.Equal(t, 0, scoreDiffTiers(0, 120, 20, 5, 10))

	// Monotonic: a closer target never scores lower.
	prev := 20
	for diff := 0; diff <= 12; diff++ {
		got := scoreDiffTiers(120, 120+diff, 20, 5, 10)
		assert.LessOrEqual(t, got, prev, "diff %d", diff)
		prev = got
	}
}

func TestScoreOffByOne(t *testing.T) {
	assert.Equal(t, 5, scoreOffByOne(5, 5, 5))
	assert.Equal(t, 3, scoreOffByOne(5, 4, 5))
	assert.Equal(t, 0, scoreOffByOne(5, 3, 5))
	assert.Equal(t, 0, scoreOffByOne(0, 5, 5))
}

func TestScoreFuel(t *testing.T) {
	assert.Equal(t, 15, scoreFuel(normalize.FuelPetrol, normalize.FuelPetrol, 15))
	assert.Equal(t, 0, scoreFuel(normalize.FuelPetrol, normalize.FuelDiesel, 15))
	// Hybrid variants of different base fuels get partial credit.
	assert.Equal(t, 10, scoreFuel(normalize.FuelHybridPetrol, normalize.FuelHybridDiesel, 15))
	assert.Equal(t, 0, scoreFuel("", normalize.FuelPetrol, 15))
}

func TestScoreTransmission(t *testing.T) {
	assert.Equal(t, 5, scoreTransmission(normalize.TransmissionManual, normalize.TransmissionManual, normalize.FuelPetrol, 5))
	assert.Equal(t, 0, scoreTransmission(normalize.TransmissionManual, normalize.TransmissionAutomatic, normalize.FuelPetrol, 5))
	// EV leniency on mismatch.
	assert.Equal(t, 2, scoreTransmission(normalize.TransmissionManual, normalize.TransmissionAutomatic, normalize.FuelElectric, 5))
	assert.Equal(t, 0, scoreTransmission("", normalize.TransmissionAutomatic, normalize.FuelElectric, 5))
}

func TestScoreMass(t *testing.T) {
	assert.Equal(t, 3, scoreMass(1320, 1320, 3))
	assert.Equal(t, 3, scoreMass(1320, 1380, 3))
	assert.Equal(t, 1, scoreMass(1320, 1420, 3))
	assert.Equal(t, 0, scoreMass(1320, 1600, 3))
	assert.Equal(t, 0, scoreMass(0, 1320, 3))
}

func TestScoreTrim(t *testing.T) {
	// Full overlap.
	score, matched, sourceOnly, targetOnly := scoreTrim("500X Sport", "500X Sport 1.0", 15)
	assert.Equal(t, 15, score)
	assert.Equal(t, []string{"sport"}, matched)
	assert.Empty(t, sourceOnly)
	assert.Empty(t, targetOnly)

	// Partial overlap scored against the larger set.
	score, matched, _, targetOnly = scoreTrim("Tipo Cross", "Tipo Cross Plus", 15)
	assert.Equal(t, 7, score) // 15 * 1/2
	assert.Equal(t, []string{"cross"}, matched)
	assert.Equal(t, []string{"plus"}, targetOnly)

	// One side without tokens scores zero but still reports the other.
	score, _, _, targetOnly = scoreTrim("Panda 1.2", "Panda 1.2 Lounge", 15)
	assert.Equal(t, 0, score)
	assert.Equal(t, []string{"lounge"}, targetOnly)

	// Disjoint sets score zero.
	score, matched, _, _ = scoreTrim("Panda Lounge", "Panda Pop", 15)
	assert.Equal(t, 0, score)
	assert.Empty(t, matched)
}

func TestScoreNameSimilarity(t *testing.T) {
	// Identical names after noise removal.
	assert.Equal(t, 5, scoreNameSimilarity("Panda 1.2 69cv", "Panda 1.2 69cv", 5))
	// Noise tokens do not count against similarity.
	assert.Equal(t, 5, scoreNameSimilarity("Panda 1.2 aut", "Panda 1.2", 5))
	assert.Equal(t, 0, scoreNameSimilarity("", "Panda", 5))
	assert.Equal(t, 0, scoreNameSimilarity("Panda", "Punto", 5))
}

func TestScoreModel(t *testing.T) {
	assert.Equal(t, 5, scoreModel("500x", "500x", 5))
	// Space-insensitive equality.
	assert.Equal(t, 5, scoreModel("500 x", "500x", 5))
	// Containment is not enough.
	assert.Equal(t, 0, scoreModel("500", "500x", 5))
	assert.Equal(t, 0, scoreModel("", "500x", 5))
}

func TestScoreSellableWindow(t *testing.T) {
	tests := []struct {
		name                       string
		sBegin, sEnd, tBegin, tEnd int
		want                       int
	}{
		{"missing source begin", 0, 2022, 2019, 2022, 0},
		{"missing target begin", 2019, 2022, 0, 2022, 0},
		{"exact", 2019, 2022, 2019, 2022, 10},
		{"both open ended", 2019, 0, 2019, 0, 10},
		{"overlap", 2019, 2022, 2020, 2023, 5},
		{"open end overlaps", 2019, 0, 2021, 2023, 5},
		{"no overlap", 2015, 2017, 2019, 2022, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreSellableWindow(tt.sBegin, tt.sEnd, tt.tBegin, tt.tEnd, 10))
		})
	}
}

func TestScoreOEM(t *testing.T) {
	score, match := scoreOEM("334AXH1B", "334AXH1B", "FIAT", 10)
	assert.Equal(t, 10, score)
	assert.Equal(t, OEMMatchExact, match)

	// Exact comparison is case-insensitive.
	score, match = scoreOEM("334axh1b", "334AXH1B", "FIAT", 10)
	assert.Equal(t, 10, score)
	assert.Equal(t, OEMMatchExact, match)

	// Cleaned match: same code modulo a brand-specific suffix.
	score, match = scoreOEM("CD13NZ-GPA", "CD13NZ-HSA", "VOLKSWAGEN", 10)
	assert.Equal(t, 5, score)
	assert.Equal(t, OEMMatchCleaned, match)

	// No cleaning rule for the brand means no partial credit.
	score, match = scoreOEM("AAA111", "AAA222", "FIAT", 10)
	assert.Equal(t, 0, score)
	assert.Equal(t, OEMMatchNone, match)

	score, match = scoreOEM("", "334AXH1B", "FIAT", 10)
	assert.Equal(t, 0, score)
	assert.Equal(t, OEMMatchNone, match)
}

func TestScoreCandidateTotalEqualsBreakdownSum(t *testing.T) {
	source := vehicles.Specs{
		Name: "500X 1.0 T3 120cv Sport", Model: "500x",
		CC: 999, HP: 120, KW: 88, Price: 24000,
		Doors: 5, Seats: 5, Gears: 6, Mass: 1320,
		SellableBegin: 2019, SellableEnd: 2022,
		FuelNorm:     normalize.FuelPetrol,
		BodyNorm:     normalize.BodySUV,
		GearTypeNorm: normalize.TransmissionManual,
		TractionNorm: normalize.TractionFWD,
	}
	target := source
	target.Name = "500X 1.0 FireFly T3 Sport"
	target.Price = 24500

	score := ScoreCandidate(source, target, "334AXH1B", "334AXH1B", "FIAT", builtinProfiles["default"])

	assert.Equal(t, score.Breakdown.Total(), score.Total)
	assert.Len(t, score.Breakdown, 17)
	assert.Equal(t, OEMMatchExact, score.OEMMatch)
	assert.Equal(t, []string{"sport"}, score.TrimMatched)

	// No field exceeds its weight and the total stays within bounds.
	w := builtinProfiles["default"]
	assert.LessOrEqual(t, score.Total, w.Max())
	assert.Equal(t, w.Price, score.Breakdown["price"])
	assert.Equal(t, w.HP, score.Breakdown["hp"])
	assert.Equal(t, w.OEM, score.Breakdown["oem"])
}
