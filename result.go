package mapper

import (
	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

// DecisionNoCandidates is the decision reported when selection found
// nothing to score. Otherwise the decision is the top candidate's
// confidence level.
const DecisionNoCandidates = "NO_CANDIDATES"

// Result is the outcome of matching one source record.
type Result struct {
	// Found reports whether the source code resolved to a record.
	// An unresolvable code is an outcome, not an error.
	Found bool `json:"found"`

	// SourceCode is the provider code that actually resolved; it
	// differs from OriginalCode when the inverted form was used.
	SourceCode   string `json:"source_code,omitempty"`
	OriginalCode string `json:"original_code,omitempty"`
	WasInverted  bool   `json:"was_inverted,omitempty"`

	OEMCode     string         `json:"oem_code,omitempty"`
	Brand       string         `json:"brand,omitempty"`
	SourceName  string         `json:"source_name,omitempty"`
	SourceSpecs vehicles.Specs `json:"source_specs,omitempty"`
	SourceTrims []string       `json:"source_trims,omitempty"`
	Class       vehicles.Class `json:"vehicle_class,omitempty"`

	Profile  string `json:"profile"`
	MaxScore int    `json:"max_score"`

	// Candidates in descending score order.
	Candidates []Candidate `json:"candidates,omitempty"`

	// Decision is the top candidate's confidence level, or
	// NO_CANDIDATES when selection came up empty.
	Decision           string  `json:"decision,omitempty"`
	Confidence         float64 `json:"confidence,omitempty"`
	RecommendedNatcode string  `json:"recommended_natcode,omitempty"`
}

// Top returns the best candidate, or nil when there is none.
func (r *Result) Top() *Candidate {
	if len(r.Candidates) == 0 {
		return nil
	}
	return &r.Candidates[0]
}

// Candidate is one scored target record.
type Candidate struct {
	Natcode string         `json:"natcode"`
	OEMCode string         `json:"oem_code,omitempty"`
	Name    string         `json:"name"`
	Specs   vehicles.Specs `json:"specs"`
	Class   vehicles.Class `json:"vehicle_class"`

	Score      int                `json:"score"`
	Breakdown  match.Breakdown    `json:"breakdown"`
	OEMMatch   match.OEMMatchType `json:"oem_match_type"`
	Confidence match.Confidence   `json:"confidence"`

	TrimMatched    []string `json:"trim_matched,omitempty"`
	TrimSourceOnly []string `json:"trim_source_only,omitempty"`
	TrimTargetOnly []string `json:"trim_target_only,omitempty"`
}

// makeCandidates converts ranked records to the public candidate shape.
func makeCandidates(ranked []match.ScoredCandidate, maxScore int) []Candidate {
	out := make([]Candidate, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, Candidate{
			Natcode:        sc.Record.Natcode(),
			OEMCode:        sc.Record.Trim.ManufacturerCode,
			Name:           sc.Record.Trim.Name,
			Specs:          sc.Record.Specs,
			Class:          sc.Record.Class,
			Score:          sc.Total,
			Breakdown:      sc.Breakdown,
			OEMMatch:       sc.OEMMatch,
			Confidence:     match.Classify(sc.Total, maxScore),
			TrimMatched:    sc.TrimMatched,
			TrimSourceOnly: sc.TrimSourceOnly,
			TrimTargetOnly: sc.TrimTargetOnly,
		})
	}
	return out
}
