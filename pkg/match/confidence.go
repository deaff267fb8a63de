package match

// Confidence classifies a score into a recommendation level using
// thresholds on the fraction of the maximum achievable score, so the
// levels mean the same thing under every weight profile.
type Confidence string

// Confidence levels, strongest first.
const (
	ConfidencePerfect  Confidence = "PERFECT"
	ConfidenceLikely   Confidence = "LIKELY"
	ConfidencePossible Confidence = "POSSIBLE"
	ConfidenceUnlikely Confidence = "UNLIKELY"
)

// Classify maps a score to a confidence level. With the default
// weights (max 157) the band edges fall at 113, 84 and 45 points.
func Classify(score, max int) Confidence {
	if max <= 0 {
		return ConfidenceUnlikely
	}

	pct := float64(score) / float64(max)
	switch {
	case pct >= 0.714:
		return ConfidencePerfect
	case pct >= 0.535:
		return ConfidenceLikely
	case pct >= 0.285:
		return ConfidencePossible
	}
	return ConfidenceUnlikely
}
