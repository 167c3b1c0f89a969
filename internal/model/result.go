package model

import "time"

// DecisionPathLength is the number of pipeline stages every classification
// runs; decision paths always have exactly this many entries.
const DecisionPathLength = 9

// ManualReviewThreshold is the confidence below which a human curator must
// confirm the classification.
const ManualReviewThreshold = 0.6

// ClassificationResult is the immutable outcome of classifying one
// (term, definition) pair. It is created per call and never mutated.
type ClassificationResult struct {
	Term                   string                   `json:"term"`
	Definition             string                   `json:"definition"`
	Context                string                   `json:"context,omitempty"`
	PrimaryCategory        UFOCategory              `json:"primary_category"`
	Confidence             float64                  `json:"confidence"`
	SecondaryCategories    []UFOCategory            `json:"secondary_categories"`
	MatchedPatterns        map[UFOCategory][]string `json:"matched_patterns"`
	AllScores              map[UFOCategory]float64  `json:"all_scores"`
	DecisionPath           []string                 `json:"decision_path"`
	DisambiguationNotes    []string                 `json:"disambiguation_notes,omitempty"`
	Explanation            string                   `json:"explanation"`
	Elapsed                time.Duration            `json:"elapsed_ns"`
	ManualOverrideRequired bool                     `json:"manual_override_required"`
}

// ToDict returns a JSON-serializable projection of the result with categories
// as plain strings, for UI and persistence layers.
func (r *ClassificationResult) ToDict() map[string]interface{} {
	secondary := make([]string, len(r.SecondaryCategories))
	for i, c := range r.SecondaryCategories {
		secondary[i] = string(c)
	}

	matched := make(map[string][]string, len(r.MatchedPatterns))
	for cat, evidence := range r.MatchedPatterns {
		out := make([]string, len(evidence))
		copy(out, evidence)
		matched[string(cat)] = out
	}

	scores := make(map[string]float64, len(r.AllScores))
	for cat, score := range r.AllScores {
		scores[string(cat)] = score
	}

	path := make([]string, len(r.DecisionPath))
	copy(path, r.DecisionPath)

	notes := make([]string, len(r.DisambiguationNotes))
	copy(notes, r.DisambiguationNotes)

	return map[string]interface{}{
		"term":                     r.Term,
		"definition":               r.Definition,
		"context":                  r.Context,
		"primary_category":         string(r.PrimaryCategory),
		"confidence":               r.Confidence,
		"secondary_categories":     secondary,
		"matched_patterns":         matched,
		"all_scores":               scores,
		"decision_path":            path,
		"disambiguation_notes":     notes,
		"explanation":              r.Explanation,
		"elapsed_ms":               float64(r.Elapsed) / float64(time.Millisecond),
		"manual_override_required": r.ManualOverrideRequired,
	}
}
