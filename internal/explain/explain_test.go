package explain

import (
	"strings"
	"testing"
	"time"

	"github.com/pdevries/ontoclass/internal/model"
)

func fullResult() *model.ClassificationResult {
	scores := make(map[model.UFOCategory]float64, model.NumCategories)
	for _, cat := range model.AllCategories() {
		scores[cat] = 0.0
	}
	scores[model.CategoryRelator] = 1.0
	scores[model.CategoryEvent] = 0.4

	path := make([]string, model.DecisionPathLength)
	for i := range path {
		path[i] = "stage summary"
	}

	return &model.ClassificationResult{
		Term:                "huwelijk",
		Definition:          "De juridische band tussen twee gehuwde personen",
		Context:             "familierecht",
		PrimaryCategory:     model.CategoryRelator,
		Confidence:          0.92,
		SecondaryCategories: []model.UFOCategory{model.CategoryEvent},
		MatchedPatterns: map[model.UFOCategory][]string{
			model.CategoryRelator: {"keyword:juridische band"},
		},
		AllScores:           scores,
		DecisionPath:        path,
		DisambiguationNotes: []string{"term \"huwelijk\" disambiguated to Relator by context band"},
		Elapsed:             time.Millisecond,
	}
}

func TestBuilder_Build_SectionsInOrder(t *testing.T) {
	out := NewBuilder().Build(fullResult(), true)

	sections := []string{
		"=== Primary Classification ===",
		"=== Confidence ===",
		"=== Decision Path ===",
		"=== Matched Patterns ===",
		"=== Score Overview ===",
		"=== Legal Domain Considerations ===",
		"=== Elapsed Time ===",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		if idx < 0 {
			t.Errorf("Missing section %q", s)
			continue
		}
		if idx <= last {
			t.Errorf("Section %q out of order", s)
		}
		last = idx
	}
}

func TestBuilder_Build_Content(t *testing.T) {
	out := NewBuilder().Build(fullResult(), true)

	for _, want := range []string{
		"huwelijk -> Relator",
		"Alternative readings: Event",
		"0.92 (manual review not required)",
		"9. stage summary",
		"keyword:juridische band",
		"Active legal domain: familierecht",
		`"huwelijk" is a known Dutch legal term.`,
		"Note: term \"huwelijk\" disambiguated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in explanation:\n%s", want, out)
		}
	}

	// Score overview lists every category.
	for _, cat := range model.AllCategories() {
		if !strings.Contains(out, string(cat)) {
			t.Errorf("Score overview missing %s", cat)
		}
	}
}

func TestBuilder_Build_EmptySections(t *testing.T) {
	r := fullResult()
	r.Context = ""
	r.MatchedPatterns = map[model.UFOCategory][]string{}
	r.SecondaryCategories = nil
	r.DisambiguationNotes = nil
	r.Confidence = 0.3
	r.ManualOverrideRequired = true

	out := NewBuilder().Build(r, false)

	for _, want := range []string{
		"No patterns matched.",
		"No active legal domain.",
		"manual review required",
		`"huwelijk" does not appear in the legal lexicon.`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in explanation:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Alternative readings") {
		t.Error("Did not expect alternatives line without secondary categories")
	}
}
