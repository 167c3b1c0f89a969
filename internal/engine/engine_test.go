package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/pdevries/ontoclass/internal/lexicon"
	"github.com/pdevries/ontoclass/internal/match"
	"github.com/pdevries/ontoclass/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := model.DefaultConfig()
	m, err := match.NewMatcher(cfg)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	return New(m, lexicon.New(), cfg)
}

func checkInvariants(t *testing.T, o *Outcome) {
	t.Helper()

	if len(o.Scores) != model.NumCategories {
		t.Errorf("Expected %d scores, got %d", model.NumCategories, len(o.Scores))
	}
	for cat, score := range o.Scores {
		if score < 0.0 || score > 1.0 {
			t.Errorf("Score out of bounds for %s: %.2f", cat, score)
		}
	}

	if len(o.Path) != model.DecisionPathLength {
		t.Errorf("Expected %d decision path entries, got %d", model.DecisionPathLength, len(o.Path))
	}

	if o.Confidence < 0.0 || o.Confidence > 1.0 {
		t.Errorf("Confidence out of bounds: %.2f", o.Confidence)
	}

	if len(o.Secondary) > 3 {
		t.Errorf("Expected at most 3 secondary categories, got %d", len(o.Secondary))
	}
	for _, cat := range o.Secondary {
		if cat == o.Primary {
			t.Errorf("Primary %s appears in secondary list", o.Primary)
		}
	}
}

func TestEngine_Decide_Disambiguation(t *testing.T) {
	e := newTestEngine(t)

	cases := []struct {
		term       string
		definition string
		want       model.UFOCategory
	}{
		{"rechtszaak", "Een rechtszaak die voor de rechter wordt behandeld", model.CategoryEvent},
		{"zaak", "Een roerende zaak zoals een auto of fiets", model.CategoryKind},
		{"huwelijk", "Het sluiten van een huwelijk door de ambtenaar", model.CategoryEvent},
		{"huwelijk", "De juridische band tussen twee gehuwde personen", model.CategoryRelator},
	}

	for _, c := range cases {
		o := e.Decide(c.term, c.definition, "")
		checkInvariants(t, o)

		if o.Primary != c.want {
			t.Errorf("Decide(%q, %q): primary = %s, want %s (scores: %v)",
				c.term, c.definition, o.Primary, c.want, o.Scores)
		}
		if o.Confidence < 0.6 {
			t.Errorf("Decide(%q, %q): confidence %.2f below review threshold",
				c.term, c.definition, o.Confidence)
		}
		if o.Fallback {
			t.Errorf("Decide(%q, %q): unexpected fallback", c.term, c.definition)
		}
	}
}

func TestEngine_Decide_Fallback(t *testing.T) {
	e := newTestEngine(t)

	o := e.Decide("frobnicatie", "Iets volstrekt onbekends zonder enige cue", "")
	checkInvariants(t, o)

	if !o.Fallback {
		t.Fatalf("Expected fallback for unmatched input, got primary %s with scores %v",
			o.Primary, o.Scores)
	}
	if o.Primary != model.CategoryKind {
		t.Errorf("Expected Kind fallback, got %s", o.Primary)
	}
	if math.Abs(o.Confidence-0.3) > 1e-9 {
		t.Errorf("Expected fallback confidence 0.3, got %.2f", o.Confidence)
	}
	if len(o.Secondary) != 0 {
		t.Errorf("Expected no secondary categories on fallback, got %v", o.Secondary)
	}
}

func TestEngine_Decide_Deterministic(t *testing.T) {
	e := newTestEngine(t)

	first := e.Decide("huwelijk", "Het sluiten van een huwelijk door de ambtenaar", "familierecht")
	second := e.Decide("huwelijk", "Het sluiten van een huwelijk door de ambtenaar", "familierecht")

	if first.Primary != second.Primary {
		t.Errorf("Primary differs across runs: %s vs %s", first.Primary, second.Primary)
	}
	if first.Confidence != second.Confidence {
		t.Errorf("Confidence differs across runs: %.4f vs %.4f", first.Confidence, second.Confidence)
	}
	if !reflect.DeepEqual(first.Scores, second.Scores) {
		t.Error("Scores differ across runs")
	}
	if !reflect.DeepEqual(first.Path, second.Path) {
		t.Error("Decision path differs across runs")
	}
}

func TestEngine_Decide_DomainBonus(t *testing.T) {
	e := newTestEngine(t)

	// The echtscheiding cue is family-domain vocabulary, so the same text
	// scores higher with the family domain active.
	without := e.Decide("scheiding", "Een procedure van echtscheiding", "")
	with := e.Decide("scheiding", "Een procedure van echtscheiding", "familierecht")

	base := without.Scores[model.CategoryEvent]
	boosted := with.Scores[model.CategoryEvent]
	if base <= 0 {
		t.Fatalf("Expected baseline Event evidence, got %.2f", base)
	}
	if math.Abs(boosted-base-0.1) > 1e-9 {
		t.Errorf("Expected domain bonus of 0.10, got %.2f -> %.2f", base, boosted)
	}

	// An unrelated domain contributes nothing.
	other := e.Decide("scheiding", "Een procedure van echtscheiding", "strafrecht")
	if other.Scores[model.CategoryEvent] != base {
		t.Errorf("Unrelated domain changed score: %.2f vs %.2f",
			other.Scores[model.CategoryEvent], base)
	}
}

func TestEngine_Decide_DisambiguationNotes(t *testing.T) {
	e := newTestEngine(t)

	o := e.Decide("zaak", "Een roerende zaak zoals een auto of fiets", "")
	if len(o.Notes) == 0 {
		t.Fatal("Expected a disambiguation note for zaak")
	}

	// A term without a rule leaves no notes but still records stage 8.
	plain := e.Decide("overeenkomst", "Een afspraak tussen twee partijen", "")
	if len(plain.Notes) != 0 {
		t.Errorf("Did not expect notes for a term without rules, got %v", plain.Notes)
	}
	checkInvariants(t, plain)
}

func TestEngine_Decide_StageAnnotations(t *testing.T) {
	e := newTestEngine(t)

	o := e.Decide("huwelijk", "De juridische band tussen twee gehuwde personen", "")

	wantPrefixes := []string{
		"Stage 1/9", "Stage 2/9", "Stage 3/9", "Stage 4/9", "Stage 5/9",
		"Stage 6/9", "Stage 7/9", "Stage 8/9", "Stage 9/9",
	}
	for i, prefix := range wantPrefixes {
		if !hasPrefix(o.Path[i], prefix) {
			t.Errorf("Path entry %d = %q, expected prefix %q", i, o.Path[i], prefix)
		}
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
