package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdevries/ontoclass/internal/model"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	return m
}

func TestMatcher_FindAllMatches_Keywords(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.FindAllMatches("zaak. Een roerende zaak zoals een auto of fiets")

	evidence := matches[model.CategoryKind]
	if len(evidence) == 0 {
		t.Fatal("Expected Kind evidence for a concrete object definition")
	}

	found := false
	for _, ev := range evidence {
		if ev == "keyword:roerende zaak" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected keyword:roerende zaak in evidence, got %v", evidence)
	}
}

func TestMatcher_FindAllMatches_CaseInsensitive(t *testing.T) {
	m := newTestMatcher(t)

	lower := m.FindAllMatches("een roerende zaak zoals een auto")
	upper := m.FindAllMatches("EEN ROERENDE ZAAK ZOALS EEN AUTO")

	if len(lower[model.CategoryKind]) == 0 {
		t.Fatal("Expected Kind evidence for lowercase text")
	}
	if len(upper[model.CategoryKind]) != len(lower[model.CategoryKind]) {
		t.Errorf("Case changed evidence count: %d vs %d",
			len(upper[model.CategoryKind]), len(lower[model.CategoryKind]))
	}
}

func TestMatcher_FindAllMatches_EvidencePrefixes(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.FindAllMatches("rechtszaak. Een rechtszaak die voor de rechter wordt behandeld")

	for cat, evidence := range matches {
		for _, ev := range evidence {
			if !strings.HasPrefix(ev, "keyword:") &&
				!strings.HasPrefix(ev, "pattern:") &&
				!strings.HasPrefix(ev, "term:") {
				t.Errorf("Category %s: evidence %q has no recognized prefix", cat, ev)
			}
		}
	}
}

func TestMatcher_FindAllMatches_PerCategoryCap(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Matching.MaxMatchesPerCategory = 2

	m, err := NewMatcher(cfg)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	// Dense Event text: keyword, pattern, and legal term cues all present.
	matches := m.FindAllMatches("rechtszaak. De procedure van de rechtszaak wordt behandeld tijdens de zitting")

	for cat, evidence := range matches {
		if len(evidence) > 2 {
			t.Errorf("Category %s exceeded cap: %d matches", cat, len(evidence))
		}
	}
}

func TestMatcher_FindAllMatches_HostileInput(t *testing.T) {
	m := newTestMatcher(t)

	// Raw input is matched, never compiled. These must not panic and must
	// behave like any other unmatched text.
	hostile := []string{
		"test(). Een functie in programmeren",
		"'; DROP TABLE users; --. Malicious input",
		"((((. ))))",
		".*+?[]{}. \\w+\\d*",
	}

	for _, text := range hostile {
		matches := m.FindAllMatches(text)
		for cat, evidence := range matches {
			if len(evidence) == 0 {
				t.Errorf("Category %s present with empty evidence for %q", cat, text)
			}
		}
	}
}

func TestMatcher_Cache(t *testing.T) {
	m := newTestMatcher(t)

	text := "huwelijk. De juridische band tussen twee gehuwde personen"
	first := m.FindAllMatches(text)

	if m.CacheLen() != 1 {
		t.Errorf("Expected 1 cached entry, got %d", m.CacheLen())
	}

	second := m.FindAllMatches(text)
	if len(second) != len(first) {
		t.Errorf("Cached result differs: %d vs %d categories", len(second), len(first))
	}

	// Mutating a returned map must not poison the cache.
	second[model.CategoryKind] = append(second[model.CategoryKind], "keyword:injected")
	third := m.FindAllMatches(text)
	for _, ev := range third[model.CategoryKind] {
		if ev == "keyword:injected" {
			t.Error("Cache was mutated through a returned result")
		}
	}

	m.ClearCache()
	if m.CacheLen() != 0 {
		t.Errorf("Expected empty cache after ClearCache, got %d", m.CacheLen())
	}
}

func TestMatcher_DisambiguationRule(t *testing.T) {
	m := newTestMatcher(t)

	rules, ok := m.DisambiguationRule("zaak")
	if !ok || len(rules) == 0 {
		t.Fatal("Expected disambiguation rules for zaak")
	}

	if _, ok := m.DisambiguationRule("  ZAAK  "); !ok {
		t.Error("Expected case-insensitive rule lookup")
	}

	if _, ok := m.DisambiguationRule("pindakaas"); ok {
		t.Error("Did not expect rules for an unlisted term")
	}
}

func TestMatcher_Overrides(t *testing.T) {
	weight := 0.5
	cfg := model.DefaultConfig()
	cfg.Categories = map[string]model.CategoryOverride{
		"Kind": {Keywords: []string{"custom cue"}, Weight: &weight},
	}

	m, err := NewMatcher(cfg)
	if err != nil {
		t.Fatalf("NewMatcher with overrides failed: %v", err)
	}

	matches := m.FindAllMatches("iets. Tekst met een custom cue erin")
	if len(matches[model.CategoryKind]) == 0 {
		t.Error("Expected override keyword to match")
	}
	if m.CategoryWeight(model.CategoryKind) != 0.5 {
		t.Errorf("Expected overridden weight 0.5, got %.2f", m.CategoryWeight(model.CategoryKind))
	}
}

func TestMatcher_Overrides_UnknownCategory(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Categories = map[string]model.CategoryOverride{
		"Gadget": {Keywords: []string{"x"}},
	}

	_, err := NewMatcher(cfg)
	if err == nil {
		t.Fatal("Expected error for unknown category override")
	}
	var cfgErr *model.ConfigLoadError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigLoadError, got %T", err)
	}
}

func TestMatcher_Overrides_InvalidRegex(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Categories = map[string]model.CategoryOverride{
		"Event": {Patterns: []string{"[unclosed"}},
	}

	_, err := NewMatcher(cfg)
	if err == nil {
		t.Fatal("Expected error for invalid override regex")
	}
	var cfgErr *model.ConfigLoadError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigLoadError, got %T", err)
	}
}

func TestMatcher_Overrides_UnknownDisambiguationTarget(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Disambiguation = map[string][]model.ContextOverride{
		"zaak": {{Pattern: "roerend", Target: "Gadget"}},
	}

	_, err := NewMatcher(cfg)
	if err == nil {
		t.Fatal("Expected error for unknown disambiguation target")
	}
	var cfgErr *model.ConfigLoadError
	if !errors.As(err, &cfgErr) {
		t.Errorf("Expected ConfigLoadError, got %T", err)
	}
}
