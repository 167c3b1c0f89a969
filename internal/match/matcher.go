// Package match holds the pattern data and matching logic that turn a
// normalized (term, definition) text into per-category evidence. All
// patterns are compiled once at construction; raw input is only ever
// matched against them, never compiled, so adversarial input cannot crash
// or inject into the matcher.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdevries/ontoclass/internal/cache"
	"github.com/pdevries/ontoclass/internal/model"
)

// PatternSet is the compiled pattern data for one category.
type PatternSet struct {
	Keywords   []string
	Patterns   []*regexp.Regexp
	LegalTerms []string
	Weight     float64
}

// Matcher matches normalized text against the per-category pattern sets
// and exposes the disambiguation rule table. Immutable after construction;
// the match cache is safe for concurrent use.
type Matcher struct {
	sets           map[model.UFOCategory]PatternSet
	rules          map[string][]ContextRule
	maxPerCategory int
	cache          *cache.LRU[map[model.UFOCategory][]string]
}

// NewMatcher builds a matcher from built-in pattern data with any overrides
// from cfg applied. A malformed override (unknown category, invalid regex)
// yields a ConfigLoadError; callers fall back to defaults.
func NewMatcher(cfg *model.Config) (*Matcher, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	specs := builtinPatternSpecs()
	for name, override := range cfg.Categories {
		cat, ok := model.ParseCategory(name)
		if !ok {
			return nil, &model.ConfigLoadError{
				Section: "categories",
				Err:     fmt.Errorf("unknown category %q", name),
			}
		}
		spec := specs[cat]
		if len(override.Keywords) > 0 {
			spec.keywords = override.Keywords
		}
		if len(override.Patterns) > 0 {
			spec.patterns = override.Patterns
		}
		if override.Weight != nil {
			spec.weight = *override.Weight
		}
		specs[cat] = spec
	}

	sets := make(map[model.UFOCategory]PatternSet, model.NumCategories)
	for _, cat := range model.AllCategories() {
		spec := specs[cat]
		compiled := make([]*regexp.Regexp, 0, len(spec.patterns))
		for _, p := range spec.patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, &model.ConfigLoadError{
					Section: "categories",
					Err:     fmt.Errorf("category %s: pattern %q: %w", cat, p, err),
				}
			}
			compiled = append(compiled, re)
		}
		sets[cat] = PatternSet{
			Keywords:   spec.keywords,
			Patterns:   compiled,
			LegalTerms: spec.legalTerms,
			Weight:     spec.weight,
		}
	}

	rules, err := compileRules(cfg)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		sets:           sets,
		rules:          rules,
		maxPerCategory: cfg.Matching.MaxMatchesPerCategory,
		cache:          cache.NewLRU[map[model.UFOCategory][]string](cfg.Matching.MatchCacheSize),
	}, nil
}

func compileRules(cfg *model.Config) (map[string][]ContextRule, error) {
	specs := builtinDisambiguationSpecs()
	for term, overrides := range cfg.Disambiguation {
		replaced := make([]contextSpec, 0, len(overrides))
		for _, o := range overrides {
			target, ok := model.ParseCategory(o.Target)
			if !ok {
				return nil, &model.ConfigLoadError{
					Section: "disambiguation",
					Err:     fmt.Errorf("term %q: unknown target category %q", term, o.Target),
				}
			}
			replaced = append(replaced, contextSpec{pattern: o.Pattern, target: target})
		}
		specs[strings.ToLower(strings.TrimSpace(term))] = replaced
	}

	rules := make(map[string][]ContextRule, len(specs))
	for term, contexts := range specs {
		compiled := make([]ContextRule, 0, len(contexts))
		for _, c := range contexts {
			re, err := regexp.Compile(`(?i)` + c.pattern)
			if err != nil {
				return nil, &model.ConfigLoadError{
					Section: "disambiguation",
					Err:     fmt.Errorf("term %q: pattern %q: %w", term, c.pattern, err),
				}
			}
			compiled = append(compiled, ContextRule{Pattern: re, Target: c.target})
		}
		rules[term] = compiled
	}
	return rules, nil
}

// FindAllMatches matches text against every category and returns, per
// category, the distinct matched evidence strings, capped independently per
// category. Every category that matched is reported; there is no
// cross-category top-k. Matching is case-insensitive; text is expected to be
// NFC-normalized by the caller.
func (m *Matcher) FindAllMatches(text string) map[model.UFOCategory][]string {
	if cached, ok := m.cache.Get(text); ok {
		return copyMatches(cached)
	}

	lower := strings.ToLower(text)
	result := make(map[model.UFOCategory][]string)

	for _, cat := range model.AllCategories() {
		set := m.sets[cat]
		seen := make(map[string]bool)
		var evidence []string

		add := func(ev string) bool {
			if seen[ev] {
				return true
			}
			if m.maxPerCategory > 0 && len(evidence) >= m.maxPerCategory {
				return false
			}
			seen[ev] = true
			evidence = append(evidence, ev)
			return true
		}

		for _, kw := range set.Keywords {
			if strings.Contains(lower, kw) {
				if !add("keyword:" + kw) {
					break
				}
			}
		}
		for _, re := range set.Patterns {
			if matched := re.FindString(text); matched != "" {
				if !add("pattern:" + strings.ToLower(matched)) {
					break
				}
			}
		}
		for _, term := range set.LegalTerms {
			if strings.Contains(lower, term) {
				if !add("term:" + term) {
					break
				}
			}
		}

		if len(evidence) > 0 {
			result[cat] = evidence
		}
	}

	m.cache.Add(text, copyMatches(result))
	return result
}

// CategoryWeight returns the base weight of a category.
func (m *Matcher) CategoryWeight(cat model.UFOCategory) float64 {
	return m.sets[cat].Weight
}

// DisambiguationRule returns the ordered context rules for an overloaded
// term, if any. Lookup is case-insensitive on the literal term.
func (m *Matcher) DisambiguationRule(term string) ([]ContextRule, bool) {
	rules, ok := m.rules[strings.ToLower(strings.TrimSpace(term))]
	return rules, ok
}

// ClearCache empties the match cache. Used by tests and config reloads.
func (m *Matcher) ClearCache() {
	m.cache.Clear()
}

// CacheLen returns the number of cached match results.
func (m *Matcher) CacheLen() int {
	return m.cache.Len()
}

func copyMatches(in map[model.UFOCategory][]string) map[model.UFOCategory][]string {
	out := make(map[model.UFOCategory][]string, len(in))
	for cat, evidence := range in {
		cp := make([]string, len(evidence))
		copy(cp, evidence)
		out[cat] = cp
	}
	return out
}
