// Package engine implements the fixed 9-stage decision pipeline. Every
// classification runs all nine stages in order and records one decision-path
// entry per stage, even when a stage contributes nothing, so the audit trail
// always has exactly nine entries.
package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pdevries/ontoclass/internal/lexicon"
	"github.com/pdevries/ontoclass/internal/match"
	"github.com/pdevries/ontoclass/internal/model"
)

const (
	hitWeight           = 0.4
	disambiguationBoost = 0.3
	secondaryThreshold  = 0.2
	fallbackConfidence  = 0.3
	ambiguityMargin     = 0.1
	ambiguityPenalty    = 0.8
	breadthBoost        = 0.05
	breadthThreshold    = 2.0
	maxSecondary        = 3
)

// stage is one category-aligned evaluation stage. Stages 1-7 each write only
// the scores of their own categories, so no cross-stage summation arises.
type stage struct {
	name       string
	categories []model.UFOCategory
}

var stages = []stage{
	{"kind evaluation", []model.UFOCategory{model.CategoryKind}},
	{"event evaluation", []model.UFOCategory{model.CategoryEvent}},
	{"role evaluation", []model.UFOCategory{model.CategoryRole}},
	{"relator evaluation", []model.UFOCategory{model.CategoryRelator}},
	{"intrinsic aspect evaluation", []model.UFOCategory{
		model.CategoryMode, model.CategoryQuality, model.CategoryQuantity,
	}},
	{"collective evaluation", []model.UFOCategory{
		model.CategoryCollective, model.CategoryFixedCollection,
	}},
	{"specialization evaluation", []model.UFOCategory{
		model.CategorySubkind, model.CategoryCategory, model.CategoryPhase,
		model.CategoryMixin, model.CategoryRoleMixin, model.CategoryPhaseMixin,
		model.CategoryAbstract,
	}},
}

// Outcome is the raw decision result before the facade wraps it into a
// ClassificationResult.
type Outcome struct {
	Primary    model.UFOCategory
	Secondary  []model.UFOCategory
	Confidence float64
	Scores     map[model.UFOCategory]float64
	Matches    map[model.UFOCategory][]string
	Path       []string
	Notes      []string
	Fallback   bool
}

// Engine runs the decision pipeline. Immutable after construction; Decide is
// safe for concurrent use.
type Engine struct {
	matcher     *match.Matcher
	lexicon     *lexicon.Lexicon
	domainBonus float64
}

// New creates a decision engine.
func New(m *match.Matcher, lex *lexicon.Lexicon, cfg *model.Config) *Engine {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	return &Engine{
		matcher:     m,
		lexicon:     lex,
		domainBonus: cfg.Matching.DomainBonus,
	}
}

// Decide classifies a normalized (term, definition) pair. The domain, when
// non-empty, activates the legal-domain bonus for evidence that appears in
// that domain's vocabulary.
func (e *Engine) Decide(term, definition, domain string) *Outcome {
	text := term + ". " + definition
	matches := e.matcher.FindAllMatches(text)

	scores := make(map[model.UFOCategory]float64, model.NumCategories)
	for _, cat := range model.AllCategories() {
		scores[cat] = 0.0
	}

	path := make([]string, 0, model.DecisionPathLength)
	var notes []string

	// Stages 1-7: category-aligned evaluation.
	for i, st := range stages {
		parts := make([]string, 0, len(st.categories))
		total := 0
		for _, cat := range st.categories {
			evidence := matches[cat]
			score := float64(len(evidence)) * hitWeight * e.matcher.CategoryWeight(cat)
			if domain != "" && e.hasDomainEvidence(domain, evidence) {
				score += e.domainBonus
			}
			score = math.Min(score, 1.0)
			scores[cat] = score
			total += len(evidence)
			parts = append(parts, fmt.Sprintf("%s=%.2f", cat, score))
		}
		path = append(path, fmt.Sprintf("Stage %d/9 %s: %s (matches: %d)",
			i+1, st.name, strings.Join(parts, ", "), total))
	}

	// Stage 8: disambiguation of overloaded terms.
	path = append(path, e.disambiguate(term, definition, scores, &notes))

	// Stage 9: primary selection, confidence, secondary derivation.
	primary, confidence, fallback := e.finalize(scores)
	secondary := e.selectSecondary(scores, primary)

	if fallback {
		path = append(path, fmt.Sprintf(
			"Stage 9/9 secondary selection: no pattern evidence, fallback primary=%s confidence=%.2f",
			primary, confidence))
	} else {
		path = append(path, fmt.Sprintf(
			"Stage 9/9 secondary selection: primary=%s confidence=%.2f, %d secondary candidate(s)",
			primary, confidence, len(secondary)))
	}

	return &Outcome{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: confidence,
		Scores:     scores,
		Matches:    matches,
		Path:       path,
		Notes:      notes,
		Fallback:   fallback,
	}
}

// hasDomainEvidence reports whether any matched cue is a term of the active
// legal domain.
func (e *Engine) hasDomainEvidence(domain string, evidence []string) bool {
	for _, ev := range evidence {
		if idx := strings.Index(ev, ":"); idx >= 0 {
			if e.lexicon.HasDomainTerm(domain, ev[idx+1:]) {
				return true
			}
		}
	}
	return false
}

// disambiguate applies the first matching context rule for the literal term,
// boosting the target category. It always returns a stage-8 path entry.
func (e *Engine) disambiguate(term, definition string, scores map[model.UFOCategory]float64, notes *[]string) string {
	rules, ok := e.matcher.DisambiguationRule(term)
	if !ok {
		return fmt.Sprintf("Stage 8/9 disambiguation: no rule for %q", term)
	}

	for _, rule := range rules {
		if rule.Pattern.MatchString(definition) {
			scores[rule.Target] = math.Min(scores[rule.Target]+disambiguationBoost, 1.0)
			*notes = append(*notes, fmt.Sprintf(
				"term %q disambiguated to %s by context %s",
				term, rule.Target, rule.Pattern.String()))
			return fmt.Sprintf("Stage 8/9 disambiguation: %q resolved to %s (+%.2f)",
				term, rule.Target, disambiguationBoost)
		}
	}

	return fmt.Sprintf("Stage 8/9 disambiguation: rule for %q did not match definition", term)
}

// finalize picks the primary category and calibrates confidence. Ties break
// by the fixed priority order; AllCategories iterates in that order, so the
// first strict maximum wins.
func (e *Engine) finalize(scores map[model.UFOCategory]float64) (model.UFOCategory, float64, bool) {
	primary := model.CategoryKind
	best := -1.0
	for _, cat := range model.AllCategories() {
		if scores[cat] > best {
			best = scores[cat]
			primary = cat
		}
	}

	if best <= 0 {
		// Documented default for unmatched input, not an error.
		return model.CategoryKind, fallbackConfidence, true
	}

	confidence := best

	runnerUp := 0.0
	sum := 0.0
	for _, cat := range model.AllCategories() {
		sum += scores[cat]
		if cat != primary && scores[cat] > runnerUp {
			runnerUp = scores[cat]
		}
	}

	if runnerUp > 0 && best-runnerUp <= ambiguityMargin {
		confidence *= ambiguityPenalty
	}
	if sum > breadthThreshold {
		confidence = math.Min(confidence+breadthBoost, 1.0)
	}

	return primary, confidence, false
}

// selectSecondary returns every non-primary category scoring at least the
// threshold, sorted by score descending (priority order on ties), truncated
// to three.
func (e *Engine) selectSecondary(scores map[model.UFOCategory]float64, primary model.UFOCategory) []model.UFOCategory {
	var candidates []model.UFOCategory
	for _, cat := range model.AllCategories() {
		if cat != primary && scores[cat] >= secondaryThreshold {
			candidates = append(candidates, cat)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := scores[candidates[i]], scores[candidates[j]]
		if si != sj {
			return si > sj
		}
		return candidates[i].Priority() < candidates[j].Priority()
	})

	if len(candidates) > maxSecondary {
		candidates = candidates[:maxSecondary]
	}
	return candidates
}
