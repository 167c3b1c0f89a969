// Package classifier provides the facade that validates and normalizes
// input, runs the decision engine, and assembles immutable classification
// results. A Service is immutable after construction; concurrent Classify
// calls are safe.
package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/pdevries/ontoclass/internal/cache"
	"github.com/pdevries/ontoclass/internal/engine"
	"github.com/pdevries/ontoclass/internal/explain"
	"github.com/pdevries/ontoclass/internal/lexicon"
	"github.com/pdevries/ontoclass/internal/match"
	"github.com/pdevries/ontoclass/internal/model"
)

// Item is one (term, definition) pair in a batch. Context optionally names
// the active legal domain.
type Item struct {
	Term       string
	Definition string
	Context    string
}

// Service is the classification facade.
type Service struct {
	cfg     *model.Config
	matcher *match.Matcher
	engine  *engine.Engine
	lexicon *lexicon.Lexicon
	builder *explain.Builder
	results cache.Cache // nil when result caching is disabled
}

// New builds a service from cfg (nil means defaults). A malformed pattern or
// disambiguation override is reported on stderr and replaced by the built-in
// defaults; construction never fails on bad overrides.
func New(cfg *model.Config) *Service {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	m, err := match.NewMatcher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using built-in pattern defaults)\n", err)
		fallback := *cfg
		fallback.Categories = nil
		fallback.Disambiguation = nil
		m, _ = match.NewMatcher(&fallback)
	}

	lex := lexicon.New()

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Service{
		cfg:     cfg,
		matcher: m,
		engine:  engine.New(m, lex, cfg),
		lexicon: lex,
		builder: explain.NewBuilder(),
		results: results,
	}
}

// Lexicon exposes the legal lexicon for consumers that render domain
// information.
func (s *Service) Lexicon() *lexicon.Lexicon {
	return s.lexicon
}

// Classify classifies a single (term, definition) pair. Context optionally
// names the active legal domain. It fails with InvalidInputError on empty,
// whitespace-only, or non-text input and otherwise always returns a fully
// populated result. Pure: no side effects beyond the internal caches.
func (s *Service) Classify(term, definition, context string) (*model.ClassificationResult, error) {
	start := time.Now()

	normTerm, err := s.normalize("term", term)
	if err != nil {
		return nil, err
	}
	normDef, err := s.normalize("definition", definition)
	if err != nil {
		return nil, err
	}
	domain := strings.ToLower(strings.TrimSpace(context))

	key := cache.Key(normTerm, normDef, domain)
	if s.results != nil {
		if data, ok := s.results.Get(key); ok {
			var cached model.ClassificationResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := s.run(normTerm, normDef, domain, start)
	if err != nil {
		return nil, err
	}

	if s.results != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.results.Set(key, data, s.cfg.Cache.TTL)
		}
	}

	return result, nil
}

// run executes the engine, converting any panic into an
// InternalClassificationError so the batch boundary can isolate it.
func (s *Service) run(term, definition, domain string, start time.Time) (result *model.ClassificationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &model.InternalClassificationError{
				Term: term,
				Err:  fmt.Errorf("panic: %v", r),
			}
		}
	}()

	outcome := s.engine.Decide(term, definition, domain)

	result = &model.ClassificationResult{
		Term:                   term,
		Definition:             definition,
		Context:                domain,
		PrimaryCategory:        outcome.Primary,
		Confidence:             outcome.Confidence,
		SecondaryCategories:    outcome.Secondary,
		MatchedPatterns:        outcome.Matches,
		AllScores:              outcome.Scores,
		DecisionPath:           outcome.Path,
		DisambiguationNotes:    outcome.Notes,
		Elapsed:                time.Since(start),
		ManualOverrideRequired: outcome.Confidence < model.ManualReviewThreshold,
	}
	result.Explanation = s.builder.Build(result, s.lexicon.IsLegalTerm(term))

	return result, nil
}

// BatchClassify classifies items in input order, returning one result per
// item. A failing item is isolated into a degraded result instead of
// aborting the batch.
func (s *Service) BatchClassify(items []Item) []*model.ClassificationResult {
	results := make([]*model.ClassificationResult, len(items))
	for i, item := range items {
		result, err := s.Classify(item.Term, item.Definition, item.Context)
		if err != nil {
			result = s.degraded(item, err)
		}
		results[i] = result
	}
	return results
}

// degraded builds the fallback result for a failed batch item: Kind primary,
// zero confidence, and a 9-entry decision path marking every stage skipped.
func (s *Service) degraded(item Item, cause error) *model.ClassificationResult {
	scores := make(map[model.UFOCategory]float64, model.NumCategories)
	for _, cat := range model.AllCategories() {
		scores[cat] = 0.0
	}

	path := make([]string, model.DecisionPathLength)
	for i := range path {
		path[i] = fmt.Sprintf("Stage %d/9: skipped (%v)", i+1, cause)
	}

	result := &model.ClassificationResult{
		Term:                   item.Term,
		Definition:             item.Definition,
		Context:                strings.ToLower(strings.TrimSpace(item.Context)),
		PrimaryCategory:        model.CategoryKind,
		Confidence:             0.0,
		SecondaryCategories:    nil,
		MatchedPatterns:        map[model.UFOCategory][]string{},
		AllScores:              scores,
		DecisionPath:           path,
		ManualOverrideRequired: true,
	}
	result.Explanation = s.builder.Build(result, false)
	return result
}

// ClearCaches empties the match and result caches. Used by tests and config
// reloads.
func (s *Service) ClearCaches() {
	s.matcher.ClearCache()
	if s.results != nil {
		_ = s.results.Clear()
	}
}

// normalize applies NFC normalization, trims whitespace, and silently
// truncates pathological input at the configured rune ceiling. Empty,
// whitespace-only, or non-text values fail with InvalidInputError.
func (s *Service) normalize(field, value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", &model.InvalidInputError{Field: field, Reason: "not valid UTF-8 text"}
	}

	out := strings.TrimSpace(norm.NFC.String(value))
	if out == "" {
		return "", &model.InvalidInputError{Field: field, Reason: "empty or whitespace-only"}
	}

	graphic := false
	for _, r := range out {
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			graphic = true
			break
		}
	}
	if !graphic {
		return "", &model.InvalidInputError{Field: field, Reason: "no printable characters"}
	}

	if max := s.cfg.Input.MaxLength; max > 0 && utf8.RuneCountInString(out) > max {
		runes := []rune(out)
		out = strings.TrimSpace(string(runes[:max]))
	}

	return out, nil
}
