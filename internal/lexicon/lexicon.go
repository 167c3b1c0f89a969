// Package lexicon provides a static, domain-partitioned vocabulary of Dutch
// legal terminology. All data loads once at construction and is immutable
// thereafter; lookups are safe for concurrent use.
package lexicon

import (
	"sort"
	"strings"
)

// Lexicon holds the Dutch legal vocabulary partitioned by legal domain.
type Lexicon struct {
	order      []string
	domains    map[string][]string
	domainSets map[string]map[string]struct{}
	all        map[string]struct{}
}

// New builds the lexicon from the built-in term data.
func New() *Lexicon {
	l := &Lexicon{
		domains:    make(map[string][]string, len(domainTerms)),
		domainSets: make(map[string]map[string]struct{}, len(domainTerms)),
		all:        make(map[string]struct{}),
	}

	for _, domain := range domainOrder {
		terms := domainTerms[domain]
		l.order = append(l.order, domain)
		l.domains[domain] = terms

		set := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			key := normalizeTerm(term)
			set[key] = struct{}{}
			l.all[key] = struct{}{}
		}
		l.domainSets[domain] = set
	}

	return l
}

// Domains returns the legal domain names in their fixed order.
func (l *Lexicon) Domains() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// AllTerms returns every term across all domains, deduplicated and sorted.
func (l *Lexicon) AllTerms() []string {
	out := make([]string, 0, len(l.all))
	for term := range l.all {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// DomainTerms returns the ordered term list for a domain. An unknown domain
// yields an empty sequence, not an error.
func (l *Lexicon) DomainTerms(domain string) []string {
	terms, ok := l.domains[normalizeTerm(domain)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// IsLegalTerm reports whether term appears anywhere in the vocabulary.
// Matching is case-insensitive and ignores surrounding whitespace.
func (l *Lexicon) IsLegalTerm(term string) bool {
	_, ok := l.all[normalizeTerm(term)]
	return ok
}

// HasDomainTerm reports whether term belongs to the given legal domain.
func (l *Lexicon) HasDomainTerm(domain, term string) bool {
	set, ok := l.domainSets[normalizeTerm(domain)]
	if !ok {
		return false
	}
	_, ok = set[normalizeTerm(term)]
	return ok
}

// Size returns the number of distinct terms.
func (l *Lexicon) Size() int {
	return len(l.all)
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
