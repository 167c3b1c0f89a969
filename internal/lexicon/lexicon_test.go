package lexicon

import "testing"

func TestLexicon_Size(t *testing.T) {
	lex := New()

	if lex.Size() < 500 {
		t.Errorf("Expected at least 500 distinct terms, got %d", lex.Size())
	}

	if len(lex.Domains()) < 4 {
		t.Errorf("Expected at least 4 legal domains, got %d", len(lex.Domains()))
	}
}

func TestLexicon_AllTerms_Deduplicated(t *testing.T) {
	lex := New()

	terms := lex.AllTerms()
	if len(terms) != lex.Size() {
		t.Errorf("AllTerms length %d does not match Size %d", len(terms), lex.Size())
	}

	seen := make(map[string]bool)
	for _, term := range terms {
		if seen[term] {
			t.Errorf("Duplicate term in AllTerms: %q", term)
		}
		seen[term] = true
	}
}

func TestLexicon_DomainTerms(t *testing.T) {
	lex := New()

	for _, domain := range lex.Domains() {
		if len(lex.DomainTerms(domain)) == 0 {
			t.Errorf("Domain %q has no terms", domain)
		}
	}

	// Unknown domain yields an empty sequence, not an error.
	if got := lex.DomainTerms("ruimterecht"); len(got) != 0 {
		t.Errorf("Expected empty sequence for unknown domain, got %d terms", len(got))
	}
}

func TestLexicon_IsLegalTerm(t *testing.T) {
	lex := New()

	cases := []struct {
		term string
		want bool
	}{
		{"huwelijk", true},
		{"Huwelijk", true},
		{"  huwelijk  ", true},
		{"overeenkomst", true},
		{"roerende zaak", true},
		{"pindakaas", false},
		{"", false},
	}

	for _, c := range cases {
		if got := lex.IsLegalTerm(c.term); got != c.want {
			t.Errorf("IsLegalTerm(%q) = %v, want %v", c.term, got, c.want)
		}
	}
}

func TestLexicon_HasDomainTerm(t *testing.T) {
	lex := New()

	if !lex.HasDomainTerm(DomainFamily, "huwelijk") {
		t.Error("Expected huwelijk in familierecht")
	}
	if lex.HasDomainTerm(DomainCriminal, "huwelijk") {
		t.Error("Did not expect huwelijk in strafrecht")
	}
	if lex.HasDomainTerm("ruimterecht", "huwelijk") {
		t.Error("Unknown domain should never match")
	}
}
