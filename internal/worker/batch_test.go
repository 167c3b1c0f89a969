package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdevries/ontoclass/internal/classifier"
	"github.com/pdevries/ontoclass/internal/model"
)

type fakeClassifier struct{}

func (f *fakeClassifier) Classify(term, definition, context string) (*model.ClassificationResult, error) {
	if term == "boom" {
		return nil, errors.New("synthetic failure")
	}
	return &model.ClassificationResult{
		Term:            term,
		Definition:      definition,
		Context:         context,
		PrimaryCategory: model.CategoryKind,
		Confidence:      0.9,
	}, nil
}

func TestBatchProcessor_ProcessItems_PreservesOrder(t *testing.T) {
	processor := NewBatchProcessor(&fakeClassifier{}, 3, 0, 0)

	// More items than the pool's channel buffers, so submission and
	// collection must overlap.
	items := make([]classifier.Item, 50)
	for i := range items {
		items[i] = classifier.Item{
			Term:       fmt.Sprintf("term-%d", i),
			Definition: fmt.Sprintf("definitie %d", i),
		}
	}

	results := processor.ProcessItems(context.Background(), items)
	if len(results) != len(items) {
		t.Fatalf("Expected %d results, got %d", len(items), len(results))
	}

	for i, r := range results {
		if r.Index != i {
			t.Errorf("Result %d has index %d", i, r.Index)
		}
		if r.Error != nil {
			t.Errorf("Result %d failed: %v", i, r.Error)
			continue
		}
		if r.Result.Term != items[i].Term {
			t.Errorf("Result %d: term %q, want %q", i, r.Result.Term, items[i].Term)
		}
	}
}

func TestBatchProcessor_ProcessItems_IsolatesFailures(t *testing.T) {
	processor := NewBatchProcessor(&fakeClassifier{}, 2, 0, 0)

	items := []classifier.Item{
		{Term: "eerste", Definition: "Een definitie"},
		{Term: "boom", Definition: "Deze faalt"},
		{Term: "derde", Definition: "Nog een definitie"},
	}

	results := processor.ProcessItems(context.Background(), items)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	if results[0].Error != nil || results[2].Error != nil {
		t.Error("Healthy items should not fail")
	}
	if results[1].Error == nil {
		t.Error("Expected error for failing item")
	}
	if results[1].GetError() == nil {
		t.Error("GetError should report the failure")
	}
}

func TestBatchProcessor_ProcessItems_Empty(t *testing.T) {
	processor := NewBatchProcessor(&fakeClassifier{}, 2, 0, 0)

	results := processor.ProcessItems(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadItemsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.tsv")
	content := strings.Join([]string{
		"# commentaar",
		"",
		"huwelijk\tDe juridische band tussen twee gehuwde personen\tfamilierecht",
		"zaak\tEen roerende zaak",
		"zaak\tEen roerende zaak",
		"  rechtszaak \t Een procedure \t strafrecht ",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	items, err := ReadItemsFromFile(path)
	if err != nil {
		t.Fatalf("ReadItemsFromFile failed: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 deduplicated items, got %d", len(items))
	}
	if items[0].Term != "huwelijk" || items[0].Context != "familierecht" {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
	if items[1].Context != "" {
		t.Errorf("Expected empty context for two-field line, got %q", items[1].Context)
	}
	if items[2].Term != "rechtszaak" || items[2].Definition != "Een procedure" {
		t.Errorf("Fields not trimmed: %+v", items[2])
	}
}

func TestReadItemsFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tsv")
	if err := os.WriteFile(path, []byte("geen tab op deze regel\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := ReadItemsFromFile(path)
	if err == nil {
		t.Fatal("Expected error for line without tab")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Expected line number in error, got %v", err)
	}
}

func TestReadItemsFromFile_Missing(t *testing.T) {
	if _, err := ReadItemsFromFile(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
