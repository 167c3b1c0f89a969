package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdevries/ontoclass/internal/classifier"
	"github.com/pdevries/ontoclass/internal/model"
)

// Classifier defines the interface for classifying a single item.
type Classifier interface {
	Classify(term, definition, context string) (*model.ClassificationResult, error)
}

// ClassifyJob classifies one item, carrying its input index so results can
// be reassembled in order.
type ClassifyJob struct {
	Index      int
	Item       classifier.Item
	Classifier Classifier
	Limiter    *Limiter
}

// Execute runs the classification job.
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	if err := j.Limiter.Wait(ctx); err != nil {
		return &ClassifyResult{Index: j.Index, Item: j.Item, Error: err}
	}

	result, err := j.Classifier.Classify(j.Item.Term, j.Item.Definition, j.Item.Context)
	return &ClassifyResult{
		Index:  j.Index,
		Item:   j.Item,
		Result: result,
		Error:  err,
	}
}

// ClassifyResult is the outcome of one classification job.
type ClassifyResult struct {
	Index  int
	Item   classifier.Item
	Result *model.ClassificationResult
	Error  error
}

// GetError returns the error from the classify result.
func (r *ClassifyResult) GetError() error {
	return r.Error
}

// BatchProcessor classifies many items concurrently while preserving input
// order in the output.
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a batch processor. perSecond <= 0 disables
// throttling.
func NewBatchProcessor(c Classifier, concurrency int, perSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		classifier:  c,
		concurrency: concurrency,
		limiter:     NewLimiter(perSecond, burst),
	}
}

// ProcessItems classifies items concurrently and returns results in input
// order.
func (b *BatchProcessor) ProcessItems(ctx context.Context, items []classifier.Item) []*ClassifyResult {
	if len(items) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine while this one drains, so batches
	// larger than the bounded channel buffers cannot wedge the pool.
	go func() {
		defer pool.Close()
		for i, item := range items {
			pool.Submit(&ClassifyJob{
				Index:      i,
				Item:       item,
				Classifier: b.classifier,
				Limiter:    b.limiter,
			})
		}
	}()

	results := pool.Wait()

	ordered := make([]*ClassifyResult, 0, len(results))
	for _, result := range results {
		ordered = append(ordered, result.(*ClassifyResult))
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})

	return ordered
}

// ProcessFile reads items from a file and classifies them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ClassifyResult, error) {
	items, err := ReadItemsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	return b.ProcessItems(ctx, items), nil
}

// ReadItemsFromFile reads tab-separated items from a file, one per line:
// term<TAB>definition[<TAB>domain]. Empty lines and # comments are skipped;
// duplicate (term, definition) pairs are removed.
func ReadItemsFromFile(filePath string) ([]classifier.Item, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var items []classifier.Item
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected term<TAB>definition", lineNo)
		}

		item := classifier.Item{
			Term:       strings.TrimSpace(fields[0]),
			Definition: strings.TrimSpace(fields[1]),
		}
		if len(fields) == 3 {
			item.Context = strings.TrimSpace(fields[2])
		}

		key := item.Term + "\x1f" + item.Definition
		if !seen[key] {
			seen[key] = true
			items = append(items, item)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return items, nil
}
