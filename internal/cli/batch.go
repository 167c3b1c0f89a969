package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pdevries/ontoclass/internal/classifier"
	"github.com/pdevries/ontoclass/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outPath      string
	batchTimeout time.Duration
	ratePerSec   float64
	rateBurst    int
	batchDomain  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify many term/definition pairs from a file in parallel",
	Long: `Batch classifies tab-separated pairs concurrently:
- Read items from the input file (term<TAB>definition[<TAB>domain] per line)
- Classify items in parallel with a configurable worker count
- Isolate failing rows into degraded results instead of aborting
- Write one JSON result per line to the output file

Example:
  ontoclass batch terms.tsv
  ontoclass batch terms.tsv --concurrency 8 --out results.jsonl
  ontoclass batch terms.tsv --rate 100 --domain strafrecht`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outPath, "out", "results.jsonl", "output path for JSON lines")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&ratePerSec, "rate", 0, "max classifications per second (0 = unlimited)")
	batchCmd.Flags().IntVar(&rateBurst, "burst", 5, "rate limiter burst size")
	batchCmd.Flags().StringVar(&batchDomain, "domain", "", "default legal domain for items without one")
	batchCmd.Flags().StringVar(&patternsFile, "patterns", "", "YAML file with pattern/weight overrides")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Ontoclass Batch Classification\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output:       %s\n", outPath)
	if ratePerSec > 0 {
		fmt.Fprintf(os.Stderr, "  Rate limit:   %.0f/s\n", ratePerSec)
	}
	fmt.Fprintf(os.Stderr, "\n")

	cfg := buildConfig(patternsFile)
	cfg.Concurrency.Workers = concurrency
	cfg.RateLimiting.PerSecond = ratePerSec
	cfg.RateLimiting.Burst = rateBurst

	svc := classifier.New(cfg)
	processor := worker.NewBatchProcessor(svc, concurrency, ratePerSec, rateBurst)

	items, err := worker.ReadItemsFromFile(file)
	if err != nil {
		return fmt.Errorf("read items: %w", err)
	}
	for i := range items {
		if items[i].Context == "" {
			items[i].Context = batchDomain
		}
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d items\n", len(items))
	fmt.Fprintf(os.Stderr, "⚙️  Classifying with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results := processor.ProcessItems(ctx, items)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)

	classified := 0
	review := 0
	failed := 0

	for _, r := range results {
		result := r.Result
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Item.Term, r.Error)
			// Route the failure through the batch boundary so the output
			// file stays uniform: one degraded result per failed row.
			result = svc.BatchClassify([]classifier.Item{r.Item})[0]
		} else {
			classified++
			if result.ManualOverrideRequired {
				review++
			}
		}

		line, err := json.Marshal(result.ToDict())
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if _, err := writer.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		if verbose && r.Error == nil {
			fmt.Fprintf(os.Stderr, "✓ %s -> %s (%.2f)\n",
				result.Term, result.PrimaryCategory, result.Confidence)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:          %d items\n", len(results))
	fmt.Fprintf(os.Stderr, "  Classified:     %d\n", classified)
	fmt.Fprintf(os.Stderr, "  Needs review:   %d\n", review)
	fmt.Fprintf(os.Stderr, "  Failures:       %d\n", failed)
	fmt.Fprintf(os.Stderr, "  Output:         %s\n", outPath)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
