package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdevries/ontoclass/internal/classifier"
	"github.com/pdevries/ontoclass/internal/model"
	"github.com/spf13/cobra"
)

var (
	domain       string
	patternsFile string
	outJSON      string
	noCache      bool
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <term> <definition>",
	Short: "Classify a single term/definition pair",
	Long: `Classify runs the full decision pipeline on one (term, definition) pair:
- Match the definition against per-category keyword and structural patterns
- Apply disambiguation rules for overloaded terms
- Calibrate confidence and derive secondary categories
- Render a fixed-section explanation for expert review

Example:
  ontoclass classify huwelijk "De juridische band tussen twee gehuwde personen"
  ontoclass classify zaak "Een roerende zaak zoals een auto" --domain burgerlijk_recht
  ontoclass classify beslag "Het leggen van beslag op goederen" --json result.json`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&domain, "domain", "", "active legal domain (e.g. burgerlijk_recht)")
	classifyCmd.Flags().StringVar(&patternsFile, "patterns", "", "YAML file with pattern/weight overrides")
	classifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	classifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
}

func runClassify(cmd *cobra.Command, args []string) error {
	term := args[0]
	definition := args[1]

	svc := classifier.New(buildConfig(patternsFile))

	result, err := svc.Classify(term, definition, domain)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Term:       %s\n", result.Term)
		fmt.Fprintf(os.Stderr, "Primary:    %s\n", result.PrimaryCategory)
		fmt.Fprintf(os.Stderr, "Confidence: %.2f\n", result.Confidence)
		fmt.Fprintln(os.Stderr)
	}

	fmt.Println(result.Explanation)

	if outJSON != "" {
		data, err := json.MarshalIndent(result.ToDict(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(outJSON, data, 0644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	return nil
}

// buildConfig assembles the classifier configuration from defaults, flags,
// and an optional override file. A malformed override file is reported and
// defaults are kept.
func buildConfig(overridePath string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache

	if overridePath != "" {
		merged, err := model.LoadOverrides(cfg, overridePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using built-in defaults)\n", err)
		} else {
			cfg = merged
		}
	}

	return cfg
}
