package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all classifier settings. The zero value is not usable; start
// from DefaultConfig and override.
type Config struct {
	Matching     MatchingConfig    `yaml:"matching"`
	Cache        CacheConfig       `yaml:"cache"`
	Input        InputConfig       `yaml:"input"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting"`
	Output       OutputConfig      `yaml:"output"`

	// Categories optionally overrides the built-in pattern data per
	// category. Absent entries keep their defaults.
	Categories map[string]CategoryOverride `yaml:"categories,omitempty"`

	// Disambiguation optionally overrides the built-in disambiguation rule
	// table: term -> ordered (context pattern, target category) list.
	Disambiguation map[string][]ContextOverride `yaml:"disambiguation,omitempty"`
}

// MatchingConfig controls pattern matching and scoring.
type MatchingConfig struct {
	MaxMatchesPerCategory int     `yaml:"max_matches_per_category"` // evidence cap per category
	MatchCacheSize        int     `yaml:"match_cache_size"`         // LRU capacity, entries
	DomainBonus           float64 `yaml:"domain_bonus"`             // added when evidence appears in the active legal domain
}

// CacheConfig controls the TTL cache for complete classification results.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// InputConfig controls input normalization.
type InputConfig struct {
	MaxLength int `yaml:"max_length"` // runes; longer input is silently truncated
}

// ConcurrencyConfig controls batch import parallelism. The engine itself is
// synchronous; these workers parallelize over independent classify calls.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles batch imports in shared environments.
// PerSecond <= 0 disables throttling.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// CategoryOverride replaces pattern data for one category. A nil Weight
// keeps the built-in weight.
type CategoryOverride struct {
	Keywords []string `yaml:"keywords,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
	Weight   *float64 `yaml:"weight,omitempty"`
}

// ContextOverride is one (context pattern, target category) step of a
// disambiguation rule.
type ContextOverride struct {
	Pattern string `yaml:"pattern"`
	Target  string `yaml:"target"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Matching: MatchingConfig{
			MaxMatchesPerCategory: 10,
			MatchCacheSize:        1024,
			DomainBonus:           0.1,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 5 * time.Minute,
		},
		Input: InputConfig{
			MaxLength: 5000,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			PerSecond: 0,
			Burst:     5,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// LoadOverrides reads a YAML override file and applies it on top of base,
// returning a new Config. Base is never modified. A malformed file yields a
// ConfigLoadError; callers keep using base (observable fallback, never
// silent, never fatal).
func LoadOverrides(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigLoadError{Section: "file", Err: err}
	}

	merged := *base
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return nil, &ConfigLoadError{Section: "yaml", Err: err}
	}

	if err := validateOverrides(&merged); err != nil {
		return nil, err
	}

	return &merged, nil
}

// validateOverrides rejects override shapes the matcher could not apply.
// Regex compilation is validated later, at matcher construction.
func validateOverrides(cfg *Config) error {
	for name := range cfg.Categories {
		if _, ok := ParseCategory(name); !ok {
			return &ConfigLoadError{
				Section: "categories",
				Err:     fmt.Errorf("unknown category %q", name),
			}
		}
	}

	for term, contexts := range cfg.Disambiguation {
		if term == "" {
			return &ConfigLoadError{
				Section: "disambiguation",
				Err:     fmt.Errorf("empty term key"),
			}
		}
		for _, c := range contexts {
			if _, ok := ParseCategory(c.Target); !ok {
				return &ConfigLoadError{
					Section: "disambiguation",
					Err:     fmt.Errorf("term %q: unknown target category %q", term, c.Target),
				}
			}
		}
	}

	if cfg.Matching.MaxMatchesPerCategory < 0 || cfg.Matching.MatchCacheSize < 0 {
		return &ConfigLoadError{
			Section: "matching",
			Err:     fmt.Errorf("negative cap or cache size"),
		}
	}

	return nil
}
