package model

import "encoding/json"

// SignalWeights maps known signal sources to investor-specific weights.
// Named fields rather than a generic map so that weight resolution and
// defaulting stay auditable. Sources not listed here weigh 1.0.
type SignalWeights struct {
	Funding       float64 `json:"funding" yaml:"funding"`               // Funding rounds
	Hiring        float64 `json:"hiring" yaml:"hiring"`                 // Hiring surges
	ProductLaunch float64 `json:"product_launch" yaml:"product_launch"` // Product launches
	Press         float64 `json:"press" yaml:"press"`                   // Press coverage
}

// DefaultWeights returns the stock weighting used when an investor has
// no overrides on file.
func DefaultWeights() SignalWeights {
	return SignalWeights{
		Funding:       1.2,
		Hiring:        1.0,
		ProductLaunch: 1.1,
		Press:         0.9,
	}
}

// For resolves the weight for a source tag. Unknown sources weigh 1.0.
func (w SignalWeights) For(source string) float64 {
	switch source {
	case "funding":
		return w.Funding
	case "hiring":
		return w.Hiring
	case "product_launch":
		return w.ProductLaunch
	case "press":
		return w.Press
	default:
		return 1.0
	}
}

// UnmarshalJSON fills omitted fields from DefaultWeights so a partial
// override like {"funding": 1.5} keeps stock weights for the rest.
func (w *SignalWeights) UnmarshalJSON(data []byte) error {
	type plain SignalWeights
	tmp := plain(DefaultWeights())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*w = SignalWeights(tmp)
	return nil
}

// Config is the complete agent configuration
type Config struct {
	Scoring     ScoringConfig     `yaml:"scoring"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// ScoringConfig controls signal weighting and the decision gate
type ScoringConfig struct {
	Weights   SignalWeights `yaml:"weights"`
	Threshold float64       `yaml:"threshold"` // Re-engage when aggregate >= threshold
}

// ConcurrencyConfig controls worker parallelism
type ConcurrencyConfig struct {
	ScoringWorkers int `yaml:"scoring_workers"`
}

// LLMConfig configures the optional draft polish step. Disabled when
// Provider is empty. Polish output never replaces the deterministic draft.
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // "openai" or "" (disabled)
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"api_key,omitempty"`
	BaseURL           string  `yaml:"base_url,omitempty"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls artifact rendering
type OutputConfig struct {
	OutDir  string `yaml:"out_dir"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:   DefaultWeights(),
			Threshold: 0.75,
		},
		Concurrency: ConcurrencyConfig{
			ScoringWorkers: 4,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			TimeoutSeconds:    30,
			MaxTokens:         600,
			RequestsPerSecond: 1,
			Burst:             1,
		},
		Output: OutputConfig{
			OutDir: "out",
		},
	}
}
