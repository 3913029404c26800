// Package types defines shared configuration structures for the snowball CLI.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by commands that call the
// Semantic Scholar API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "snowball/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CollectConfig holds the settings for a collection run. The CLI fills
// unset fields from DefaultCollectConfig, so a bare run reproduces the
// documented defaults.
type CollectConfig struct {
	HTTPConfig `yaml:",inline"`

	// Keywords is the keyword list for the seed search.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// FieldOfStudy constrains the seed search to one field of study
	// (e.g. "Computer Science").
	FieldOfStudy string `json:"field_of_study" yaml:"field_of_study"`

	// TopN is the number of seed papers taken from the search (default 5).
	TopN int `json:"top_n" yaml:"top_n"`

	// Pause is the delay observed after every API response, success or
	// failure (default 3.5s). The public API allows roughly 100 requests
	// per 5-minute window.
	Pause time.Duration `json:"pause" yaml:"pause"`

	// OutputDir is the root directory for persisted artifacts (default
	// "output"). It must exist before a run; see the init command.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// DefaultCollectConfig returns the documented defaults for a collection run.
func DefaultCollectConfig() CollectConfig {
	return CollectConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "snowball/0.1",
		},
		Keywords:     []string{"software", "engineering", "gender", "diversity"},
		FieldOfStudy: "Computer Science",
		TopN:         5,
		Pause:        3500 * time.Millisecond,
		OutputDir:    "output",
	}
}
