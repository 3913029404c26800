// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/snowball/pkg/types"
)

// Report is the YAML summary written after a collection run: the query,
// the effective configuration, the seed identifiers, and the expansion
// counters. No per-paper metadata is aggregated here.
type Report struct {
	Query   ReportQuery   `yaml:"query"`
	Config  ReportConfig  `yaml:"config"`
	Seeds   []string      `yaml:"seeds"`
	Summary ReportSummary `yaml:"summary"`
}

// ReportQuery records the query parameters that selected the seeds.
type ReportQuery struct {
	Keywords     []string `yaml:"keywords"`
	FieldOfStudy string   `yaml:"field_of_study"`
	TopN         int      `yaml:"top_n"`
}

// ReportConfig records the client settings the run used.
type ReportConfig struct {
	Pause     string `yaml:"pause"`
	Timeout   string `yaml:"timeout"`
	OutputDir string `yaml:"output_dir"`
}

// ReportSummary holds the run counters and a timestamp.
type ReportSummary struct {
	Seeds            int       `yaml:"seeds"`
	NeighborsFetched int       `yaml:"neighbors_fetched"`
	NeighborsFailed  int       `yaml:"neighbors_failed"`
	Timestamp        time.Time `yaml:"timestamp"`
}

// WriteReport saves the run parameters and counters to a YAML file.
func WriteReport(path string, cfg types.CollectConfig, res Result) error {
	r := Report{
		Query: ReportQuery{
			Keywords:     cfg.Keywords,
			FieldOfStudy: cfg.FieldOfStudy,
			TopN:         cfg.TopN,
		},
		Config: ReportConfig{
			Pause:     cfg.Pause.String(),
			Timeout:   cfg.Timeout.String(),
			OutputDir: cfg.OutputDir,
		},
		Seeds: res.SeedIDs,
		Summary: ReportSummary{
			Seeds:            len(res.SeedIDs),
			NeighborsFetched: res.Fetched,
			NeighborsFailed:  res.Failed,
			Timestamp:        time.Now(),
		},
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
