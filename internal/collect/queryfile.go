// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/snowball/pkg/types"
)

// QueryFile is the on-disk form of a collection query. A researcher can
// keep one file per topic and rerun the collection without retyping flags.
type QueryFile struct {
	Keywords     []string `yaml:"keywords"`
	FieldOfStudy string   `yaml:"field_of_study"`
	TopN         int      `yaml:"top_n"`
}

// ReadQueryFile loads a query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Apply overlays the query file's set fields onto cfg, leaving unset
// fields untouched.
func (qf *QueryFile) Apply(cfg *types.CollectConfig) {
	if len(qf.Keywords) > 0 {
		cfg.Keywords = qf.Keywords
	}
	if qf.FieldOfStudy != "" {
		cfg.FieldOfStudy = qf.FieldOfStudy
	}
	if qf.TopN > 0 {
		cfg.TopN = qf.TopN
	}
}
