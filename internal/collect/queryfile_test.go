// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/snowball/pkg/types"
)

func writeQueryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadQueryFile(t *testing.T) {
	path := writeQueryFile(t, `keywords:
  - code review
  - fairness
field_of_study: Computer Science
top_n: 10
`)

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}
	if !reflect.DeepEqual(qf.Keywords, []string{"code review", "fairness"}) {
		t.Errorf("Keywords = %v", qf.Keywords)
	}
	if qf.FieldOfStudy != "Computer Science" {
		t.Errorf("FieldOfStudy = %q", qf.FieldOfStudy)
	}
	if qf.TopN != 10 {
		t.Errorf("TopN = %d", qf.TopN)
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadQueryFileMalformed(t *testing.T) {
	path := writeQueryFile(t, "keywords: [unclosed\n")
	_, err := ReadQueryFile(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing query file") {
		t.Errorf("error = %q, want parse context", err.Error())
	}
}

func TestQueryFileApply(t *testing.T) {
	tests := []struct {
		name string
		qf   QueryFile
		want func(types.CollectConfig) types.CollectConfig
	}{
		{
			name: "all fields override",
			qf:   QueryFile{Keywords: []string{"testing"}, FieldOfStudy: "Medicine", TopN: 3},
			want: func(cfg types.CollectConfig) types.CollectConfig {
				cfg.Keywords = []string{"testing"}
				cfg.FieldOfStudy = "Medicine"
				cfg.TopN = 3
				return cfg
			},
		},
		{
			name: "keywords only",
			qf:   QueryFile{Keywords: []string{"testing"}},
			want: func(cfg types.CollectConfig) types.CollectConfig {
				cfg.Keywords = []string{"testing"}
				return cfg
			},
		},
		{
			name: "empty file changes nothing",
			qf:   QueryFile{},
			want: func(cfg types.CollectConfig) types.CollectConfig { return cfg },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultCollectConfig()
			want := tt.want(types.DefaultCollectConfig())
			tt.qf.Apply(&cfg)
			if !reflect.DeepEqual(cfg, want) {
				t.Errorf("Apply = %+v, want %+v", cfg, want)
			}
		})
	}
}
