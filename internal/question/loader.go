package question

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog file. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON. Both hold a top-level list of questions.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var qs []Question
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &qs)
	default:
		err = json.Unmarshal(data, &qs)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return qs, nil
}

// Seed upserts every question into the store.
func Seed(ctx context.Context, store Store, qs []Question) error {
	for _, q := range qs {
		if err := store.Put(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
