package phrases

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/phrases.json
var defaultPoolJSON []byte

// Default returns the phrase pool bundled with the binary.
func Default() (Pool, error) {
	p, err := parsePool(defaultPoolJSON, ".json")
	if err != nil {
		return Pool{}, fmt.Errorf("embedded pool: %w", err)
	}
	return p, nil
}

// LoadPoolFromFile reads a pool from a JSON or YAML file, picked by extension.
// An empty path yields the embedded default pool.
func LoadPoolFromFile(path string) (Pool, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Pool{}, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := parsePool(b, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Pool{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return p, nil
}

func parsePool(b []byte, ext string) (Pool, error) {
	raw := map[string][]string{}
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return Pool{}, err
		}
	default:
		if err := json.Unmarshal(b, &raw); err != nil {
			return Pool{}, err
		}
	}
	if len(raw) == 0 {
		return Pool{}, fmt.Errorf("pool has no categories")
	}

	cleaned := make(map[string][]string, len(raw))
	for key, list := range raw {
		k := strings.TrimSpace(key)
		if k == "" {
			return Pool{}, fmt.Errorf("pool has an empty category key")
		}
		out := make([]string, 0, len(list))
		for _, s := range list {
			t := strings.TrimSpace(s)
			if t == "" {
				continue
			}
			if k == CategoryParameterized && strings.Count(t, Placeholder) != 1 {
				return Pool{}, fmt.Errorf("parameterized phrase %q must contain %s exactly once", t, Placeholder)
			}
			out = append(out, t)
		}
		cleaned[k] = out
	}
	return Pool{categories: cleaned}, nil
}
