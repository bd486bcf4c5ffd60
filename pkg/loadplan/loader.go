package loadplan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Declaration is one step entry in a plan document.
type Declaration struct {
	Method string `yaml:"method"`
	Order  int    `yaml:"order"`
}

// planDocument matches the top-level shape of a plan file.
type planDocument struct {
	Steps []Declaration `yaml:"steps"`
}

// Parse decodes a plan document and registers every declaration in
// document order. All failures are configuration errors surfaced here,
// at load time, never when the registry is queried.
func Parse(data []byte) (*Registry, error) {
	reg := NewRegistry()
	if err := parseInto(reg, data); err != nil {
		return nil, err
	}
	return reg, nil
}

// Load reads and parses the plan file at path.
func Load(path string) (*Registry, error) {
	reg := NewRegistry()
	if err := loadInto(reg, path); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadDir merges every .yaml/.yml fragment directly under dir into one
// registry. Fragments load in filename order (os.ReadDir sorts by name),
// and a method tagged in two fragments is the same configuration error
// as a duplicate within one file.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading plan dir: %w", err)
	}

	var fragments []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			fragments = append(fragments, e.Name())
		}
	}
	if len(fragments) == 0 {
		return nil, fmt.Errorf("no plan fragments (*.yaml) in %s", dir)
	}

	reg := NewRegistry()
	for _, name := range fragments {
		if err := loadInto(reg, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func loadInto(reg *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}
	if err := parseInto(reg, data); err != nil {
		return fmt.Errorf("plan %s: %w", path, err)
	}
	return nil
}

func parseInto(reg *Registry, data []byte) error {
	var doc planDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing plan YAML: %w", err)
	}

	for i, d := range doc.Steps {
		if d.Method == "" {
			return fmt.Errorf("step at index %d missing method", i)
		}
		if err := reg.Register(d.Method, Tag{Order: d.Order}); err != nil {
			return err
		}
	}
	return nil
}
