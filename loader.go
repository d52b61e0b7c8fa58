package enumset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk shape of an enumeration.
//
// Example YAML:
//
//	name: Color
//	members: [RED, GREEN, BLUE]
//	labels:
//	  RED: Red
//	translations:
//	  RED:
//	    en: Red
//	    fr: Rouge
type Definition struct {
	Name         string                       `json:"name,omitempty" yaml:"name,omitempty"`
	Members      []string                     `json:"members" yaml:"members"`
	Labels       map[string]string            `json:"labels,omitempty" yaml:"labels,omitempty"`
	Translations map[string]map[string]string `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// Build constructs the enumeration described by the definition. Explicit
// options are applied after the definition's own name, labels and
// translations, so they win.
func (d *Definition) Build(opts ...Option) (*Enum, error) {
	base := make([]Option, 0, 3+len(opts))
	if d.Name != "" {
		base = append(base, WithName(d.Name))
	}
	if len(d.Labels) > 0 {
		base = append(base, WithLabels(d.Labels))
	}
	if len(d.Translations) > 0 {
		base = append(base, WithTranslations(d.Translations))
	}
	return New(d.Members, append(base, opts...)...)
}

// Load reads a single enumeration definition from fsys. The format follows
// the file extension: .json, .yaml or .yml.
func Load(fsys fs.FS, filePath string, opts ...Option) (*Enum, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}
	def, err := parseDefinition(filePath, data)
	if err != nil {
		return nil, err
	}
	return def.Build(opts...)
}

func parseDefinition(filePath string, data []byte) (*Definition, error) {
	var def Definition
	// Case-insensitive comparison handles .YAML vs .yaml across systems.
	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidDefinition, filePath, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidDefinition, filePath, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q in %q", ErrInvalidDefinition, ext, filePath)
	}
	return &def, nil
}

// LoadDir walks fsys and loads every .json, .yaml and .yml definition found,
// keyed by the definition's name, or by the file name without extension when
// the definition carries no name. Two definitions resolving to the same name
// fail with ErrInvalidDefinition.
func LoadDir(fsys fs.FS, opts ...Option) (map[string]*Enum, error) {
	enums := make(map[string]*Enum)
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(filePath)) {
		case ".json", ".yaml", ".yml":
		default:
			return nil
		}

		e, err := Load(fsys, filePath, opts...)
		if err != nil {
			return err
		}

		name := e.Name()
		if name == "" {
			name = strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		}
		if _, exists := enums[name]; exists {
			return fmt.Errorf("%w: duplicate enumeration name %q in %q", ErrInvalidDefinition, name, filePath)
		}
		enums[name] = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enums, nil
}
