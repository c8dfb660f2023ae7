package people

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"peoplepicker/internal/domain"
)

// ErrUnsupportedFormat is returned for roster files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported roster format")

//go:embed data/people.json
var defaultPeople []byte

// tomlRoster is the TOML layout: a list of [[people]] tables
type tomlRoster struct {
	People []domain.Person `toml:"people"`
}

// Default returns the built-in roster
func Default() *Roster {
	r, err := Parse(defaultPeople, ".json")
	if err != nil {
		// The embedded file is part of the build
		panic(fmt.Sprintf("people: embedded roster is invalid: %v", err))
	}
	return r
}

// LoadFile reads a roster from a .json, .yaml, .yml or .toml file
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	r, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load roster %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes roster data in the format named by ext
func Parse(data []byte, ext string) (*Roster, error) {
	var list []domain.Person

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".toml":
		var doc tomlRoster
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		list = doc.People
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return NewRoster(list)
}
