package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Match     *MatchConfig
	Formation *FormationConfig
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadMatch loads match.json on top of DefaultMatchConfig
func (l *Loader) LoadMatch() (*MatchConfig, error) {
	data, err := fs.ReadFile(l.fsys, "match.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read match.json: %w", err)
	}

	cfg := DefaultMatchConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse match.json: %w", err)
	}

	return cfg, nil
}

// LoadFormation loads and validates formations/<name>.yaml
func (l *Loader) LoadFormation(name string) (*FormationConfig, error) {
	path := "formations/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read formation %s: %w", name, err)
	}

	var cfg FormationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse formation %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid formation %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads match tuning and the named formation
func (l *Loader) LoadAll(formation string) (*GameConfig, error) {
	match, err := l.LoadMatch()
	if err != nil {
		return nil, err
	}

	f, err := l.LoadFormation(formation)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Match:     match,
		Formation: f,
	}, nil
}
