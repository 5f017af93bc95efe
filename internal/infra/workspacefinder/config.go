package workspacefinder

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mbellido/portions/internal/domain"
)

// LoadConfig loads portions.yaml from the workspace root and applies
// defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "portions.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Portions.Defaults.Recipe != "" {
		cfg.Defaults.Recipe = y.Portions.Defaults.Recipe
	}
	if y.Portions.Paths.RecipesDir != "" {
		cfg.Paths.RecipesDir = y.Portions.Paths.RecipesDir
	}
	if y.Portions.Paths.ScaledDir != "" {
		cfg.Paths.ScaledDir = y.Portions.Paths.ScaledDir
	}
	if y.Portions.Artifacts.Save != nil {
		cfg.Artifacts.Save = *y.Portions.Artifacts.Save
	}
	if y.Portions.Artifacts.Index != nil {
		cfg.Artifacts.Index = *y.Portions.Artifacts.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Portions struct {
		Defaults struct {
			Recipe string `yaml:"recipe"`
		} `yaml:"defaults"`

		Paths struct {
			RecipesDir string `yaml:"recipes_dir"`
			ScaledDir  string `yaml:"scaled_dir"`
		} `yaml:"paths"`

		Artifacts struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"artifacts"`
	} `yaml:"portions"`
}
