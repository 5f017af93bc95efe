package domain

// Config is the workspace configuration loaded from portions.yaml.
type Config struct {
	Defaults  DefaultsConfig
	Paths     PathsConfig
	Artifacts ArtifactsConfig
}

type DefaultsConfig struct {
	// Recipe is the recipe name used when a command omits one.
	Recipe string
}

type PathsConfig struct {
	RecipesDir string
	ScaledDir  string
}

type ArtifactsConfig struct {
	// Save controls whether scaled results are written under ScaledDir.
	Save bool
	// Index appends a JSONL line per saved artifact.
	Index bool
}

// DefaultConfig provides sane defaults if portions.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			RecipesDir: "recipes",
			ScaledDir:  "scaled",
		},
		Artifacts: ArtifactsConfig{
			Save:  true,
			Index: true,
		},
	}
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
