package tui

import (
	"log/slog"

	"github.com/mbellido/portions/internal/ports"
	"github.com/mbellido/portions/internal/usecase"
)

// Workspace bundles the adapters the TUI needs once a workspace root is
// known. The CLI wires it so the TUI stays free of infra imports.
type Workspace struct {
	Root   string
	Source ports.RecipeSource
	Scale  *usecase.ScaleRecipe
}

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// OpenWorkspace builds a Workspace for a discovered root.
	OpenWorkspace func(root string) (Workspace, error)

	Logger *slog.Logger
	Debug  bool
}
