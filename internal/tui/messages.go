package tui

import (
	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/usecase"
)

type workspaceOpenedMsg struct {
	ws  Workspace
	err error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type recipesLoadedMsg struct {
	refs []domain.RecipeRef
	err  error
}

type scaledMsg struct {
	res usecase.Result
	err error
}
