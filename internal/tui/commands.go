package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbellido/portions/internal/domain"
)

func openWorkspaceCmd(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.OpenWorkspace == nil {
			return workspaceOpenedMsg{err: domain.ErrNotFound}
		}
		ws, err := deps.OpenWorkspace(root)
		return workspaceOpenedMsg{ws: ws, err: err}
	}
}

func initWorkspaceCmd(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: domain.ErrNotFound}
		}
		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func loadRecipesCmd(ws Workspace) tea.Cmd {
	return func() tea.Msg {
		refs, err := ws.Source.ListRecipes(ws.Root)
		return recipesLoadedMsg{refs: refs, err: err}
	}
}

func scaleRecipeCmd(ws Workspace, ref domain.RecipeRef, servings int) tea.Cmd {
	return func() tea.Msg {
		res, err := ws.Scale.Execute(context.Background(), ref.Path, ref.Name, servings)
		return scaledMsg{res: res, err: err}
	}
}
