package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mbellido/portions/internal/domain"
	"github.com/mbellido/portions/internal/usecase"
)

type screen int

const (
	screenMenu screen = iota
	screenServings
	screenResult
)

type recipeItem struct {
	ref domain.RecipeRef
}

func (r recipeItem) Title() string       { return r.ref.Name }
func (r recipeItem) Description() string { return filepath.Base(r.ref.Path) }
func (r recipeItem) FilterValue() string { return r.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr screen

	workspaceFound bool
	workspaceRoot  string
	ws             Workspace
	wsReady        bool

	menu     list.Model
	servings textinput.Model
	selected domain.RecipeRef
	inputErr string

	result usecase.Result

	loadErr error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Recipes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "e.g. 6"
	ti.CharLimit = 4
	ti.Width = 10

	m := model{
		theme:    t,
		deps:     deps,
		scr:      screenMenu,
		menu:     l,
		servings: ti,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	if m.workspaceFound {
		return openWorkspaceCmd(m.deps, m.workspaceRoot)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceOpenedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.ws = msg.ws
		m.wsReady = true
		return m, loadRecipesCmd(m.ws)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.workspaceFound = true
		m.workspaceRoot = msg.root
		m.loadErr = nil
		return m, openWorkspaceCmd(m.deps, msg.root)

	case recipesLoadedMsg:
		if msg.err != nil {
			// Missing or malformed source: report and keep an empty menu.
			m.loadErr = msg.err
			return m, m.menu.SetItems(nil)
		}
		m.loadErr = nil
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, recipeItem{ref: r})
		}
		return m, m.menu.SetItems(items)

	case scaledMsg:
		if msg.err != nil {
			m.inputErr = msg.err.Error()
			m.scr = screenServings
			return m, textinput.Blink
		}
		m.result = msg.res
		m.inputErr = ""
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m.updateActive(msg)
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.scr == screenMenu && !m.menu.SettingFilter() {
			return m, tea.Quit
		}

	case "i":
		if m.scr == screenMenu && !m.workspaceFound {
			wd, err := os.Getwd()
			if err != nil {
				m.loadErr = err
				return m, nil
			}
			return m, initWorkspaceCmd(m.deps, wd)
		}

	case "enter":
		switch m.scr {
		case screenMenu:
			it, ok := m.menu.SelectedItem().(recipeItem)
			if !ok {
				return m, nil
			}
			m.selected = it.ref
			m.inputErr = ""
			m.servings.SetValue("")
			m.servings.Focus()
			m.scr = screenServings
			return m, textinput.Blink

		case screenServings:
			n, err := strconv.Atoi(strings.TrimSpace(m.servings.Value()))
			if err != nil {
				m.inputErr = "Please enter a valid number."
				m.servings.SetValue("")
				return m, nil
			}
			if n <= 0 {
				m.inputErr = "Please enter a positive number."
				m.servings.SetValue("")
				return m, nil
			}
			m.inputErr = ""
			return m, scaleRecipeCmd(m.ws, m.selected, n)

		case screenResult:
			m.scr = screenMenu
			return m, nil
		}

	case "esc":
		if m.scr != screenMenu {
			m.scr = screenMenu
			m.inputErr = ""
			return m, nil
		}

	case "b":
		// Only a shortcut on the result screen; on the servings screen the
		// key belongs to the input.
		if m.scr == screenResult {
			m.scr = screenMenu
			m.inputErr = ""
			return m, nil
		}
	}

	return m.updateActive(msg)
}

func (m model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.scr {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenServings:
		m.servings, cmd = m.servings.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("Portions") + "\n" +
		m.theme.Subtitle.Render("Scale recipes to any serving count") + "\n"

	var body string
	switch m.scr {
	case screenMenu:
		body = m.viewMenu()
	case screenServings:
		body = m.viewServings()
	case screenResult:
		body = m.viewResult()
	}

	return wrap.Render(header + "\n" + body)
}

func (m model) viewMenu() string {
	if !m.workspaceFound {
		return m.theme.Card.Render(
			"No workspace found.\n\nPress i to initialize one here, or run `portions init`.",
		) + "\n" + m.errLine() + m.theme.Help.Render("i: init workspace • q: quit")
	}

	banner := m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	return banner + "\n\n" + m.menu.View() + "\n" + m.errLine() +
		m.theme.Help.Render("enter: scale • /: filter • q: quit")
}

func (m model) viewServings() string {
	prompt := fmt.Sprintf("Target servings for %q:", m.selected.Name)
	body := prompt + "\n\n" + m.servings.View() + "\n"
	if m.inputErr != "" {
		body += "\n" + m.theme.Error.Render(m.inputErr) + "\n"
	}
	return m.theme.Card.Render(body) + "\n" +
		m.theme.Help.Render("enter: scale • esc: back")
}

func (m model) viewResult() string {
	return m.theme.Card.Render(strings.Join(m.result.Lines, "\n")) + "\n" +
		m.savedLine() +
		m.theme.Help.Render("enter/esc: back • q: quit")
}

func (m model) savedLine() string {
	if m.result.ArtifactID == "" {
		return ""
	}
	return m.theme.Help.Render("Saved as: "+m.result.ArtifactID) + "\n"
}

func (m model) errLine() string {
	if m.loadErr == nil {
		return ""
	}
	return m.theme.Error.Render(fmt.Sprintf("Error: %v", m.loadErr)) + "\n"
}
