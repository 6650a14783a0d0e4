// Package tui implements the interactive menu: the menu state machine, the
// line input collector, and the action handlers that drive git and the
// hosting service.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitmenu.dev/gitmenu/internal/config"
	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/internal/github"
)

type viewState int

const (
	viewMenu viewState = iota
	viewInput
	viewRunning
	viewResult
)

// stepResultMsg carries the outcome of one executed step.
type stepResultMsg struct {
	idx int
	res git.Result
}

// statusMsg carries a refreshed `git status --short` snippet for the footer.
type statusMsg string

// Model is the bubbletea model for the whole menu program.
type Model struct {
	runner  git.Runner
	hosting github.Client
	cfg     *config.RepoConfig
	info    *git.RepoInfo
	styles  Styles

	stack []*Menu
	state viewState

	// input collection for the active action
	action    Action
	promptIdx int
	inputs    []string
	input     textinput.Model

	// step execution and result rendering
	steps     []step
	stepIdx   int
	lines     []string
	body      []string
	bodyTitle string
	completed bool

	spinner spinner.Model
	status  string
	width   int
	height  int
}

// NewModel creates the menu model, starting at the main menu with the first
// entry selected.
func NewModel(runner git.Runner, hosting github.Client, cfg *config.RepoConfig, info *git.RepoInfo) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.Prompt = "> "

	return &Model{
		runner:  runner,
		hosting: hosting,
		cfg:     cfg,
		info:    info,
		styles:  DefaultStyles(),
		stack:   []*Menu{MainMenu(cfg)},
		spinner: sp,
		input:   input,
	}
}

func (m *Model) currentMenu() *Menu {
	return m.stack[len(m.stack)-1]
}

func (m *Model) Init() tea.Cmd {
	return m.refreshStatus()
}

func (m *Model) refreshStatus() tea.Cmd {
	runner := m.runner
	return func() tea.Msg {
		return statusMsg(git.StatusShort(context.Background(), runner))
	}
}

func (m *Model) runStep(idx int) tea.Cmd {
	run := m.steps[idx].run
	return func() tea.Msg {
		return stepResultMsg{idx: idx, res: run(context.Background())}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		if m.state != viewRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepResultMsg:
		return m.handleStepResult(msg)

	case tea.KeyMsg:
		switch m.state {
		case viewMenu:
			return m.handleMenuKey(msg)
		case viewInput:
			return m.handleInputKey(msg)
		case viewRunning:
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			return m, nil
		case viewResult:
			// Any key acknowledges the result.
			if m.completed {
				m.currentMenu().Cursor = 0
			}
			m.state = viewMenu
			return m, m.refreshStatus()
		}
	}

	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := m.currentMenu()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "left":
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		menu.MoveUp()
		return m, nil

	case "down", "j":
		menu.MoveDown()
		return m, nil

	case "enter", "right":
		return m.startAction(menu.Selected())
	}

	return m, nil
}

func (m *Model) startAction(action Action) (tea.Model, tea.Cmd) {
	switch action.ID {
	case ActionAdvancedMenu:
		// Entering a submenu leaves the parent cursor where it is.
		m.stack = append(m.stack, AdvancedMenu(m.cfg))
		return m, nil

	case ActionBack:
		m.stack = m.stack[:len(m.stack)-1]
		return m, nil
	}

	m.action = action
	m.promptIdx = 0
	m.inputs = nil

	if len(action.Prompts) > 0 {
		m.input.SetValue("")
		m.input.Focus()
		m.state = viewInput
		return m, textinput.Blink
	}
	return m.beginSteps()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		// Cancelled is distinct from empty-confirmed: the whole action is
		// abandoned and nothing is issued.
		return m.abortAction()

	case tea.KeyEnter:
		prompt := m.action.Prompts[m.promptIdx]
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			if prompt.Required {
				return m.abortAction()
			}
			value = prompt.Default
		}
		m.inputs = append(m.inputs, value)
		m.promptIdx++
		if m.promptIdx < len(m.action.Prompts) {
			m.input.SetValue("")
			return m, textinput.Blink
		}
		return m.beginSteps()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) abortAction() (tea.Model, tea.Cmd) {
	m.completed = false
	m.input.Blur()
	m.state = viewMenu
	return m, nil
}

func (m *Model) beginSteps() (tea.Model, tea.Cmd) {
	m.input.Blur()
	m.steps = m.buildSteps(m.action, m.inputs)
	if len(m.steps) == 0 {
		m.state = viewMenu
		return m, nil
	}

	m.stepIdx = 0
	m.lines = nil
	m.body = nil
	m.bodyTitle = ""
	m.completed = true
	m.state = viewRunning

	if pending := m.steps[0].pending; pending != "" {
		m.lines = append(m.lines, m.styles.Pending.Render(pending))
	}
	return m, tea.Batch(m.runStep(0), m.spinner.Tick)
}

func (m *Model) handleStepResult(msg stepResultMsg) (tea.Model, tea.Cmd) {
	if m.state != viewRunning || msg.idx != m.stepIdx {
		return m, nil
	}

	st := m.steps[msg.idx]
	if st.display {
		m.bodyTitle = st.title
		m.body = splitLines(msg.res.Output)
		if m.body == nil {
			m.body = []string{}
		}
		m.state = viewResult
		return m, nil
	}

	switch {
	case msg.res.Ok():
		m.lines = append(m.lines, m.styles.Success.Render(st.success))
	case st.benign != "" && msg.res.NothingToCommit():
		m.lines = append(m.lines, m.styles.Info.Render(st.benign))
	default:
		m.lines = append(m.lines, m.styles.Error.Render(st.failure))
		for _, line := range splitLines(msg.res.Output) {
			m.lines = append(m.lines, m.styles.Error.Render(line))
		}
	}

	next := msg.idx + 1
	if next < len(m.steps) {
		m.stepIdx = next
		if pending := m.steps[next].pending; pending != "" {
			m.lines = append(m.lines, m.styles.Pending.Render(pending))
		}
		return m, tea.Batch(m.runStep(next), m.spinner.Tick)
	}

	m.state = viewResult
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())

	switch m.state {
	case viewMenu:
		b.WriteString(m.menuView())
	case viewInput:
		b.WriteString(m.inputView())
	case viewRunning:
		b.WriteString(m.runningView())
	case viewResult:
		b.WriteString(m.resultView())
	}

	return b.String()
}

func (m *Model) headerView() string {
	title := " Repository: " + m.info.DisplayName() + " "
	if m.info != nil && m.info.Branch != "" {
		title = " Repository: " + m.info.DisplayName() + " [" + m.info.Branch + "] "
	}

	width := m.width
	if width < lipgloss.Width(title) {
		width = lipgloss.Width(title)
	}
	bar := lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	return m.styles.Header.Render(bar) + "\n" + m.styles.Dim.Render(strings.Repeat("─", width)) + "\n\n"
}

func (m *Model) menuView() string {
	menu := m.currentMenu()

	var b strings.Builder
	for i, action := range menu.Actions {
		if i == menu.Cursor {
			b.WriteString("  " + m.styles.Selected.Render(action.Label) + "\n")
		} else {
			b.WriteString("  " + m.styles.Option.Render(action.Label) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("File Status (git status --short):") + "\n")

	// The header, options and footer title are already on screen; whatever
	// rows remain get the status snippet.
	used := 4 + len(menu.Actions) + 2
	available := m.height - used
	for i, line := range splitLines(m.status) {
		if m.height > 0 && i >= available {
			break
		}
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}

func (m *Model) inputView() string {
	var b strings.Builder
	b.WriteString("  " + m.styles.Pending.Render(m.action.Label) + "\n\n")

	for i := 0; i < m.promptIdx; i++ {
		b.WriteString("  " + m.action.Prompts[i].Label + ": " + m.inputs[i] + "\n")
	}

	b.WriteString("  " + m.action.Prompts[m.promptIdx].Label + ":\n")
	b.WriteString("  " + m.input.View() + "\n\n")
	b.WriteString("  " + m.styles.Dim.Render("(Enter to confirm, Esc to cancel)") + "\n")
	return b.String()
}

func (m *Model) runningView() string {
	var b strings.Builder
	for i, line := range m.lines {
		if i == len(m.lines)-1 {
			b.WriteString("  " + m.spinner.View() + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m *Model) resultView() string {
	var b strings.Builder

	if m.body != nil {
		if m.bodyTitle != "" {
			b.WriteString("  " + m.styles.Pending.Render(m.bodyTitle) + "\n\n")
		}
		used := 6
		for i, line := range m.body {
			if m.height > 0 && i >= m.height-used {
				break
			}
			b.WriteString("  " + line + "\n")
		}
	} else {
		for _, line := range m.lines {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n  " + m.styles.Dim.Render("Press any key to continue...") + "\n")
	return b.String()
}

func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
