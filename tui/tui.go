// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Drives the hero/form/result/history views and the submission lifecycle
package tui

import (
	"database/sql"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quickflip/quickflip/api"
	"github.com/quickflip/quickflip/models"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewHero ViewMode = iota
	ViewForm
	ViewResult
	ViewHistory
)

// submitState is the submission request lifecycle. It returns to stateIdle
// only when the user explicitly starts over.
type submitState int

const (
	stateIdle submitState = iota
	stateSubmitting
	stateSucceeded
	stateFailed
)

// Model is the main bubbletea model
type Model struct {
	client *api.Client
	db     *sql.DB

	viewMode ViewMode

	// Form view state
	inputs     []textinput.Model
	focusIndex int
	formErr    string

	// Submission state. generation tags each request so a response from an
	// abandoned submission is discarded instead of applied.
	state      submitState
	generation int
	pending    *models.PropertyInput
	errMsg     string
	spinner    spinner.Model

	// Result view state. The deal is replaced wholesale on each success.
	deal  *models.Deal
	stage models.PipelineStage

	// UI state
	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(client *api.Client, database *sql.DB) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	m := Model{
		client:   client,
		db:       database,
		viewMode: ViewHero,
		spinner:  sp,
		width:    80,
		height:   24,
	}
	m.initFormInputs()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.state != stateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewHero:
		return m.renderHeroView()
	case ViewForm:
		return m.renderFormView()
	case ViewResult:
		return m.renderResultView()
	case ViewHistory:
		return m.renderHistoryView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewHero:
		return m.handleHeroKeys(msg)
	case ViewForm:
		return m.handleFormKeys(msg)
	case ViewResult:
		return m.handleResultKeys(msg)
	case ViewHistory:
		return m.handleHistoryKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)
