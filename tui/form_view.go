// ABOUTME: Property intake form view and the async submission flow
// ABOUTME: Runs the submit as a tea.Cmd and guards against stale responses
package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickflip/quickflip/db"
	"github.com/quickflip/quickflip/form"
	"github.com/quickflip/quickflip/models"
)

// submitResultMsg is sent when a submission completes. generation ties the
// response to the request that produced it.
type submitResultMsg struct {
	generation int
	deal       *models.Deal
	err        error
}

var formFields = []form.Field{
	form.FieldOwnerName,
	form.FieldOwnerEmail,
	form.FieldAddress,
	form.FieldCity,
	form.FieldState,
	form.FieldZipCode,
	form.FieldPropertyType,
	form.FieldBedrooms,
	form.FieldBathrooms,
	form.FieldSqft,
	form.FieldAskingPrice,
	form.FieldARV,
	form.FieldRepairCost,
	form.FieldNotes,
}

var formPlaceholders = []string{
	"Owner name",
	"Owner email",
	"Address",
	"City",
	"State",
	"ZIP",
	"Property type (single_family, multi_family, condo, townhome, land)",
	"Beds",
	"Baths",
	"Sqft",
	"Asking price",
	"ARV",
	"Repair cost",
	"Notes",
}

func (m *Model) initFormInputs() {
	inputs := make([]textinput.Model, len(formFields))
	for i := range formFields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = formPlaceholders[i]
		inputs[i].CharLimit = 200
	}
	inputs[6].SetValue(models.PropertySingleFamily)

	m.inputs = inputs
	m.focusIndex = 0
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) renderFormView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SUBMIT A PROPERTY"))
	s.WriteString("\n\n")

	for i, input := range m.inputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")

	if m.state == stateSubmitting {
		s.WriteString(m.spinner.View())
		s.WriteString(loadingStyle.Render("Analyzing your deal…"))
		s.WriteString("\n")
	}
	if m.formErr != "" {
		s.WriteString(errorStyle.Render(m.formErr))
		s.WriteString("\n")
	}
	if m.errMsg != "" {
		s.WriteString(errorStyle.Render(m.errMsg))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("Tab: Next field • Enter: Submit • Esc: Back"))

	return s.String()
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Abandon the form. A submission still in flight is superseded;
		// bumping the generation makes its eventual response a no-op.
		if m.state == stateSubmitting {
			m.generation++
			m.state = stateIdle
			m.pending = nil
		}
		m.errMsg = ""
		m.viewMode = ViewHero
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.inputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.inputs) - 1) % len(m.inputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		if m.focusIndex < len(m.inputs)-1 {
			m.focusIndex++
			m.updateFormFocus()
			return m, nil
		}
		return m.startSubmit()
	case "ctrl+s":
		return m.startSubmit()
	}

	// Update current input
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// startSubmit validates the form and kicks off the async submission. At
// most one submission is in flight at a time; further submits are ignored
// until the current one resolves.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.state == stateSubmitting {
		return m, nil
	}

	payload, err := m.buildPayload()
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	m.formErr = ""
	m.errMsg = ""
	m.state = stateSubmitting
	m.pending = payload
	m.generation++

	return m, tea.Batch(m.spinner.Tick, m.submitProperty(m.generation, payload))
}

func (m Model) buildPayload() (*models.PropertyInput, error) {
	f := form.New()
	for i, field := range formFields {
		f = f.Update(field, m.inputs[i].Value())
	}
	return f.ToPayload()
}

// submitProperty performs the request off the update loop and reports back
// with a submitResultMsg.
func (m Model) submitProperty(generation int, payload *models.PropertyInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		deal, err := m.client.SubmitProperty(ctx, payload)
		return submitResultMsg{generation: generation, deal: deal, err: err}
	}
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation {
		// Response from a superseded submission; the displayed state has
		// moved on, so drop it.
		return m, nil
	}

	if msg.err != nil {
		m.state = stateFailed
		m.pending = nil
		m.errMsg = msg.err.Error()
		return m, nil
	}

	m.state = stateSucceeded
	m.deal = msg.deal
	m.stage = models.InitialStage(msg.deal)

	if m.db != nil && m.pending != nil {
		if err := db.RecordSubmission(m.db, &models.Submission{
			DealID:      msg.deal.DealID,
			Rank:        msg.deal.Rank,
			Stage:       m.stage,
			Address:     m.pending.Address,
			City:        m.pending.City,
			State:       m.pending.State,
			AskingPrice: m.pending.AskingPrice,
		}); err != nil {
			log.Printf("failed to record submission: %v", err)
		}
	}

	m.pending = nil
	m.viewMode = ViewResult
	return m, nil
}

// resetForm clears the form for a fresh submission.
func (m *Model) resetForm() {
	m.initFormInputs()
	m.formErr = ""
	m.errMsg = ""
	m.state = stateIdle
	m.deal = nil
}
