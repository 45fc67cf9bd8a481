// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// =============================================================================
// TRIP FORM
// =============================================================================

// Form field indices. Text fields come first, then the two toggles, then
// the action buttons.
const (
	fieldOrigin = iota
	fieldDestination
	fieldDeparture
	fieldReturn
	fieldTravelers
	fieldAges
	fieldTripType
	fieldFlexi
	fieldSubmit
	fieldCancel
	fieldCount
)

// dateLayout is the wire format for trip dates.
const dateLayout = "2006-01-02"

// FormAction is what a key press resolved to.
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmitted
	FormCancelled
)

// TripForm collects trip details, both for fresh manual entry and for
// editing a resolved trip. In edit mode the form is a copy-on-write
// buffer: it is seeded from a snapshot of the record and nothing touches
// controller state until Submit validates, at which point the caller
// replaces its record wholesale. Cancel discards the buffer.
type TripForm struct {
	inputs    []textinput.Model
	roundTrip bool
	flexi     bool
	focus     int
	fieldErr  string

	editing  bool
	original api.TripRecord

	theme *styles.Theme
}

// NewTripForm creates a blank form for manual entry.
func NewTripForm(theme *styles.Theme) *TripForm {
	f := &TripForm{
		inputs:    make([]textinput.Model, fieldAges+1),
		roundTrip: true,
		theme:     theme,
	}

	placeholders := []string{
		"Singapore",
		"Japan",
		"YYYY-MM-DD",
		"YYYY-MM-DD",
		"2",
		"30, 28",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 30
		ti.Prompt = ""
		ti.TextStyle = theme.FormField
		ti.PlaceholderStyle = theme.InputPlaceholder
		f.inputs[i] = ti
	}

	f.inputs[fieldOrigin].Focus()
	return f
}

// NewEditForm creates a form seeded from an existing trip record. The
// record itself is untouched until Commit.
func NewEditForm(theme *styles.Theme, record api.TripRecord) *TripForm {
	f := NewTripForm(theme)
	f.editing = true
	f.original = record

	f.inputs[fieldOrigin].SetValue(record.Origin)
	f.inputs[fieldDestination].SetValue(record.Destination)
	f.inputs[fieldDeparture].SetValue(record.DepartureDate)
	f.inputs[fieldReturn].SetValue(record.ReturnDate)
	f.inputs[fieldTravelers].SetValue(strconv.Itoa(record.NumTravelers))

	ages := make([]string, len(record.Ages))
	for i, a := range record.Ages {
		ages[i] = strconv.Itoa(a)
	}
	f.inputs[fieldAges].SetValue(strings.Join(ages, ", "))

	f.roundTrip = record.TripType != "one_way"
	f.flexi = record.FlexiFlight
	return f
}

// Editing reports whether the form edits an existing record.
func (f *TripForm) Editing() bool {
	return f.editing
}

// Err returns the current validation error, empty when none.
func (f *TripForm) Err() string {
	return f.fieldErr
}

// =============================================================================
// FOCUS AND KEYS
// =============================================================================

// FocusNext advances focus, wrapping past the cancel button.
func (f *TripForm) FocusNext() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// FocusPrev moves focus back, wrapping.
func (f *TripForm) FocusPrev() tea.Cmd {
	return f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
}

func (f *TripForm) setFocus(target int) tea.Cmd {
	if f.focus <= fieldAges {
		f.inputs[f.focus].Blur()
	}
	f.focus = target
	if f.focus <= fieldAges {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

// HandleKey routes a key press and reports whether the form resolved.
func (f *TripForm) HandleKey(msg tea.KeyMsg) (FormAction, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return FormNone, f.FocusNext()

	case "shift+tab", "up":
		return FormNone, f.FocusPrev()

	case "esc":
		return FormCancelled, nil

	case "enter":
		switch f.focus {
		case fieldSubmit:
			if f.validate() {
				return FormSubmitted, nil
			}
			return FormNone, nil
		case fieldCancel:
			return FormCancelled, nil
		case fieldTripType:
			f.roundTrip = !f.roundTrip
			return FormNone, nil
		case fieldFlexi:
			f.flexi = !f.flexi
			return FormNone, nil
		default:
			return FormNone, f.FocusNext()
		}

	case " ":
		switch f.focus {
		case fieldTripType:
			f.roundTrip = !f.roundTrip
			return FormNone, nil
		case fieldFlexi:
			f.flexi = !f.flexi
			return FormNone, nil
		}
	}

	if f.focus <= fieldAges {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return FormNone, cmd
	}
	return FormNone, nil
}

// =============================================================================
// VALIDATION AND RESULTS
// =============================================================================

// validate checks the buffer and records the first problem found.
func (f *TripForm) validate() bool {
	f.fieldErr = ""

	origin := strings.TrimSpace(f.inputs[fieldOrigin].Value())
	destination := strings.TrimSpace(f.inputs[fieldDestination].Value())
	if origin == "" || destination == "" {
		f.fieldErr = "Origin and destination are required."
		return false
	}

	departure := strings.TrimSpace(f.inputs[fieldDeparture].Value())
	depDate, err := time.Parse(dateLayout, departure)
	if err != nil {
		f.fieldErr = "Departure date must look like 2025-03-01."
		return false
	}

	returnStr := strings.TrimSpace(f.inputs[fieldReturn].Value())
	if f.roundTrip {
		retDate, err := time.Parse(dateLayout, returnStr)
		if err != nil {
			f.fieldErr = "Round trips need a return date like 2025-03-10."
			return false
		}
		if retDate.Before(depDate) {
			f.fieldErr = "Return date is before departure."
			return false
		}
	}

	travelers, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldTravelers].Value()))
	if err != nil || travelers < 1 {
		f.fieldErr = "Travelers must be a number of at least 1."
		return false
	}

	ages, err := parseAges(f.inputs[fieldAges].Value())
	if err != nil {
		f.fieldErr = "Ages must be numbers separated by commas."
		return false
	}
	if len(ages) != travelers {
		f.fieldErr = "Give one age per traveler."
		return false
	}

	return true
}

// Details returns the validated buffer as a manual-entry payload. Callers
// must only use it after a FormSubmitted result.
func (f *TripForm) Details() api.ManualDetails {
	travelers, _ := strconv.Atoi(strings.TrimSpace(f.inputs[fieldTravelers].Value()))
	ages, _ := parseAges(f.inputs[fieldAges].Value())

	tripType := "round_trip"
	returnDate := strings.TrimSpace(f.inputs[fieldReturn].Value())
	if !f.roundTrip {
		tripType = "one_way"
		returnDate = ""
	}

	return api.ManualDetails{
		Origin:        strings.TrimSpace(f.inputs[fieldOrigin].Value()),
		Destination:   strings.TrimSpace(f.inputs[fieldDestination].Value()),
		DepartureDate: strings.TrimSpace(f.inputs[fieldDeparture].Value()),
		ReturnDate:    returnDate,
		NumTravelers:  travelers,
		Ages:          ages,
		TripType:      tripType,
		FlexiFlight:   f.flexi,
	}
}

// Commit applies the buffer to a copy of the original record and returns
// it. The original is replaced wholesale by the caller; identity fields
// carry over unchanged.
func (f *TripForm) Commit() api.TripRecord {
	details := f.Details()

	record := f.original
	record.Origin = details.Origin
	record.Destination = details.Destination
	record.DepartureDate = details.DepartureDate
	record.ReturnDate = details.ReturnDate
	record.NumTravelers = details.NumTravelers
	record.Ages = details.Ages
	record.TripType = details.TripType
	record.FlexiFlight = details.FlexiFlight
	return record
}

// parseAges parses "30, 28" into ints.
func parseAges(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ages := make([]int, 0, len(parts))
	for _, part := range parts {
		age, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ages = append(ages, age)
	}
	return ages, nil
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the form.
func (f *TripForm) View(width int) string {
	labels := []string{"From", "To", "Departure", "Return", "Travelers", "Ages"}

	title := "Enter Your Trip Details"
	if f.editing {
		title = "Edit Your Trip Details"
	}

	rows := []string{f.theme.CardTitle.Render(title), ""}

	for i, label := range labels {
		style := f.theme.FormField
		if f.focus == i {
			style = f.theme.FormFocused
		}
		rows = append(rows, f.theme.FormLabel.Render(label)+style.Render(f.inputs[i].View()))
	}

	rows = append(rows,
		f.theme.FormLabel.Render("Trip type")+f.renderToggle(fieldTripType, f.roundTrip, "Round trip", "One way"),
		f.theme.FormLabel.Render("Flexi flight")+f.renderToggle(fieldFlexi, f.flexi, "Yes", "No"),
	)

	if f.fieldErr != "" {
		rows = append(rows, "", f.theme.FormError.Render(f.fieldErr))
	}

	submit := f.theme.CardButton.Render("Submit")
	if f.focus == fieldSubmit {
		submit = f.theme.CardButtonActive.Render("Submit")
	}
	cancel := f.theme.CardButton.Render("Cancel")
	if f.focus == fieldCancel {
		cancel = f.theme.CardButtonActive.Render("Cancel")
	}
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Center, submit, cancel))

	inner := width - 6
	if inner < 30 {
		inner = 30
	}
	return f.theme.Card.Width(inner).Render(strings.Join(rows, "\n"))
}

// renderToggle draws an on/off choice, marking the active value.
func (f *TripForm) renderToggle(field int, on bool, onLabel, offLabel string) string {
	style := f.theme.FormField
	if f.focus == field {
		style = f.theme.FormFocused
	}

	value := offLabel
	if on {
		value = onLabel
	}
	return style.Render("[ " + value + " ]")
}
