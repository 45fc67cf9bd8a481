// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/themes"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

func formTheme() *styles.Theme {
	return styles.NewTheme(themes.Default)
}

// fillForm writes raw values into the text fields without going through
// key routing.
func fillForm(f *TripForm, origin, dest, dep, ret, travelers, ages string) {
	f.inputs[fieldOrigin].SetValue(origin)
	f.inputs[fieldDestination].SetValue(dest)
	f.inputs[fieldDeparture].SetValue(dep)
	f.inputs[fieldReturn].SetValue(ret)
	f.inputs[fieldTravelers].SetValue(travelers)
	f.inputs[fieldAges].SetValue(ages)
}

func TestTripFormValidation(t *testing.T) {
	tests := []struct {
		name    string
		fill    func(f *TripForm)
		wantErr string
	}{
		{
			name: "valid round trip",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "2026-03-20", "2", "30, 28")
			},
		},
		{
			name: "valid one way without return",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Japan", "2026-03-10", "", "1", "30")
				f.roundTrip = false
			},
		},
		{
			name: "missing origin",
			fill: func(f *TripForm) {
				fillForm(f, "", "Thailand", "2026-03-10", "2026-03-20", "2", "30, 28")
			},
			wantErr: "Origin and destination",
		},
		{
			name: "garbled departure date",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "next tuesday", "2026-03-20", "2", "30, 28")
			},
			wantErr: "Departure date",
		},
		{
			name: "round trip needs a return date",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "", "2", "30, 28")
			},
			wantErr: "return date",
		},
		{
			name: "return before departure",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "2026-03-01", "2", "30, 28")
			},
			wantErr: "before departure",
		},
		{
			name: "zero travelers",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "2026-03-20", "0", "")
			},
			wantErr: "at least 1",
		},
		{
			name: "ages are not numbers",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "2026-03-20", "2", "thirty, ten")
			},
			wantErr: "numbers separated by commas",
		},
		{
			name: "age count does not match travelers",
			fill: func(f *TripForm) {
				fillForm(f, "Singapore", "Thailand", "2026-03-10", "2026-03-20", "3", "30, 28")
			},
			wantErr: "one age per traveler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTripForm(formTheme())
			tt.fill(f)

			ok := f.validate()
			if tt.wantErr == "" {
				if !ok {
					t.Fatalf("validate failed: %q", f.Err())
				}
				return
			}
			if ok {
				t.Fatal("validate passed, want failure")
			}
			if !strings.Contains(f.Err(), tt.wantErr) {
				t.Errorf("Err = %q, want it to mention %q", f.Err(), tt.wantErr)
			}
		})
	}
}

func TestTripFormDetailsOneWayClearsReturn(t *testing.T) {
	f := NewTripForm(formTheme())
	fillForm(f, "Singapore", "Japan", "2026-03-10", "2026-03-20", "1", "30")
	f.roundTrip = false

	details := f.Details()
	if details.TripType != "one_way" {
		t.Errorf("TripType = %q, want one_way", details.TripType)
	}
	if details.ReturnDate != "" {
		t.Errorf("ReturnDate = %q, want empty for one-way", details.ReturnDate)
	}
	if details.NumTravelers != 1 || len(details.Ages) != 1 {
		t.Errorf("travelers/ages = %d/%v, want 1/[30]", details.NumTravelers, details.Ages)
	}
}

func TestEditFormSeedsFromRecord(t *testing.T) {
	record := api.TripRecord{
		Origin:        "Singapore",
		Destination:   "Japan",
		DepartureDate: "2026-04-01",
		ReturnDate:    "2026-04-14",
		NumTravelers:  2,
		Ages:          []int{34, 31},
		TripType:      "round_trip",
		FlexiFlight:   true,
	}

	f := NewEditForm(formTheme(), record)
	if !f.Editing() {
		t.Fatal("edit form should report Editing")
	}
	if got := f.inputs[fieldDestination].Value(); got != "Japan" {
		t.Errorf("destination seed = %q, want Japan", got)
	}
	if got := f.inputs[fieldAges].Value(); got != "34, 31" {
		t.Errorf("ages seed = %q, want \"34, 31\"", got)
	}
	if !f.roundTrip || !f.flexi {
		t.Errorf("toggles = round:%v flexi:%v, want both true", f.roundTrip, f.flexi)
	}
}

func TestEditFormIsCopyOnWrite(t *testing.T) {
	record := api.TripRecord{
		UserID:        "user-7",
		NRIC:          "S1234567D",
		Origin:        "Singapore",
		Destination:   "Japan",
		DepartureDate: "2026-04-01",
		ReturnDate:    "2026-04-14",
		NumTravelers:  2,
		Ages:          []int{34, 31},
		TripType:      "round_trip",
		ClaimsHistory: []api.Claim{{ClaimNumber: "C-100", ClaimType: "medical", ClaimStatus: "paid"}},
	}

	f := NewEditForm(formTheme(), record)
	f.inputs[fieldDestination].SetValue("Thailand")
	f.inputs[fieldTravelers].SetValue("1")
	f.inputs[fieldAges].SetValue("34")
	f.roundTrip = false

	// Edits live in the buffer only until Commit.
	if record.Destination != "Japan" {
		t.Fatalf("editing mutated the source record: %q", record.Destination)
	}

	committed := f.Commit()
	if committed.Destination != "Thailand" || committed.TripType != "one_way" {
		t.Errorf("committed = %q/%q, want Thailand/one_way", committed.Destination, committed.TripType)
	}
	if committed.ReturnDate != "" {
		t.Errorf("committed ReturnDate = %q, want cleared", committed.ReturnDate)
	}

	// Identity and history fields the form never shows carry over.
	if committed.UserID != "user-7" || committed.NRIC != "S1234567D" {
		t.Errorf("identity fields dropped: %q/%q", committed.UserID, committed.NRIC)
	}
	if len(committed.ClaimsHistory) != 1 {
		t.Errorf("claims history dropped: %v", committed.ClaimsHistory)
	}
}

func TestTripFormKeysToggleAndSubmit(t *testing.T) {
	f := NewTripForm(formTheme())
	fillForm(f, "Singapore", "Thailand", "2026-03-10", "", "2", "30, 28")

	// Walk focus down to the trip-type toggle and flip it to one-way.
	for f.focus != fieldTripType {
		f.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	}
	f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if f.roundTrip {
		t.Fatal("enter on the trip-type toggle should flip it")
	}

	for f.focus != fieldSubmit {
		f.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	}
	action, _ := f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != FormSubmitted {
		t.Fatalf("submit = %v (err %q), want FormSubmitted", action, f.Err())
	}
}

func TestTripFormSubmitBlockedUntilValid(t *testing.T) {
	f := NewTripForm(formTheme())
	f.focus = fieldSubmit

	action, _ := f.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != FormNone {
		t.Fatalf("empty form submitted: %v", action)
	}
	if f.Err() == "" {
		t.Error("failed submit should leave a visible validation error")
	}

	// Esc cancels from anywhere, valid or not.
	action, _ = f.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if action != FormCancelled {
		t.Fatalf("esc = %v, want FormCancelled", action)
	}
}
