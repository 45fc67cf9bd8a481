// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/themes"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(themes.Default)
}

// =============================================================================
// ACTION CARD
// =============================================================================

func TestActionCardCursorWraps(t *testing.T) {
	card := NewActionCard(testTheme())

	card.FocusPrev()
	if got := card.Select(); got != ActionAskQuestion {
		t.Errorf("FocusPrev from start should wrap to last action, got %v", got)
	}
}

func TestActionCardSelectResolves(t *testing.T) {
	card := NewActionCard(testTheme())
	card.FocusNext()

	if got := card.Select(); got != ActionManualEntry {
		t.Errorf("Select = %v, want ActionManualEntry", got)
	}
	if !card.Resolved() {
		t.Error("card should be resolved after Select")
	}

	// Cursor movement is ignored once resolved.
	card.FocusNext()
	if card.Choice() != ActionManualEntry {
		t.Error("choice changed after resolution")
	}
}

func TestActionCardRenderShowsAllActions(t *testing.T) {
	out := NewActionCard(testTheme()).Render(80)

	for _, label := range []string{"Retrieve My Booking", "Enter Trip Manually", "Upload Booking PDF", "Ask a Question"} {
		if !strings.Contains(out, label) {
			t.Errorf("render missing action %q", label)
		}
	}
}

// =============================================================================
// TRIP CARD
// =============================================================================

func sampleTrip() api.TripRecord {
	return api.TripRecord{
		UserID:        "u1",
		Origin:        "Singapore",
		Destination:   "Thailand",
		DepartureDate: "2025-03-01",
		ReturnDate:    "2025-03-10",
		NumTravelers:  2,
		Ages:          []int{30, 28},
		TripType:      "round_trip",
		FlexiFlight:   true,
	}
}

func TestTripCardRenderShowsFields(t *testing.T) {
	out := NewTripCard(testTheme(), sampleTrip()).Render(80)

	for _, want := range []string{
		"Singapore", "Thailand", "2025-03-01", "2025-03-10",
		"2 travelers", "ages 30, 28", "Round trip", "Yes",
		"Looks Good", "Edit Details",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trip card missing %q", want)
		}
	}
}

func TestTripCardOneWayOmitsReturn(t *testing.T) {
	trip := sampleTrip()
	trip.ReturnDate = ""
	trip.TripType = "one_way"

	out := NewTripCard(testTheme(), trip).Render(80)

	if strings.Contains(out, "Return") {
		t.Error("one-way trip should not show a return row")
	}
	if !strings.Contains(out, "One way") {
		t.Error("trip type not rendered")
	}
}

func TestTripCardEditThenReopen(t *testing.T) {
	card := NewTripCard(testTheme(), sampleTrip())
	card.FocusNext()

	if got := card.Select(); got != TripEdit {
		t.Fatalf("Select = %v, want TripEdit", got)
	}

	card.Reopen()
	if card.Resolved() {
		t.Error("card should accept input again after Reopen")
	}
	if got := card.Select(); got != TripConfirm {
		t.Errorf("Reopen should reset cursor to confirm, got %v", got)
	}
}

// =============================================================================
// PLAN LIST CARD
// =============================================================================

func samplePlans() []api.Recommendation {
	return []api.Recommendation{
		{ID: "p1", PlanName: "Essential", Price: 45, Currency: "SGD", Pros: []string{"Cheapest option"}, Score: 0.9},
		{ID: "p2", PlanName: "Deluxe", Price: 88.5, Currency: "SGD", Cons: []string{"No adventure sports"}, Score: 0.8},
		{ID: "p3", PlanName: "Supreme", Price: 132, Currency: "SGD", Citations: []string{"Policy wording s.4"}, Score: 0.7},
	}
}

func TestPlanListCardFirstPlanIsBestMatch(t *testing.T) {
	out := NewPlanListCard(testTheme(), samplePlans()).Render(80)

	if !strings.Contains(out, "Best Match") {
		t.Fatal("first plan should carry the Best Match badge")
	}
	if strings.Count(out, "Best Match") != 1 {
		t.Error("exactly one plan should carry the badge")
	}
}

func TestPlanListCardEmptyListIsInert(t *testing.T) {
	card := NewPlanListCard(testTheme(), nil)

	card.FocusNext()
	card.FocusPrev()
	if got := card.Select(); got.ID != "" {
		t.Errorf("selecting an empty list returned %+v, want zero plan", got)
	}
	if card.Resolved() {
		t.Error("empty list must not resolve")
	}
	if out := card.Render(80); out != "" {
		t.Errorf("empty list rendered %q, want nothing", out)
	}
}

func TestPlanListCardRenderContent(t *testing.T) {
	out := NewPlanListCard(testTheme(), samplePlans()).Render(80)

	for _, want := range []string{
		"Essential", "Deluxe", "Supreme",
		"SGD 45.00", "SGD 88.50", "SGD 132.00",
		"+ Cheapest option", "- No adventure sports",
		"Sources: Policy wording s.4",
		// score bars: 0.9, 0.8, 0.7 of a 12-char bar
		"##########--", "#########---", "########----",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan list missing %q", want)
		}
	}
}

func TestPlanListCardSelectSecond(t *testing.T) {
	card := NewPlanListCard(testTheme(), samplePlans())
	card.FocusNext()

	got := card.Select()
	if got.ID != "p2" {
		t.Errorf("selected plan = %s, want p2", got.ID)
	}
	if !card.Resolved() {
		t.Error("card should be resolved")
	}
	if strings.Count(card.Render(80), "Selected") != 1 {
		t.Error("resolved render should mark exactly one plan Selected")
	}
}

func TestPlanListCardReopenAllowsNewChoice(t *testing.T) {
	card := NewPlanListCard(testTheme(), samplePlans())
	card.Select()
	card.Reopen()

	card.FocusNext()
	card.FocusNext()
	if got := card.Select(); got.ID != "p3" {
		t.Errorf("after Reopen selected %s, want p3", got.ID)
	}
}

func TestPlanListCardEmptyRendersNothing(t *testing.T) {
	if out := NewPlanListCard(testTheme(), nil).Render(80); out != "" {
		t.Errorf("empty plan list rendered %q", out)
	}
}

// =============================================================================
// PLAN SUMMARY CARD
// =============================================================================

func TestPlanSummaryCardChoices(t *testing.T) {
	plan := samplePlans()[1]
	card := NewPlanSummaryCard(testTheme(), plan)

	out := card.Render(80)
	for _, want := range []string{"Deluxe", "SGD 88.50", "Proceed to Payment", "Change Plan"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary card missing %q", want)
		}
	}

	card.FocusNext()
	if got := card.Select(); got != SummaryChangePlan {
		t.Errorf("Select = %v, want SummaryChangePlan", got)
	}

	card.Reopen()
	if got := card.Select(); got != SummaryProceed {
		t.Errorf("after Reopen Select = %v, want SummaryProceed", got)
	}
}

// =============================================================================
// PAYMENT CARD
// =============================================================================

func TestPaymentCardPayNowFlow(t *testing.T) {
	card := NewPaymentCard(testTheme(), samplePlans()[0])

	if got := card.Select(); got != PaymentMethodChosen {
		t.Fatalf("choosing a method = %v, want PaymentMethodChosen", got)
	}
	if card.Method() != PayNow {
		t.Errorf("method = %v, want PayNow", card.Method())
	}

	out := card.Render(80)
	if !strings.Contains(out, "I Have Paid") {
		t.Error("PayNow confirm step should offer I Have Paid")
	}
	if !strings.Contains(out, "PayNow") {
		t.Error("PayNow confirm step should show the QR placeholder")
	}

	if got := card.Select(); got != PaymentConfirmed {
		t.Fatalf("confirming = %v, want PaymentConfirmed", got)
	}
	if !card.Processing() {
		t.Error("card should be processing after confirmation")
	}

	card.Complete()
	if !card.Done() {
		t.Error("card should be done after Complete")
	}
	if !strings.Contains(card.Render(80), "Paid with PayNow") {
		t.Error("done render should name the method")
	}
}

func TestPaymentCardCreditCardFlow(t *testing.T) {
	card := NewPaymentCard(testTheme(), samplePlans()[1])
	card.FocusNext()

	if card.Select() != PaymentMethodChosen {
		t.Fatal("expected method chosen")
	}
	if card.Method() != CreditCard {
		t.Errorf("method = %v, want CreditCard", card.Method())
	}

	out := card.Render(80)
	if !strings.Contains(out, "Confirm Payment") {
		t.Error("card confirm step should offer Confirm Payment")
	}
	if !strings.Contains(out, "Sandbox payment") {
		t.Error("confirm step should carry the sandbox notice")
	}
	if !strings.Contains(out, "SGD 88.50") {
		t.Error("charge summary should show the amount")
	}
}

func TestPaymentCardCancelReturnsToMethodChooser(t *testing.T) {
	card := NewPaymentCard(testTheme(), samplePlans()[0])
	card.Select() // choose PayNow

	card.FocusNext() // move to Cancel
	if got := card.Select(); got != PaymentCancelled {
		t.Fatalf("cancel = %v, want PaymentCancelled", got)
	}

	out := card.Render(80)
	if !strings.Contains(out, "Choose a payment method") {
		t.Error("cancel should re-prompt the method chooser")
	}
}

func TestPaymentCardCancelIgnoredWhileProcessing(t *testing.T) {
	card := NewPaymentCard(testTheme(), samplePlans()[0])
	card.Select() // method
	card.Select() // confirm

	if got := card.Cancel(); got != PaymentNone {
		t.Errorf("cancel during processing = %v, want PaymentNone", got)
	}
	if !card.Processing() {
		t.Error("processing state should survive a cancel attempt")
	}
}

// =============================================================================
// RECEIPT CARD
// =============================================================================

func TestReceiptCardRender(t *testing.T) {
	plan := samplePlans()[1]
	out := NewReceiptCard(testTheme(), plan, PayNow, "pay_abc123").Render(80)

	for _, want := range []string{"Payment Receipt", "Deluxe", "SGD 88.50", "PayNow", "pay_abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

