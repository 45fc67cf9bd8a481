// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// Wire types for the Haven backend. Field names and JSON tags follow the
// backend's schema exactly; dates travel as ISO "YYYY-MM-DD" strings.

// =============================================================================
// TRIP DATA
// =============================================================================

// Claim is one entry from a traveler's claims history.
type Claim struct {
	ClaimNumber   string  `json:"claim_number"`
	ClaimType     string  `json:"claim_type"`
	ClaimStatus   string  `json:"claim_status"`
	Destination   string  `json:"destination,omitempty"`
	CauseOfLoss   string  `json:"cause_of_loss,omitempty"`
	GrossIncurred float64 `json:"gross_incurred,omitempty"`
	NetPaid       float64 `json:"net_paid"`
}

// TripRecord is the canonical trip profile returned by the backend after
// identity resolution. It drives theming, the trip details card, and the
// recommendation request.
type TripRecord struct {
	UserID        string  `json:"user_id"`
	NRIC          string  `json:"nric"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	NumTravelers  int     `json:"num_travelers"`
	Ages          []int   `json:"ages"`
	TripType      string  `json:"trip_type"`
	FlexiFlight   bool    `json:"flexi_flight"`
	ClaimsHistory []Claim `json:"claims_history,omitempty"`
}

// ManualDetails carries a manually entered trip for identity-free flows.
type ManualDetails struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	NumTravelers  int    `json:"num_travelers"`
	Ages          []int  `json:"ages"`
	TripType      string `json:"trip_type"`
	FlexiFlight   bool   `json:"flexi_flight"`
}

// Input type discriminators for TripInput.
const (
	InputTypeNRIC        = "nric"
	InputTypePDFUpload   = "pdf_upload"
	InputTypeManualEntry = "manual_entry"
)

// TripInput is the polymorphic identity submission. Exactly one of the
// payload fields is set, selected by InputType.
type TripInput struct {
	InputType     string         `json:"input_type"`
	NRICValue     string         `json:"nric_value,omitempty"`
	PDFBase64     string         `json:"pdf_base64,omitempty"`
	ManualDetails *ManualDetails `json:"manual_details,omitempty"`
}

// NRICInput builds a TripInput for a raw NRIC string.
func NRICInput(nric string) TripInput {
	return TripInput{InputType: InputTypeNRIC, NRICValue: nric}
}

// PDFInput builds a TripInput for a base64-encoded booking document.
func PDFInput(encoded string) TripInput {
	return TripInput{InputType: InputTypePDFUpload, PDFBase64: encoded}
}

// ManualInput builds a TripInput for manually entered trip details.
func ManualInput(details ManualDetails) TripInput {
	return TripInput{InputType: InputTypeManualEntry, ManualDetails: &details}
}

// FlightSummary is the booking snapshot returned by the flights endpoint.
// Origin and destination come back as full country names.
type FlightSummary struct {
	NRIC          string `json:"nric"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	NumTravelers  int    `json:"num_travelers"`
	TripType      string `json:"trip_type"`
	FlexiFlight   bool   `json:"flexi_flight"`
}

// =============================================================================
// RECOMMENDATIONS AND Q&A
// =============================================================================

// Recommendation is a single ranked insurance plan.
type Recommendation struct {
	ID          string   `json:"id"`
	PlanName    string   `json:"plan_name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Citations   []string `json:"citations"`
	Score       float64  `json:"score"`
}

// RecommendResponse is the recommendation endpoint's reply: a markdown
// narrative plus the structured plan list it narrates.
type RecommendResponse struct {
	Message         string           `json:"message"`
	Recommendations []Recommendation `json:"recommendations"`
}

// questionRequest is the freeform Q&A request body.
type questionRequest struct {
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// AnswerResponse is the freeform Q&A reply.
type AnswerResponse struct {
	Answer  string `json:"answer"`
	Success bool   `json:"success"`
}

// =============================================================================
// AUTH
// =============================================================================

// loginRequest is the credentials payload for the login endpoint.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the user object embedded in a successful auth response.
type AuthUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	NRIC           string `json:"nric"`
	AllowsTracking bool   `json:"allows_tracking"`
}

// AuthResponse is the login endpoint's reply. Success false carries a
// human-readable message rather than an HTTP error.
type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *AuthUser `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

// TrackingStatus reports whether the user consented to activity tracking.
type TrackingStatus struct {
	AllowsTracking bool `json:"allows_tracking"`
}

// Activity is the proactive greeting derived from recent travel activity.
type Activity struct {
	Message string `json:"message"`
}

// errorDetail is the backend's error envelope: {"detail": "..."}.
type errorDetail struct {
	Detail string `json:"detail"`
}
