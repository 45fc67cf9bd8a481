// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the Haven conversation widget for the TUI.
package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/havenlabs/haven-tui/internal/api"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// requestTimeout bounds every backend call issued by the widget.
const requestTimeout = 60 * time.Second

// maxBookingPDFSize caps how large an uploaded booking document may be.
const maxBookingPDFSize = 5 * 1024 * 1024

// SubmitTripCmd sends a trip submission and reports the resolved record.
func SubmitTripCmd(client *api.Client, input api.TripInput, entry EntryPath) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		record, err := client.SubmitTripInput(ctx, input)
		if err != nil {
			return TripErrorMsg{Entry: entry, Err: err}
		}
		return TripResolvedMsg{Record: record, Entry: entry}
	}
}

// ReadBookingPDFCmd reads and encodes a booking document, then submits
// it. Read failures surface without a network round-trip and the flow
// does not advance.
func ReadBookingPDFCmd(client *api.Client, path string, entry EntryPath) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return TripErrorMsg{Entry: entry, Local: true, Err: fmt.Errorf("could not read %s: %w", filepath.Base(path), err)}
		}
		if len(data) > maxBookingPDFSize {
			return TripErrorMsg{Entry: entry, Local: true, Err: fmt.Errorf("%s is too large to upload", filepath.Base(path))}
		}

		encoded := base64.StdEncoding.EncodeToString(data)

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		record, err := client.SubmitTripInput(ctx, api.PDFInput(encoded))
		if err != nil {
			return TripErrorMsg{Entry: entry, Err: err}
		}
		return TripResolvedMsg{Record: record, Entry: entry}
	}
}

// FetchRecommendationsCmd requests ranked plans for a confirmed trip.
func FetchRecommendationsCmd(client *api.Client, record api.TripRecord) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.RecommendPlans(ctx, record)
		if err != nil {
			return RecommendationsErrorMsg{Err: err}
		}
		return RecommendationsMsg{Response: resp}
	}
}

// AskQuestionCmd forwards a free-form question with trip/plan context.
func AskQuestionCmd(client *api.Client, question, tripContext string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.Ask(ctx, question, tripContext)
		if err != nil {
			return AnswerErrorMsg{Err: err}
		}
		return AnswerMsg{Answer: resp.Answer}
	}
}

// TrackingStatusCmd probes whether the stored identity allows tracking.
func TrackingStatusCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		status, err := client.TrackingStatus(ctx, userID)
		if err != nil {
			return TrackingStatusMsg{Err: err}
		}
		return TrackingStatusMsg{Allowed: status.AllowsTracking}
	}
}

// FlightSummaryCmd looks up a tracked user's stored booking.
func FlightSummaryCmd(client *api.Client, nric string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		summary, err := client.FlightSummary(ctx, nric)
		if err != nil {
			return FlightSummaryMsg{Err: err}
		}
		return FlightSummaryMsg{Summary: summary}
	}
}

// RecentActivityCmd fetches the proactive greeting for tracked users.
func RecentActivityCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		activity, err := client.RecentActivity(ctx, userID)
		if err != nil {
			return ActivityMsg{Err: err}
		}
		return ActivityMsg{Message: activity.Message}
	}
}

// ProcessPaymentCmd runs the simulated processing hold, then reports a
// generated payment reference. No charge happens anywhere.
func ProcessPaymentCmd(hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return PaymentProcessedMsg{Reference: NewPaymentReference()}
	})
}

// NewPaymentReference generates a receipt reference.
func NewPaymentReference() string {
	return "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// QueueTickCmd schedules the next scheduler tick after the given delay.
func QueueTickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return QueueTickMsg{At: t}
	})
}
