// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the Haven TUI.
//
// Two kinds of component live here:
//
//   - Chrome: header, input area, status bar, spinner, error banner. These
//     are owned by the chat model and rendered around the transcript.
//
//   - Cards: the interactive fragments attached to transcript messages
//     (action chooser, trip details, plan list, plan summary, payment,
//     receipt). Cards implement model.Fragment and keep only local
//     presentation state (cursor position, resolved choice); all flow
//     decisions stay in the conversation controller.
//
// Cards are pointer types: the transcript holds the same pointer the
// controller mutates, so cursor movement and resolution show up on the
// next render without touching message history.
package components
