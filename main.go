// Haven TUI - a terminal travel-insurance assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/havenlabs/haven-tui/internal/api"
	"github.com/havenlabs/haven-tui/internal/config"
	"github.com/havenlabs/haven-tui/internal/session"
	"github.com/havenlabs/haven-tui/internal/themes"
	"github.com/havenlabs/haven-tui/internal/ui/chat"
	"github.com/havenlabs/haven-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// SCREENS
// =============================================================================

// screen is which surface the shell is showing.
type screen int

const (
	screenLanding screen = iota
	screenLogin
	screenChat
)

// Login form focus targets.
const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// demoEmail/demoPassword back the one-click demo sign-in, standing in
// for the Singpass redirect the web portal uses.
const (
	demoEmail    = "marcus.tan@example.com"
	demoPassword = "demo1234"
)

// loginRequestTimeout bounds the auth round-trip.
const loginRequestTimeout = 15 * time.Second

// =============================================================================
// SHELL MESSAGES
// =============================================================================

// loginResultMsg delivers the outcome of an auth attempt. A rejected
// credential pair arrives as Resp.Success=false, not as Err.
type loginResultMsg struct {
	Resp *api.AuthResponse
	Err  error
}

// loginCmd runs the auth round-trip off the update loop.
func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loginRequestTimeout)
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		return loginResultMsg{Resp: resp, Err: err}
	}
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model: landing page, login screen, and the
// chat widget. It owns the program-level collaborators (config, API
// client, session store) and hands the widget a resolved identity.
type App struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	theme  *styles.Theme

	screen screen
	width  int
	height int

	// Login form
	loginInputs [loginFieldCount]textinput.Model
	loginFocus  int
	loginBusy   bool
	loginErr    string

	chat *chat.Model
}

// newApp builds the shell. A previously saved login skips the landing
// and login screens entirely; the widget re-validates it by probing the
// backend on open.
func newApp(cfg *config.Config, client *api.Client, store *session.Store) *App {
	app := &App{
		cfg:    cfg,
		client: client,
		store:  store,
		theme:  styles.NewTheme(themes.Default),
		width:  80,
		height: 24,
	}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 36
	email.Prompt = ""
	app.loginInputs[loginFieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 36
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	app.loginInputs[loginFieldPassword] = password

	if identity, err := store.Load(); err == nil {
		client.SetToken(identity.Token)
		app.chat = chat.New(client, cfg, chat.WithIdentity(identity))
		app.screen = screenChat
	}
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.screen == screenChat {
		return a.chat.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		if a.chat != nil {
			a.chat.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case loginResultMsg:
		return a, a.handleLoginResult(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	switch a.screen {
	case screenLanding:
		return a, a.updateLanding(msg)
	case screenLogin:
		return a, a.updateLogin(msg)
	default:
		return a, a.chat.Update(msg)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.screen {
	case screenLanding:
		return a.viewLanding()
	case screenLogin:
		return a.viewLogin()
	default:
		return a.chat.View()
	}
}

// =============================================================================
// LANDING
// =============================================================================

func (a *App) updateLanding(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "q", "esc":
		return tea.Quit

	case "enter", "l":
		a.screen = screenLogin
		a.loginErr = ""
		a.loginFocus = loginFieldEmail
		a.loginInputs[loginFieldPassword].Blur()
		return a.loginInputs[loginFieldEmail].Focus()

	case "g":
		// Guest mode: no identity, the widget opens with the chooser.
		return a.openChat(session.Identity{})
	}
	return nil
}

func (a *App) viewLanding() string {
	lines := []string{
		a.theme.WelcomeTitle.Render("Haven"),
		a.theme.WelcomeInfo.Render("Travel insurance, one conversation away"),
		"",
		a.theme.ShortcutKey.Render("enter") + a.theme.ShortcutDesc.Render("  sign in"),
		a.theme.ShortcutKey.Render("g") + a.theme.ShortcutDesc.Render("      continue as guest"),
		a.theme.ShortcutKey.Render("q") + a.theme.ShortcutDesc.Render("      quit"),
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}

// =============================================================================
// LOGIN
// =============================================================================

func (a *App) updateLogin(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if a.loginBusy {
		return nil
	}

	switch key.String() {
	case "esc":
		a.screen = screenLanding
		return nil

	case "tab", "down", "shift+tab", "up":
		a.loginInputs[a.loginFocus].Blur()
		if key.String() == "tab" || key.String() == "down" {
			a.loginFocus = (a.loginFocus + 1) % loginFieldCount
		} else {
			a.loginFocus = (a.loginFocus - 1 + loginFieldCount) % loginFieldCount
		}
		return a.loginInputs[a.loginFocus].Focus()

	case "enter":
		if a.loginFocus == loginFieldEmail {
			a.loginInputs[loginFieldEmail].Blur()
			a.loginFocus = loginFieldPassword
			return a.loginInputs[loginFieldPassword].Focus()
		}
		return a.submitLogin(
			strings.TrimSpace(a.loginInputs[loginFieldEmail].Value()),
			a.loginInputs[loginFieldPassword].Value(),
		)

	case "ctrl+d":
		// One-click demo sign-in, standing in for the Singpass flow.
		return a.submitLogin(demoEmail, demoPassword)
	}

	var cmd tea.Cmd
	a.loginInputs[a.loginFocus], cmd = a.loginInputs[a.loginFocus].Update(key)
	return cmd
}

func (a *App) submitLogin(email, password string) tea.Cmd {
	if email == "" || password == "" {
		a.loginErr = "Email and password are both required."
		return nil
	}

	a.loginBusy = true
	a.loginErr = ""
	return loginCmd(a.client, email, password)
}

func (a *App) handleLoginResult(msg loginResultMsg) tea.Cmd {
	a.loginBusy = false

	if msg.Err != nil {
		a.loginErr = "Could not reach the Haven service. Is the backend running?"
		return nil
	}
	if !msg.Resp.Success || msg.Resp.User == nil {
		a.loginErr = msg.Resp.Message
		if a.loginErr == "" {
			a.loginErr = "Invalid email or password."
		}
		return nil
	}

	user := msg.Resp.User
	identity := session.Identity{
		UserID:         user.ID,
		Name:           user.Name,
		Email:          user.Email,
		NRIC:           user.NRIC,
		AllowsTracking: user.AllowsTracking,
		Token:          msg.Resp.Token,
	}
	if err := a.store.Save(identity); err != nil {
		// A failed save only costs the next launch a fresh login.
		fmt.Fprintf(os.Stderr, "warning: could not save session: %v\n", err)
	}
	return a.openChat(identity)
}

func (a *App) viewLogin() string {
	rows := []string{
		a.theme.CardTitle.Render("Sign in to Haven"),
		"",
	}

	labels := []string{"Email", "Password"}
	for i, label := range labels {
		style := a.theme.FormField
		if a.loginFocus == i {
			style = a.theme.FormFocused
		}
		rows = append(rows, a.theme.FormLabel.Render(label)+style.Render(a.loginInputs[i].View()))
	}

	if a.loginBusy {
		rows = append(rows, "", a.theme.TypingText.Render("Signing in..."))
	}
	if a.loginErr != "" {
		rows = append(rows, "", a.theme.FormError.Render(a.loginErr))
	}
	rows = append(rows, "",
		a.theme.ShortcutDesc.Render("enter sign in   ctrl+d demo account   esc back"))

	card := a.theme.Card.Width(52).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// =============================================================================
// CHAT HANDOFF
// =============================================================================

// openChat builds the widget around the given identity and switches to
// it. The widget's Init kicks off the session probe for logged-in users.
func (a *App) openChat(identity session.Identity) tea.Cmd {
	a.chat = chat.New(a.client, a.cfg, chat.WithIdentity(identity))
	a.chat.SetSize(a.width, a.height)
	a.screen = screenChat
	return a.chat.Init()
}

// =============================================================================
// ENTRY POINT
// =============================================================================

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("haven-tui %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			fmt.Println("haven-tui - terminal travel-insurance assistant")
			fmt.Println()
			fmt.Println("Usage: haven-tui [--version]")
			fmt.Println()
			fmt.Println("Configuration lives in ~/.haven/config.toml; HAVEN_* environment")
			fmt.Println("variables override it.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (using defaults)\n", err)
		cfg = config.Default()
	}

	client := api.NewClient(cfg.API.BaseURL)
	if cfg.API.TimeoutSecs > 0 {
		client = client.WithTimeout(time.Duration(cfg.API.TimeoutSecs) * time.Second)
	}

	store, err := session.NewStore(cfg.Session.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(newApp(cfg, client, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
