package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"apassphrase/internal/phrase"
)

var (
	colorPrimary = lipgloss.Color("#FF6B6B")
	colorAccent  = lipgloss.Color("#ffe66d")
	colorMuted   = lipgloss.Color("#666666")
	colorBorder  = lipgloss.Color("#3d5a80")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	phraseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	fallbackStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

type passphraseMsg struct {
	value string
	err   error
}

type emojiphraseMsg struct {
	value phrase.Emojiphrase
	err   error
}

// model is the interactive display: one panel per phrase kind, refreshed on
// key presses.
type model struct {
	ctx context.Context
	src phraseSource

	passphrase     string
	passphraseErr  string
	emojiphrase    phrase.Emojiphrase
	emojiphraseErr string

	width int
}

func newModel(ctx context.Context, src phraseSource) model {
	return model{ctx: ctx, src: src}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.fetchPassphrase, m.fetchEmojiphrase)
}

func (m model) fetchPassphrase() tea.Msg {
	value, err := m.src.Passphrase(m.ctx)
	return passphraseMsg{value: value, err: err}
}

func (m model) fetchEmojiphrase() tea.Msg {
	value, err := m.src.Emojiphrase(m.ctx)
	return emojiphraseMsg{value: value, err: err}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "p":
			return m, m.fetchPassphrase
		case "e":
			return m, m.fetchEmojiphrase
		case " ", "enter":
			return m, tea.Batch(m.fetchPassphrase, m.fetchEmojiphrase)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case passphraseMsg:
		if msg.err != nil {
			m.passphrase, m.passphraseErr = "", fallbackMessage(msg.err)
		} else {
			m.passphrase, m.passphraseErr = msg.value, ""
		}
	case emojiphraseMsg:
		if msg.err != nil {
			m.emojiphrase, m.emojiphraseErr = phrase.Emojiphrase{}, fallbackMessage(msg.err)
		} else {
			m.emojiphrase, m.emojiphraseErr = msg.value, ""
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("apassphrase"))
	b.WriteString("\n")

	passphrase := phraseStyle.Render(m.fit(m.passphrase))
	if m.passphraseErr != "" {
		passphrase = fallbackStyle.Render(m.fit(m.passphraseErr))
	}
	b.WriteString(boxStyle.Render(labelStyle.Render("passphrase") + "\n" + passphrase))
	b.WriteString("\n")

	emojiphrase := m.fit(m.emojiphrase.Icons) + "\n" + phraseStyle.Render(m.fit(m.emojiphrase.Names))
	if m.emojiphraseErr != "" {
		emojiphrase = fallbackStyle.Render(m.fit(m.emojiphraseErr))
	}
	b.WriteString(boxStyle.Render(labelStyle.Render("emojiphrase") + "\n" + emojiphrase))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("p: passphrase • e: emojiphrase • space: both • q: quit"))
	b.WriteString("\n")
	return b.String()
}

// fit truncates s to the space left inside a panel on the current terminal.
func (m model) fit(s string) string {
	const frame = 4 // border and padding on both sides
	if m.width <= frame {
		return s
	}
	return runewidth.Truncate(s, m.width-frame, "…")
}

// fallbackMessage is what the display shows in place of a phrase that could
// not be produced.
func fallbackMessage(err error) string {
	var remoteErr *remoteError
	if errors.As(err, &remoteErr) {
		return "Could not connect to: " + remoteErr.Endpoint
	}
	return fmt.Sprintf("Could not generate phrase: %v", err)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(cmd.Context(), src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
