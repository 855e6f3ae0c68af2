package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/battleclient"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/logging"
	"github.com/NathanielCarballo/RogueMon/internal/storage"
)

type screen int

const (
	screenWelcome screen = iota
	screenMenu
	screenStarters
	screenBattle
	screenRoster
)

type startersLoadedMsg struct {
	starters []battle.Starter
	err      error
}

// Model is the root TUI model: thin view glue around the battle screen.
type Model struct {
	client *battleclient.Client
	stores storage.Stores
	roster *storage.Roster

	textSpeed time.Duration
	assetsDir string

	screen    screen
	nameInput textinput.Model

	starters    []battle.Starter
	startersErr error
	loading     bool
	cursor      int

	menuCursor int
	battle     *battleModel

	playerName string
	quitting   bool
}

func NewModel(client *battleclient.Client, stores storage.Stores, roster *storage.Roster, textSpeed time.Duration, assetsDir string) Model {
	ni := textinput.New()
	ni.Placeholder = "your name"
	ni.CharLimit = 24
	ni.Focus()

	m := Model{
		client:    client,
		stores:    stores,
		roster:    roster,
		textSpeed: textSpeed,
		assetsDir: assetsDir,
		nameInput: ni,
	}
	if name, ok, err := stores.Persistent.Get(constants.StoreKeyPlayerName); err == nil && ok {
		m.nameInput.SetValue(name)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) loadStartersCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		starters, err := client.ListStarters(ctx)
		return startersLoadedMsg{starters: starters, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startersLoadedMsg:
		m.loading = false
		m.starters = msg.starters
		m.startersErr = msg.err
		if msg.err != nil {
			logging.Error("failed to load starters", msg.err, nil)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenWelcome:
			return m.updateWelcome(msg)
		case screenMenu:
			return m.updateMenu(msg)
		case screenStarters:
			return m.updateStarters(msg)
		case screenRoster:
			return m.updateRoster(msg)
		case screenBattle:
			return m.updateBattle(msg)
		}

	default:
		if m.screen == screenBattle && m.battle != nil {
			cmd, leave := m.battle.Update(msg)
			if leave {
				m.leaveBattle()
			}
			return m, cmd
		}
		if m.screen == screenWelcome {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.playerName = name
		if err := m.stores.Persistent.Set(constants.StoreKeyPlayerName, name); err != nil {
			logging.Error("failed to persist player name", err, nil)
		}
		m.screen = screenMenu
		return m, nil
	case "esc":
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

var menuItems = []string{"Battle!", "Roster", "Quit"}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case "enter":
		switch m.menuCursor {
		case 0:
			m.screen = screenStarters
			m.cursor = 0
			m.loading = true
			m.startersErr = nil
			return m, m.loadStartersCmd()
		case 1:
			m.screen = screenRoster
		case 2:
			m.quitting = true
			return m, tea.Quit
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateStarters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenMenu
	case "r":
		if m.startersErr != nil && !m.loading {
			m.loading = true
			m.startersErr = nil
			return m, m.loadStartersCmd()
		}
	case "left", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "down", "j":
		if m.cursor < len(m.starters)-1 {
			m.cursor++
		}
	case "enter":
		if m.loading || m.cursor >= len(m.starters) {
			return m, nil
		}
		starter := m.starters[m.cursor]
		if err := m.stores.Session.Set(constants.StoreKeyStarter, starter.Key); err != nil {
			logging.Error("failed to store starter key", err, logging.Fields{constants.LogFieldKey: starter.Key})
		}
		m.battle = newBattleModel(m.client, m.roster, starter.Key, m.textSpeed, m.assetsDir)
		m.screen = screenBattle
		return m, m.battle.start()
	}
	return m, nil
}

func (m Model) updateRoster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.screen = screenMenu
	}
	return m, nil
}

func (m Model) updateBattle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.battle == nil {
		m.screen = screenMenu
		return m, nil
	}
	cmd, leave := m.battle.Update(msg)
	if leave {
		m.leaveBattle()
	}
	return m, cmd
}

// leaveBattle tears the battle screen down; a pending start response is
// discarded by the generation stamp rather than mutating dead state.
func (m *Model) leaveBattle() {
	if m.battle != nil {
		m.battle.teardown()
		m.battle = nil
	}
	m.screen = screenMenu
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenMenu:
		return m.viewMenu()
	case screenStarters:
		return m.viewStarters()
	case screenRoster:
		return m.viewRoster()
	case screenBattle:
		if m.battle != nil {
			return m.battle.View()
		}
	}
	return ""
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("RogueMon"))
	b.WriteString("\n\nWhat's your name?\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter continue · esc quit"))
	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("RogueMon"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("trainer %s", m.playerName)))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		if i == m.menuCursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString(normalStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter select"))
	return b.String()
}

func (m Model) viewStarters() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose your starter"))
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("loading starters…"))
	case m.startersErr != nil:
		b.WriteString("Could not load starters.\n\n")
		b.WriteString(helpStyle.Render("r retry · esc menu"))
	case len(m.starters) == 0:
		b.WriteString(dimStyle.Render("no starters available"))
	default:
		for i, s := range m.starters {
			label := fmt.Sprintf("%s  #%d", s.Name, s.PokedexID)
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + label))
			} else {
				b.WriteString(normalStyle.Render("  " + label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ move · enter battle · esc menu"))
	}
	return b.String()
}

func (m Model) viewRoster() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your roster"))
	b.WriteString("\n\n")
	mons, err := m.roster.List()
	if err != nil {
		logging.Error("failed to load roster", err, nil)
	}
	if len(mons) == 0 {
		b.WriteString(dimStyle.Render("nothing caught yet — win a battle and try your luck"))
	} else {
		for _, mon := range mons {
			b.WriteString(fmt.Sprintf("  %s  #%d  %d/%d HP\n", mon.Name, mon.PokedexID, mon.CurrentHP, mon.MaxHP))
		}
	}
	if archived, err := m.roster.Archive(); err == nil && len(archived) > len(mons) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d caught all-time", len(archived))))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc back"))
	return b.String()
}
