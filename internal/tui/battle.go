package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NathanielCarballo/RogueMon/internal/battle"
	"github.com/NathanielCarballo/RogueMon/internal/battleclient"
	"github.com/NathanielCarballo/RogueMon/internal/constants"
	"github.com/NathanielCarballo/RogueMon/internal/session"
	"github.com/NathanielCarballo/RogueMon/internal/sprites"
)

type revealTickMsg struct {
	gen int
	seq int
}

type startResultMsg struct {
	gen  int
	resp *battle.StateResponse
	err  error
}

type turnResultMsg struct {
	gen  int
	resp *battle.StateResponse
	err  error
}

type captureResultMsg struct {
	gen  int
	resp *battle.CaptureResponse
	err  error
}

// battleModel is the battle screen. The controller owns all session
// state; this model owns presentation (typewriter, layout) and runs
// network calls as commands whose results flow back through Update.
// The generation counter stamps every command so responses arriving
// after the screen was torn down are discarded without touching state.
type battleModel struct {
	ctrl   *session.Controller
	client *battleclient.Client
	tw     Typewriter

	starterKey  string
	textSpeed   time.Duration
	assetsDir   string
	gen         int
	showHistory bool
}

func newBattleModel(client *battleclient.Client, roster session.RosterStore, starterKey string, textSpeed time.Duration, assetsDir string) *battleModel {
	return &battleModel{
		ctrl:       session.NewController(roster),
		client:     client,
		starterKey: starterKey,
		textSpeed:  textSpeed,
		assetsDir:  assetsDir,
	}
}

// start kicks off the initial battle-start request.
func (m *battleModel) start() tea.Cmd {
	if !m.ctrl.BeginStart() {
		return nil
	}
	return m.startCmd()
}

// teardown invalidates any in-flight commands when leaving the screen.
func (m *battleModel) teardown() {
	m.gen++
}

func (m *battleModel) startCmd() tea.Cmd {
	gen, client, key := m.gen, m.client, m.starterKey
	return func() tea.Msg {
		resp, err := client.StartBattle(context.Background(), key)
		return startResultMsg{gen: gen, resp: resp, err: err}
	}
}

func (m *battleModel) turnCmd(move string) tea.Cmd {
	gen, client, id := m.gen, m.client, m.ctrl.BattleID()
	return func() tea.Msg {
		resp, err := client.SubmitTurn(context.Background(), id, move)
		return turnResultMsg{gen: gen, resp: resp, err: err}
	}
}

func (m *battleModel) captureCmd() tea.Cmd {
	gen, client, id := m.gen, m.client, m.ctrl.BattleID()
	return func() tea.Msg {
		resp, err := client.AttemptCapture(context.Background(), id)
		return captureResultMsg{gen: gen, resp: resp, err: err}
	}
}

func (m *battleModel) tickCmd() tea.Cmd {
	gen, seq := m.gen, m.tw.Seq()
	return tea.Tick(m.textSpeed, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen, seq: seq}
	})
}

// syncPresenter points the typewriter at the current queue head and
// schedules the reveal timer when the head changed.
func (m *battleModel) syncPresenter() tea.Cmd {
	head, ok := m.ctrl.Queue().Head()
	if !ok {
		m.tw.Clear()
		return nil
	}
	if m.tw.SetLine(head) && !m.tw.Settled() {
		return m.tickCmd()
	}
	return nil
}

// advance is the single user-driven progression action: complete the
// current reveal, or dismiss the settled line and pull the next one.
// It is a no-op while a network request is outstanding.
func (m *battleModel) advance() tea.Cmd {
	if !m.ctrl.AdvanceAllowed() {
		return nil
	}
	if _, ok := m.ctrl.Queue().Head(); !ok {
		return nil
	}
	if !m.tw.Settled() {
		m.tw.Reveal()
		return nil
	}
	m.ctrl.Queue().Advance()
	return m.syncPresenter()
}

func (m *battleModel) submitMove(move string) tea.Cmd {
	if !m.ctrl.AcceptMove() {
		return nil
	}
	return m.turnCmd(move)
}

func (m *battleModel) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case revealTickMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		if m.tw.Tick(msg.seq) {
			return m.tickCmd(), false
		}
		return nil, false

	case startResultMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		m.ctrl.ApplyStart(msg.resp, msg.err)
		return m.syncPresenter(), false

	case turnResultMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		m.ctrl.ApplyTurn(msg.resp, msg.err)
		return m.syncPresenter(), false

	case captureResultMsg:
		if msg.gen != m.gen {
			return nil, false
		}
		m.ctrl.ApplyCapture(msg.resp, msg.err)
		return m.syncPresenter(), false

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m.advance(), false
		}
		return nil, false

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil, false
}

// handleKey returns the follow-up command and whether the screen asked
// to go back to the menu.
func (m *battleModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter", " ":
		return m.advance(), false

	case "1":
		return m.submitMove("tackle"), false

	case "2":
		return m.submitMove("growl"), false

	case "c":
		if !m.ctrl.BeginCapture() {
			return nil, false
		}
		return m.captureCmd(), false

	case "s":
		if m.ctrl.SkipCapture() {
			return m.syncPresenter(), false
		}
		return nil, false

	case "n":
		if !m.ctrl.BeginNextBattle() {
			return nil, false
		}
		return m.startCmd(), false

	case "r":
		if m.ctrl.StartFailed() && !m.ctrl.Locked() {
			if m.ctrl.BeginStart() {
				return m.startCmd(), false
			}
		}
		return nil, false

	case "h":
		m.showHistory = !m.showHistory
		return nil, false

	case "esc":
		if m.ctrl.Locked() {
			return nil, false
		}
		return nil, true
	}
	return nil, false
}

func (m *battleModel) View() string {
	var b strings.Builder

	enemy := m.ctrl.Enemy()
	player := m.ctrl.Player()

	b.WriteString(titleStyle.Render("RogueMon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.combatantPanel(enemy, sprites.FacingFront),
		"  ",
		m.combatantPanel(player, sprites.FacingBack),
	))
	b.WriteString("\n")

	b.WriteString(messageBoxStyle.Render(m.messageLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.hints()))

	if m.showHistory {
		b.WriteString("\n")
		b.WriteString(m.historyView())
	}
	return b.String()
}

func (m *battleModel) combatantPanel(c battle.Combatant, facing sprites.Facing) string {
	if c.Name == "" {
		return panelStyle.Render(dimStyle.Render("…"))
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", c.Name))
	b.WriteString(fmt.Sprintf("%s %d/%d\n", renderHPBar(c.CurrentHP, c.MaxHP), c.CurrentHP, c.MaxHP))
	b.WriteString(dimStyle.Render(sprites.Resolve(m.assetsDir, facing, c.PokedexID, c.Key)))
	return panelStyle.Render(b.String())
}

func (m *battleModel) messageLine() string {
	if _, ok := m.ctrl.Queue().Head(); ok {
		return m.tw.View()
	}
	if m.ctrl.StartFailed() {
		return constants.MsgStartFailed
	}
	switch m.ctrl.Status() {
	case battle.StatusWin:
		return winStyle.Render("You won!")
	case battle.StatusLose:
		return loseStyle.Render("You lost…")
	}
	if m.ctrl.BattleID() == "" {
		return dimStyle.Render("Starting battle…")
	}
	return constants.IdlePrompt
}

func (m *battleModel) hints() string {
	switch {
	case m.ctrl.StartFailed() && !m.ctrl.Locked():
		return "r retry · esc menu"
	case !m.ctrl.Queue().Empty():
		if m.ctrl.AdvanceAllowed() {
			return "enter/space/click continue"
		}
		return "resolving…"
	case m.ctrl.CaptureOfferAvailable():
		return "c catch · s skip"
	case m.ctrl.NextBattleAllowed():
		return "n next battle · h history · esc menu"
	case m.ctrl.Status() == battle.StatusOngoing && m.ctrl.BattleID() != "":
		return "1 tackle · 2 growl · h history · esc menu"
	default:
		return "esc menu"
	}
}

func (m *battleModel) historyView() string {
	groups := m.ctrl.History()
	if len(groups) == 0 {
		return dimStyle.Render("no history yet")
	}
	var b strings.Builder
	for _, g := range groups {
		if g.Turn == 0 {
			b.WriteString(dimStyle.Render("— battle start —"))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("— turn %d —", g.Turn)))
		}
		b.WriteString("\n")
		for _, line := range g.Lines {
			b.WriteString("  " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
