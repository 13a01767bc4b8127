package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/config"
	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/internal/notation"
	"github.com/seamusw/pocketcube/internal/scramble"
	"github.com/seamusw/pocketcube/internal/solver"
	"github.com/seamusw/pocketcube/pkg/types"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube mode",
	Long: `Start an interactive TUI with a virtual pocket cube.

Keyboard shortcuts:
  f r b l u d - Turn a face clockwise
  F R B L U D - Turn a face counter-clockwise (shift)
  z           - Undo the last move
  s           - Scramble
  n           - Reset to solved
  h           - Hint: search for a solution from the current state
  q/Esc       - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Messages
type hintMsg struct {
	moves []types.Move
	err   error
}

// Model
type playModel struct {
	cfg config.Config

	state   cube.State
	history []types.Move

	hint     []types.Move
	hintErr  error
	thinking bool

	quitting bool
}

func newPlayModel(cfg config.Config) *playModel {
	return &playModel{
		cfg:   cfg,
		state: cube.Solved(),
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case hintMsg:
		m.thinking = false
		m.hint = msg.moves
		m.hintErr = msg.err
		return m, nil
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "f", "r", "b", "l", "u", "d", "F", "R", "B", "L", "U", "D":
		turn := types.TurnCW
		if key[0] >= 'A' && key[0] <= 'Z' {
			turn = types.TurnCCW
		}
		move, err := notation.ParseMove(key)
		if err != nil {
			return m, nil
		}
		move.Turn = turn
		m.applyMove(move)
		return m, nil

	case "z":
		if n := len(m.history); n > 0 {
			last := m.history[n-1]
			m.state = m.state.Apply(last.Inverse())
			m.history = m.history[:n-1]
			m.clearHint()
		}
		return m, nil

	case "s":
		state, moves := scramble.Generate(nil, m.cfg.ScrambleMoves)
		m.state = state
		m.history = moves
		m.clearHint()
		return m, nil

	case "n":
		m.state = cube.Solved()
		m.history = nil
		m.clearHint()
		return m, nil

	case "h":
		if m.thinking {
			return m, nil
		}
		m.thinking = true
		m.clearHint()
		return m, m.searchHint()
	}

	return m, nil
}

func (m *playModel) applyMove(move types.Move) {
	m.state = m.state.Apply(move)
	m.history = append(m.history, move)
	m.clearHint()
}

func (m *playModel) clearHint() {
	m.hint = nil
	m.hintErr = nil
}

// searchHint runs the solver off the update loop; the result arrives as
// a hintMsg.
func (m *playModel) searchHint() tea.Cmd {
	state := m.state
	maxDepth := m.cfg.MaxDepth
	return func() tea.Msg {
		moves, err := solver.New(zerolog.Nop()).Solve(state, maxDepth)
		return hintMsg{moves: moves, err: err}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("Pocket Cube") + "\n\n"
	s += renderNet(m.state) + "\n"

	if m.state.IsSolved() {
		s += solvedStyle.Render("SOLVED!") + "\n"
	} else {
		s += statusStyle.Render(fmt.Sprintf("%d moves made", len(m.history))) + "\n"
	}

	if len(m.history) > 0 {
		s += moveStyle.Render(notation.FormatSequence(m.history)) + "\n"
	}

	switch {
	case m.thinking:
		s += statusStyle.Render("Searching...") + "\n"
	case m.hintErr != nil:
		s += errorStyle.Render(fmt.Sprintf("No solution within depth %d", m.cfg.MaxDepth)) + "\n"
	case m.hint != nil:
		if len(m.hint) == 0 {
			s += statusStyle.Render("Hint: already solved") + "\n"
		} else {
			s += "Hint: " + moveStyle.Render(notation.FormatSequence(m.hint)) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("f/r/b/l/u/d turn · shift for prime · z undo · s scramble · n reset · h hint · q quit")
	return s
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newPlayModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
