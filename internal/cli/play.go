package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba"
	"github.com/SeamusWaldron/kociemba/internal/render"
)

var playScrambleLength int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Turn a virtual cube with the keyboard. Lowercase letters turn a face
clockwise, uppercase counter-clockwise. Ask the solver for help at any
point and step through its solution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newPlayModel(playScrambleLength)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m)
		_, err = p.Run()
		return err
	},
}

func init() {
	playCmd.Flags().IntVarP(&playScrambleLength, "length", "n", 25, "Scramble length for new cubes")
	rootCmd.AddCommand(playCmd)
}

var (
	playTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	playStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	playSolvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	playErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	playHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type playModel struct {
	facelets string
	moveLog  []kociemba.Move
	solution []kociemba.Move // remaining hint moves, nil when no hint
	solving  bool
	status   string
	err      error
}

type solveDoneMsg struct {
	sol kociemba.Solution
	err error
}

func newPlayModel(scrambleLen int) (playModel, error) {
	_, state, err := kociemba.Scramble(scrambleLen)
	if err != nil {
		return playModel{}, err
	}
	return playModel{facelets: state}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case solveDoneMsg:
		m.solving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.solution = msg.sol.Moves
		m.status = fmt.Sprintf("solution found: %s", kociemba.FormatMoves(msg.sol.Moves))
		return m, nil
	}
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "n":
		fresh, err := newPlayModel(playScrambleLength)
		if err != nil {
			m.err = err
			return m, nil
		}
		fresh.status = "new scramble"
		return fresh, nil

	case "z":
		if len(m.moveLog) == 0 {
			return m, nil
		}
		last := m.moveLog[len(m.moveLog)-1]
		return m.applyMove(last.Inverse(), m.moveLog[:len(m.moveLog)-1]), nil

	case "s":
		if m.solving {
			return m, nil
		}
		m.solving = true
		m.err = nil
		m.status = "solving..."
		facelets := m.facelets
		return m, func() tea.Msg {
			sol, err := kociemba.Solve(facelets)
			return solveDoneMsg{sol: sol, err: err}
		}

	case " ", "enter":
		if len(m.solution) == 0 {
			return m, nil
		}
		next := m.solution[0]
		rest := m.solution[1:]
		nm := m.applyMove(next, append(m.moveLog, next))
		nm.solution = rest
		if len(rest) > 0 {
			nm.status = fmt.Sprintf("played %s, %d to go", next, len(rest))
		}
		return nm, nil
	}

	if mv, ok := keyMove(key); ok {
		nm := m.applyMove(mv, append(m.moveLog, mv))
		nm.solution = nil
		return nm, nil
	}
	return m, nil
}

// keyMove maps a face letter to a turn: lowercase clockwise, uppercase
// counter-clockwise.
func keyMove(key string) (kociemba.Move, bool) {
	if len(key) != 1 {
		return kociemba.Move{}, false
	}
	turn := kociemba.CW
	c := key[0]
	if c >= 'A' && c <= 'Z' {
		turn = kociemba.CCW
		c += 'a' - 'A'
	}
	switch c {
	case 'u', 'r', 'f', 'd', 'l', 'b':
		return kociemba.Move{Face: kociemba.Face(strings.ToUpper(string(c))), Turn: turn}, true
	}
	return kociemba.Move{}, false
}

// applyMove returns the model after one face turn, with the move log
// replaced by log.
func (m playModel) applyMove(mv kociemba.Move, log []kociemba.Move) playModel {
	state, err := kociemba.ApplyMoves(m.facelets, []kociemba.Move{mv})
	if err != nil {
		m.err = err
		return m
	}
	m.facelets = state
	m.moveLog = log
	m.err = nil
	m.status = ""
	return m
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(playTitleStyle.Render("kociemba play"))
	b.WriteString("\n\n")
	b.WriteString(render.Net(m.facelets))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(playErrStyle.Render(m.err.Error()))
	case m.facelets == kociemba.SolvedFacelets:
		b.WriteString(playSolvedStyle.Render(fmt.Sprintf("Solved in %d moves!", len(m.moveLog))))
	case m.status != "":
		b.WriteString(playStatusStyle.Render(m.status))
	default:
		b.WriteString(playStatusStyle.Render(fmt.Sprintf("%d moves played", len(m.moveLog))))
	}
	b.WriteString("\n\n")

	help := "u/r/f/d/l/b turn (shift = counter-clockwise) · z undo · s solve · space step · n new · q quit"
	b.WriteString(playHelpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
