package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
)

var playCmd = &cobra.Command{
	Use:   "play <moves>",
	Short: "Animate a move sequence on the working state",
	Long: `Step through a move sequence one turn at a time, drawing the cube after
each move. The working state is left untouched unless --commit is given.

Usage:
  cubescan play "R U R' U'"              # Play at 2 moves per second
  cubescan play "R U R' U'" --step       # Step through moves manually
  cubescan play "R U R' U'" --commit     # Record the played moves`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

var (
	playSpeed  float64
	playStep   bool
	playCommit bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Float64VarP(&playSpeed, "speed", "s", 2.0, "Moves per second")
	playCmd.Flags().BoolVarP(&playStep, "step", "t", false, "Step through moves manually")
	playCmd.Flags().BoolVar(&playCommit, "commit", false, "Apply the played moves to the working state")
}

func runPlay(cmd *cobra.Command, args []string) error {
	moves, err := cubescan.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	model := newPlayModel(ws.session.State(), moves, playSpeed, playStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playback error: %w", err)
	}

	fmt.Printf("Played %d of %d moves\n", len(model.played), len(moves))
	if model.err != nil {
		fmt.Println(errorStyle.Render(model.err.Error()))
	}
	if !playCommit || len(model.played) == 0 {
		return nil
	}

	state, err := ws.session.ApplyMoves(model.played)
	if err != nil {
		return err
	}
	fmt.Println(stateSummary(state))
	return nil
}

// playModel animates a Playback queue.
type playModel struct {
	start    cubescan.State
	moves    []cubescan.Move
	queue    *cubescan.Playback
	state    cubescan.State
	played   []cubescan.Move
	speed    float64
	stepMode bool
	paused   bool
	err      error
	quitting bool
}

func newPlayModel(start cubescan.State, moves []cubescan.Move, speed float64, stepMode bool) *playModel {
	return &playModel{
		start:    start,
		moves:    moves,
		queue:    cubescan.NewPlayback(moves...),
		state:    start,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
	}
}

type playTickMsg time.Time

func (m *playModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.tick()
}

func (m *playModel) tick() tea.Cmd {
	if m.queue.Len() == 0 || m.err != nil {
		return nil
	}
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

// advance plays the next queued move. A move that cannot be applied stops
// playback and stays queued.
func (m *playModel) advance() {
	next, mv, err := m.queue.Advance(m.state)
	if err != nil {
		if !errors.Is(err, cubescan.ErrQueueEmpty) {
			m.err = err
			m.paused = true
		}
		return
	}
	m.state = next
	m.played = append(m.played, mv)
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.paused {
				m.advance()
			}

		case "p":
			if m.stepMode {
				break
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}

		case "r":
			m.queue.Clear()
			m.queue.Enqueue(m.moves...)
			m.state = m.start
			m.played = nil
			m.err = nil
			if !m.paused {
				return m, m.tick()
			}

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-":
			m.speed = max(m.speed/2, 0.25)
		}

	case playTickMsg:
		if !m.paused {
			m.advance()
			return m, m.tick()
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Playback ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubescan playback"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", len(m.played), len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2g moves/s)\n\n", m.speed))

	b.WriteString(renderNet(m.state))
	b.WriteString("\n")
	b.WriteString(stateSummary(m.state))
	b.WriteString("\n\n")

	if len(m.played) > 0 {
		b.WriteString("Played: ")
		start := 0
		if len(m.played) > 20 {
			start = len(m.played) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubescan.FormatMoves(m.played[start:])))
		b.WriteString("\n")
	}
	if pending := m.queue.Pending(); len(pending) > 0 {
		b.WriteString(statusStyle.Render("Next: " + pending[0].Notation()))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
