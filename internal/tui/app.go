package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ghboard/internal/app"
	"ghboard/internal/render"
)

// ErrAborted is returned when the user quits before loading finishes.
var ErrAborted = errors.New("aborted")

// — styles ——————————————————————————————————————————————————————————————————

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	stageStyle   = lipgloss.NewStyle().Faint(true)
)

// — messages ————————————————————————————————————————————————————————————————

type stageMsg string

type boardLoadedMsg struct {
	board render.Board
	err   error
}

// — model ———————————————————————————————————————————————————————————————————

// Model shows a spinner with the current pipeline stage until the board
// is built, then quits and leaves the screen clean.
type Model struct {
	spinner spinner.Model
	stage   string
	ctx     context.Context
	cancel  context.CancelFunc // stops load; nil if it cannot be stopped
	load    func(context.Context) (render.Board, error)

	board   render.Board
	err     error
	done    bool
	aborted bool
}

// New returns a model that runs load with ctx. Quitting early calls cancel
// so in-flight gh processes are killed.
func New(ctx context.Context, cancel context.CancelFunc, load func(context.Context) (render.Board, error)) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		spinner: s,
		stage:   "Loading",
		ctx:     ctx,
		cancel:  cancel,
		load:    load,
	}
}

func (m Model) loadBoard() tea.Msg {
	board, err := m.load(m.ctx)
	return boardLoadedMsg{board: board, err: err}
}

// — tea.Model ———————————————————————————————————————————————————————————————

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBoard)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case stageMsg:
		m.stage = string(msg)
		return m, nil

	case boardLoadedMsg:
		m.done = true
		m.board = msg.board
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}
	return m.spinner.View() + " " + stageStyle.Render(m.stage+"…")
}

// Result returns what the model ended with.
func (m Model) Result() (render.Board, error) {
	if m.aborted {
		return render.Board{}, ErrAborted
	}
	return m.board, m.err
}

// Run builds the board behind a loading spinner drawn on out.
func Run(ctx context.Context, a *app.App, out io.Writer) (render.Board, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	a.Progress = func(stage string) { p.Send(stageMsg(stage)) }

	p = tea.NewProgram(
		New(ctx, cancel, a.Build),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return render.Board{}, err
	}
	return final.(Model).Result()
}
