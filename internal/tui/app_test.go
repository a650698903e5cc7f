package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghboard/internal/model"
	"ghboard/internal/render"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelShowsStage(t *testing.T) {
	m := New(context.Background(), nil, nil)

	next, cmd := m.Update(stageMsg("Fetching issues"))
	assert.Nil(t, cmd)
	assert.Contains(t, next.View(), "Fetching issues…")
}

func TestModelQuitsWhenLoaded(t *testing.T) {
	board := render.Board{Repo: model.Repo{Owner: "acme", Name: "widgets"}}
	m := New(context.Background(), nil, func(context.Context) (render.Board, error) { return board, nil })

	msg := m.loadBoard()
	next, cmd := m.Update(msg)

	assert.True(t, isQuit(t, cmd))
	assert.Empty(t, next.View())

	got, err := next.(Model).Result()
	require.NoError(t, err)
	assert.Equal(t, board, got)
}

func TestModelPassesLoadError(t *testing.T) {
	boom := errors.New("boom")
	m := New(context.Background(), nil, func(context.Context) (render.Board, error) { return render.Board{}, boom })

	next, _ := m.Update(m.loadBoard())

	_, err := next.(Model).Result()
	assert.ErrorIs(t, err, boom)
}

func TestModelAbort(t *testing.T) {
	m := New(context.Background(), nil, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(t, cmd))
	_, err := next.(Model).Result()
	assert.ErrorIs(t, err, ErrAborted)
}

func TestModelAbortCancelsLoad(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(ctx, cancel, func(ctx context.Context) (render.Board, error) {
		<-ctx.Done()
		return render.Board{}, ctx.Err()
	})

	loaded := make(chan tea.Msg, 1)
	go func() { loaded <- m.loadBoard() }()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(t, cmd))

	select {
	case msg := <-loaded:
		assert.ErrorIs(t, msg.(boardLoadedMsg).err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("load still running after abort")
	}
}
