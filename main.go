package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"

	"ghboard/internal/app"
	"ghboard/internal/config"
	"ghboard/internal/forge"
	"ghboard/internal/render"
	"ghboard/internal/tui"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(log)

	if err := run(context.Background(), log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a := app.New(cfg, log)

	interactive := term.IsTerminal(os.Stdout.Fd())
	r := render.Renderer{Links: interactive}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil {
		r.Width = w
	}

	var board render.Board
	if interactive && term.IsTerminal(os.Stderr.Fd()) {
		board, err = tui.Run(ctx, a, os.Stderr)
	} else {
		board, err = a.Build(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, r.Report(board))
	return nil
}

// exitCode propagates gh's own exit status where there is one.
func exitCode(err error) int {
	var ce *forge.CommandError
	switch {
	case errors.Is(err, tui.ErrAborted):
		return 130
	case errors.As(err, &ce):
		return ce.ExitCode()
	default:
		return 1
	}
}
