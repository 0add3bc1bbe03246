package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/c360studio/reservemate/commands"
	"github.com/c360studio/reservemate/config"
	"github.com/c360studio/reservemate/logic"
	"github.com/c360studio/reservemate/parser"
	"github.com/c360studio/reservemate/reservation"
	"github.com/c360studio/reservemate/storage"
)

const prompt = "reservemate> "

// App is the main application that wires together all components.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	store   *storage.JSONStore
	logic   *logic.Logic
	watcher *storage.Watcher

	in  io.Reader
	out io.Writer
}

// NewApp creates a new application instance and loads the data file.
func NewApp(cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	store := storage.NewJSONStore(cfg.Storage.DataFile)
	return &App{
		cfg:    cfg,
		logger: logger,
		store:  store,
		logic:  logic.New(store, logic.WithLogger(logger)),
		in:     in,
		out:    out,
	}
}

// Start begins watching the data file when enabled.
func (a *App) Start(ctx context.Context) error {
	if !a.cfg.Watch.Enabled {
		return nil
	}

	w, err := storage.NewWatcher(a.cfg.Watch, a.store, a.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return fmt.Errorf("start watcher: %w", err)
	}
	a.watcher = w
	go a.logic.Watch(ctx, w.Events())
	return nil
}

// Shutdown stops the watcher and writes the metrics file if configured.
func (a *App) Shutdown() {
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn("Failed to stop watcher", "error", err)
		}
	}
	if a.cfg.Metrics.File != "" {
		if err := a.logic.Metrics().WriteToTextfile(a.cfg.Metrics.File); err != nil {
			a.logger.Error("Failed to write metrics", "path", a.cfg.Metrics.File, "error", err)
		} else {
			a.logger.Debug("Wrote metrics", "path", a.cfg.Metrics.File)
		}
	}
}

// RunREPL runs the interactive REPL loop until exit, EOF or ctx is done.
func (a *App) RunREPL(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprintf(a.out, "Welcome to ReserveMate! %d reservations loaded. Type 'help' for commands.\n", a.logic.Model().Len())

	for {
		fmt.Fprint(a.out, prompt)

		var input string
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				// EOF (Ctrl+D)
				fmt.Fprintln(a.out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			input = line
		}

		if exit := a.handleInput(ctx, input); exit {
			return nil
		}
	}
}

// RunOnce executes a single command and prints its result.
func (a *App) RunOnce(ctx context.Context, input string) error {
	result, err := a.logic.Execute(ctx, input)
	if err != nil {
		return err
	}
	a.render(input, result)
	return nil
}

// handleInput runs one line and reports whether the user asked to exit.
func (a *App) handleInput(ctx context.Context, input string) bool {
	result, err := a.logic.Execute(ctx, input)
	if err != nil {
		a.renderError(err)
		return false
	}
	a.render(input, result)
	return result.Exit
}

func (a *App) render(input string, result commands.Result) {
	fmt.Fprintln(a.out, result.Message)

	switch parser.CommandWord(input) {
	case commands.ListConfig.Word, commands.FindConfig.Word, commands.FilterConfig.Word:
		a.renderList(a.logic.Model().FilteredList())
	}
}

func (a *App) renderList(rs []reservation.Reservation) {
	for i, r := range rs {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, r)
	}
}

func (a *App) renderError(err error) {
	var (
		perr *parser.ParseError
		eerr *commands.ExecutionError
		serr *logic.SaveError
	)
	switch {
	case errors.As(err, &perr), errors.As(err, &eerr), errors.As(err, &serr):
		fmt.Fprintln(a.out, err.Error())
	default:
		a.logger.Error("Command failed", "error", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

// Import merges reservations from files matching patterns.
func (a *App) Import(patterns []string) error {
	res, err := a.logic.Import(patterns...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %d reservations from %d files (%d already present)\n", res.Added, res.Files, res.Skipped)
	return nil
}
