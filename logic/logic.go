// Package logic wires the parser, the model and the store together. Every
// command runs through Execute, which saves after successful mutations.
package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/reservemate/commands"
	"github.com/c360studio/reservemate/model"
	"github.com/c360studio/reservemate/parser"
	"github.com/c360studio/reservemate/reservation"
	"github.com/c360studio/reservemate/storage"
)

// MessageSaveFailed prefixes errors from persisting after a command.
const MessageSaveFailed = "Could not save data to file: "

// Store loads and saves the whole reservation list.
type Store interface {
	Load() ([]reservation.Reservation, error)
	Save([]reservation.Reservation) error
}

// SaveError reports that a command succeeded in memory but could not be
// persisted.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return MessageSaveFailed + e.Err.Error() }

func (e *SaveError) Unwrap() error { return e.Err }

// Logic executes commands against one model.
type Logic struct {
	mu sync.Mutex

	model   *model.Model
	parser  *parser.Parser
	store   Store
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Logic.
type Option func(*Logic)

// WithParser replaces the default parser.
func WithParser(p *parser.Parser) Option {
	return func(l *Logic) { l.parser = p }
}

// WithMetrics records command metrics.
func WithMetrics(m *Metrics) Option {
	return func(l *Logic) { l.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Logic) { l.logger = logger }
}

// New loads the store into a fresh model. A data file that cannot be
// loaded is logged and replaced by an empty list on the next save.
func New(store Store, opts ...Option) *Logic {
	l := &Logic{
		parser: parser.New(),
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics == nil {
		l.metrics = NewMetrics()
	}

	initial, err := store.Load()
	if err != nil {
		l.logger.Warn("Data file could not be loaded, starting with an empty list", "error", err)
		initial = nil
	}
	l.model = model.New(initial)
	l.metrics.setReservations(l.model.Len())
	l.model.Subscribe(func(all []reservation.Reservation) {
		l.metrics.setReservations(len(all))
	})

	return l
}

// Model returns the model for display.
func (l *Logic) Model() *model.Model {
	return l.model
}

// Metrics returns the collectors used by this Logic.
func (l *Logic) Metrics() *Metrics {
	return l.metrics
}

// Execute parses and runs one line of input. Parse and execution errors
// leave the model unchanged. A *SaveError means the model changed but the
// data file did not.
func (l *Logic) Execute(ctx context.Context, input string) (commands.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	commandID := uuid.New().String()
	start := time.Now()
	word := metricWord(input)

	result, outcome, err := l.execute(ctx, input)

	elapsed := time.Since(start)
	l.metrics.observe(word, outcome, elapsed)

	logAttrs := []any{
		"command_id", commandID,
		"command", word,
		"outcome", outcome,
		"duration", elapsed,
	}
	switch outcome {
	case OutcomeSuccess:
		l.logger.Info("Command executed", append(logAttrs, "mutated", result.Mutated)...)
	case OutcomeSaveError:
		l.logger.Error("Command result not saved", append(logAttrs, "error", err)...)
	default:
		l.logger.Debug("Command rejected", append(logAttrs, "error", err)...)
	}

	return result, err
}

func (l *Logic) execute(ctx context.Context, input string) (commands.Result, string, error) {
	cmd, err := l.parser.Parse(input)
	if err != nil {
		return commands.Result{}, OutcomeParseError, err
	}

	result, err := cmd.Execute(ctx, l.model)
	if err != nil {
		return commands.Result{}, OutcomeExecutionError, err
	}

	if result.Mutated {
		if err := l.store.Save(l.model.Reservations()); err != nil {
			return commands.Result{}, OutcomeSaveError, &SaveError{Err: err}
		}
	}
	return result, OutcomeSuccess, nil
}

// metricWord bounds label cardinality to known command words.
func metricWord(input string) string {
	word := parser.CommandWord(input)
	if _, ok := commands.LookupCommand(word); ok {
		return word
	}
	return "unknown"
}

// Reload replaces the model contents with what is on disk. The active
// filter is kept. On error the model is left unchanged.
func (l *Logic) Reload() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rs, err := l.store.Load()
	if err != nil {
		return err
	}
	if err := l.model.SetReservations(rs); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrDataLoading, err)
	}
	l.logger.Info("Reloaded data file", "reservations", len(rs))
	return nil
}

// ImportResult summarises an import.
type ImportResult struct {
	Files   int
	Added   int
	Skipped int
}

// Import adds every reservation found in files matching patterns unless
// the same reservation is already present, then saves once.
func (l *Logic) Import(patterns ...string) (ImportResult, error) {
	files, err := storage.ImportGlob(patterns...)
	if err != nil {
		return ImportResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	res := ImportResult{Files: len(files)}
	for _, f := range files {
		for _, r := range f.Reservations {
			err := l.model.AddReservation(r)
			switch {
			case errors.Is(err, model.ErrDuplicateReservation):
				res.Skipped++
			case err != nil:
				return res, err
			default:
				res.Added++
			}
		}
		l.logger.Debug("Imported data file", "path", f.Path, "reservations", len(f.Reservations))
	}

	if res.Added > 0 {
		if err := l.store.Save(l.model.Reservations()); err != nil {
			return res, &SaveError{Err: err}
		}
	}
	return res, nil
}

// Watch reloads the model whenever events reports an external change. It
// returns when ctx is done or events is closed.
func (l *Logic) Watch(ctx context.Context, events <-chan storage.WatchEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			l.logger.Info("Data file changed externally", "path", ev.Path, "op", ev.Operation)
			if err := l.Reload(); err != nil {
				l.logger.Warn("Keeping current reservations, reload failed", "error", err)
			}
		}
	}
}
