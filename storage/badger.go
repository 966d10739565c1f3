package storage

import (
	"fmt"
	"log/slog"
	"message-board/errors"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Options selects where the Badger database lives.
type Options struct {
	Path     string
	InMemory bool
	ReadOnly bool
}

// Open opens the record store database. Writes are synced to disk before
// a transaction commit returns.
func Open(opts Options, log *slog.Logger) (*badger.DB, error) {
	var badgerOpts badger.Options
	switch {
	case opts.InMemory:
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	case opts.Path == "":
		return nil, fmt.Errorf("%w: badger path is empty", errors.ErrInvalidConfig)
	default:
		badgerOpts = badger.DefaultOptions(opts.Path).WithSyncWrites(true)
	}
	if opts.ReadOnly {
		badgerOpts = badgerOpts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	db, err := badger.Open(badgerOpts.WithLogger(NewLogger(log)))
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", opts.Path, err)
	}
	return db, nil
}

// Logger forwards Badger's printf-style logs to slog.
type Logger struct {
	log *slog.Logger
}

func NewLogger(log *slog.Logger) *Logger {
	return &Logger{log: log.With("component", "badger")}
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log.Error(trim(format, args))
}

func (l *Logger) Warningf(format string, args ...any) {
	l.log.Warn(trim(format, args))
}

func (l *Logger) Infof(format string, args ...any) {
	l.log.Info(trim(format, args))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log.Debug(trim(format, args))
}

// Badger terminates most of its lines with a newline.
func trim(format string, args []any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
