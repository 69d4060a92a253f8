package observer

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/gridsearch/grid"
)

// Logger writes every event to a slog.Logger at Debug level.
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a Logger; a nil logger discards.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return &Logger{log: l}
}

func (l *Logger) emit(msg string, attrs ...slog.Attr) {
	l.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// OnExpand logs the expanded cell.
func (l *Logger) OnExpand(c grid.Coordinate) {
	l.emit("expand", slog.Int("row", c.Row), slog.Int("col", c.Col))
}

// OnDiscover logs the discovered cell.
func (l *Logger) OnDiscover(c grid.Coordinate) {
	l.emit("discover", slog.Int("row", c.Row), slog.Int("col", c.Col))
}

// OnPathCell logs one cell of the found path.
func (l *Logger) OnPathCell(c grid.Coordinate) {
	l.emit("path cell", slog.Int("row", c.Row), slog.Int("col", c.Col))
}

// OnReset logs the next IDDFS depth limit.
func (l *Logger) OnReset(limit int) { l.emit("reset", slog.Int("limit", limit)) }

// SetFastMode logs the pace change.
func (l *Logger) SetFastMode(fast bool) { l.emit("fast mode", slog.Bool("fast", fast)) }
