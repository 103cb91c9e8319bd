package log

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{l: l}
}

// NewConsoleLogger returns a zerolog-backed Logger writing human readable
// lines to w. noColor disables ANSI colors, e.g. when w is not a terminal.
func NewConsoleLogger(w io.Writer, level Level, noColor bool) Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}
	return NewZerologLogger(zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger())
}

func (z *zerologLogger) Debug(msg string, fields ...any) { addFields(z.l.Debug(), fields).Msg(msg) }
func (z *zerologLogger) Info(msg string, fields ...any)  { addFields(z.l.Info(), fields).Msg(msg) }
func (z *zerologLogger) Warn(msg string, fields ...any)  { addFields(z.l.Warn(), fields).Msg(msg) }
func (z *zerologLogger) Error(msg string, fields ...any) { addFields(z.l.Error(), fields).Msg(msg) }

func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.l.With()
	for k, v := range pairs(fields) {
		ctx = ctx.Interface(k, v)
	}
	return &zerologLogger{l: ctx.Logger()}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	zl := zerologLevel(level)
	return zl >= z.l.GetLevel() && zl >= zerolog.GlobalLevel()
}

// WarnFunc returns a function suitable for errors.SetZerologWarnFunc.
// Warnings implementing zerolog.LogObjectMarshaler are embedded as
// structured fields.
func (z *zerologLogger) WarnFunc() func(error) {
	return ZerologWarnFunc(z.l)
}

// ZerologWarnFunc returns a warning sink that writes to l at warn level.
func ZerologWarnFunc(l zerolog.Logger) func(error) {
	return func(w error) {
		e := l.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			e = e.EmbedObject(m)
		}
		e.Msg(w.Error())
	}
}

// WarnFuncFor returns the zerolog warning sink of a Logger created by this
// package, or nil if l is not zerolog-backed.
func WarnFuncFor(l Logger) func(error) {
	if z, ok := l.(*zerologLogger); ok {
		return z.WarnFunc()
	}
	return nil
}

func addFields(e *zerolog.Event, fields []any) *zerolog.Event {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = e.Err(err)
			fields = fields[1:]
		}
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		switch v := fields[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		case zerolog.LogObjectMarshaler:
			e = e.Object(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

func pairs(fields []any) map[string]any {
	m := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		if err, ok := fields[i+1].(error); ok {
			m[key] = err.Error()
			continue
		}
		m[key] = fields[i+1]
	}
	return m
}

func zerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
