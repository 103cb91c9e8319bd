package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// ErrorHandler is a slog handler for records carrying an error under
// ErrAttrKey. It adds the cockroachdb/errors stack trace as StacktraceAttrKey
// and, for gaussnb error types, ErrorCodeKey and ErrorTypeKey unless the
// record already has them.
type ErrorHandler struct {
	next slog.Handler
}

// NewErrorHandler wraps next with an ErrorHandler.
func NewErrorHandler(next slog.Handler) slog.Handler {
	return &ErrorHandler{next: next}
}

func (h *ErrorHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *ErrorHandler) Handle(ctx context.Context, r slog.Record) error {
	var (
		err     error
		hasCode bool
	)
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case ErrAttrKey:
			err, _ = a.Value.Any().(error)
		case ErrorCodeKey:
			hasCode = true
		}
		return true
	})
	if err != nil {
		r.AddAttrs(errorAttrs(err, !hasCode)...)
	}
	return h.next.Handle(ctx, r)
}

func (h *ErrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrorHandler{next: h.next.WithAttrs(attrs)}
}

func (h *ErrorHandler) WithGroup(g string) slog.Handler {
	return &ErrorHandler{next: h.next.WithGroup(g)}
}

func errorAttrs(err error, withCode bool) []slog.Attr {
	var attrs []slog.Attr
	if withCode {
		fields := ErrorFields(err)
		for i := 0; i+1 < len(fields); i += 2 {
			attrs = append(attrs, slog.Any(fields[i].(string), fields[i+1]))
		}
	}
	// the first safe detail of a cockroachdb error is its stack trace
	if details := errors.GetSafeDetails(err).SafeDetails; len(details) > 0 && details[0] != "" {
		attrs = append(attrs, slog.String(StacktraceAttrKey, details[0]))
	}
	return attrs
}
