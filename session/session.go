// Package session runs the interactive classification loop.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/YuminosukeSato/gaussnb/dataset"
	"github.com/YuminosukeSato/gaussnb/pkg/errors"
	"github.com/YuminosukeSato/gaussnb/pkg/log"
)

// DefaultExitToken ends a session. It is matched case-insensitively.
const DefaultExitToken = "exit"

// MaxLineBytes is the longest input line a session accepts. Longer lines
// are rejected and the prompt repeats.
const MaxLineBytes = 1 << 20

// Classifier is the read-only view of a fitted model a session needs.
type Classifier interface {
	Classify(sample []float64) (string, error)
	NumFeatures() int
}

// Session reads feature vectors line by line and prints the predicted class.
// It never modifies the classifier.
type Session struct {
	clf       Classifier
	in        *bufio.Reader
	out       io.Writer
	exitToken string
	logger    log.Logger

	promptColor *color.Color
	resultColor *color.Color
	errorColor  *color.Color
}

// Option configures a Session.
type Option func(*Session)

// WithColor enables or disables ANSI colors. Colors are off by default.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		for _, c := range []*color.Color{s.promptColor, s.resultColor, s.errorColor} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithExitToken replaces DefaultExitToken.
func WithExitToken(token string) Option {
	return func(s *Session) {
		s.exitToken = token
	}
}

// WithLogger sets the logger used for per-query debug records.
func WithLogger(l log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a session reading from in and writing to out.
func New(clf Classifier, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		clf:         clf,
		in:          bufio.NewReader(in),
		out:         out,
		exitToken:   DefaultExitToken,
		promptColor: color.New(color.FgCyan),
		resultColor: color.New(color.FgGreen, color.Bold),
		errorColor:  color.New(color.FgRed),
	}
	WithColor(false)(s)
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.GetLogger()
	}
	s.logger = s.logger.With(log.ComponentKey, "session", log.PhaseKey, log.PhaseInference)
	return s
}

// Run prompts until the exit token, end of input or cancellation of ctx.
// Invalid input is reported and the prompt repeats. Only I/O errors and
// cancellation are returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.promptColor.Fprintf(s.out, "\nEnter %d feature values separated by spaces (or '%s' to quit):\n",
			s.clf.NumFeatures(), s.exitToken); err != nil {
			return errors.Wrap(err, "session: write prompt")
		}
		raw, err := s.readLine()
		if err == io.EOF {
			return nil
		}
		if errors.Is(err, errLineTooLong) {
			s.reportError(errors.NewValueError("session.Query", fmt.Sprintf("input line exceeds %d bytes", MaxLineBytes)))
			continue
		}
		if err != nil {
			return errors.Wrap(err, "session: read input")
		}

		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, s.exitToken) {
			return nil
		}

		predicted, err := s.Query(line)
		if err != nil {
			s.reportError(err)
			continue
		}
		if _, err := s.resultColor.Fprintf(s.out, "Predicted class: %s\n", predicted); err != nil {
			return errors.Wrap(err, "session: write result")
		}
	}
}

// Query classifies one input line. A line with the wrong number of values
// is a DimensionError and a non-numeric token is an InputFormatError. A panic
// inside the classifier is returned as a PanicError.
func (s *Session) Query(line string) (string, error) {
	nFeatures := s.clf.NumFeatures()
	if got := len(strings.Fields(line)); got != nFeatures {
		return "", errors.NewDimensionError("session.Query", nFeatures, got, 1)
	}
	sample, err := dataset.ParseFeatures(line)
	if err != nil {
		return "", err
	}

	var predicted string
	err = errors.SafeExecute("session.Query", func() error {
		var cerr error
		predicted, cerr = s.clf.Classify(sample)
		return cerr
	})
	if err != nil {
		return "", err
	}
	s.logger.Debug("Query classified", log.OperationKey, log.OperationClassify, log.PredictedKey, predicted)
	return predicted, nil
}

var errLineTooLong = errors.New("session: line too long")

// readLine returns the next line without its terminator. A final line without
// a newline is returned as is. A line longer than MaxLineBytes is consumed up
// to its newline and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := s.in.ReadSlice('\n')
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineBytes+1 {
				tooLong, buf = true, nil
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && (err != io.EOF || (len(buf) == 0 && !tooLong)) {
			return "", err
		}
		if tooLong {
			return "", errLineTooLong
		}
		return strings.TrimRight(strings.TrimSuffix(string(buf), "\n"), "\r"), nil
	}
}

func (s *Session) reportError(err error) {
	var de *errors.DimensionError
	var fe *errors.InputFormatError
	var ve *errors.ValueError
	msg := "Error: " + err.Error()
	switch {
	case errors.As(err, &de):
		msg = fmt.Sprintf("Error: Please enter exactly %d values.", de.Expected)
		s.logger.Debug("Query rejected", log.ErrorFields(err)...)
	case errors.As(err, &fe):
		msg = fmt.Sprintf("Error: Please enter valid numbers (%q).", fe.Token)
		s.logger.Debug("Query rejected", log.ErrorFields(err)...)
	case errors.As(err, &ve):
		msg = "Error: " + ve.Message + "."
		s.logger.Debug("Query rejected", log.ErrorFields(err)...)
	default:
		s.logger.Error("Query failed", append([]any{err}, log.ErrorFields(err)...)...)
	}
	// output errors surface on the next prompt write
	_, _ = s.errorColor.Fprintln(s.out, msg)
}
