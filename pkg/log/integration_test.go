package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerInterface tests the TestLogger implementation
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")
	testLogger.Error("error message", fmt.Errorf("test error"), ErrorCodeKey, ErrorInvalidInput)

	require.NotEmpty(t, buffer.String())
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.True(t, testLogger.ContainsMessage(msg), msg)
	}
	assert.True(t, testLogger.ContainsField("key1", "value1"))
	assert.True(t, testLogger.ContainsField("number", 42.0))
	assert.True(t, testLogger.ContainsField(ErrAttrKey, "test error"))
}

func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(ModelNameKey, "GaussianNB", ComponentKey, "naive_bayes")
	contextLogger.Info("contextual message", OperationKey, OperationEvaluate)

	assert.True(t, testLogger.ContainsField(ModelNameKey, "GaussianNB"))
	assert.True(t, testLogger.ContainsField(ComponentKey, "naive_bayes"))
	assert.True(t, testLogger.ContainsField(OperationKey, OperationEvaluate))
}

func TestLoggerEnabled(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelWarn)
	ctx := context.Background()

	assert.False(t, testLogger.Enabled(ctx, LevelInfo))
	assert.True(t, testLogger.Enabled(ctx, LevelError))

	testLogger.Info("dropped")
	testLogger.Warn("kept")
	assert.NotContains(t, buffer.String(), "dropped")
	assert.Contains(t, buffer.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: " INFO ", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", want: LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlogLoggerStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := NewErrorHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger := NewSlogLogger(slog.New(handler))

	logger.Error("fit failed", errors.New("boom"), SamplesKey, 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry[ErrAttrKey])
	assert.Equal(t, 3.0, entry[SamplesKey])
	assert.NotEmpty(t, entry[StacktraceAttrKey])
}

func TestSetupLoggerAndDefault(t *testing.T) {
	original := slog.Default()
	defer func() {
		slog.SetDefault(original)
		SetLogger(nil)
	}()

	var buf bytes.Buffer
	SetupLogger(&buf, LevelInfo)

	GetLogger().Debug("hidden")
	GetLogger().Info("visible", ClassKey, "Iris-setosa")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"visible"`)
	assert.Contains(t, out, `"severity":"INFO"`)
	assert.Contains(t, out, `"model.class":"Iris-setosa"`)
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("hidden")
	logger.With(ModelNameKey, "GaussianNB").Info("fitted", SamplesKey, 4)
	logger.Error("failed", fmt.Errorf("bad input"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"model.name":"GaussianNB"`)
	assert.Contains(t, out, `"data.samples":4`)
	assert.Contains(t, out, `"error":"bad input"`)

	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), LevelWarn))
}

type testWarning struct{ class string }

func (w testWarning) Error() string { return "degenerate " + w.class }

func (w testWarning) MarshalZerologObject(e *zerolog.Event) { e.Str("class", w.class) }

func TestZerologWarnFunc(t *testing.T) {
	var buf bytes.Buffer
	warn := ZerologWarnFunc(zerolog.New(&buf))

	warn(testWarning{class: "A"})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"class":"A"`)
	assert.Contains(t, out, "degenerate A")

	assert.NotNil(t, WarnFuncFor(NewZerologLogger(zerolog.New(&buf))))
	tl, _ := NewTestLogger(LevelInfo)
	assert.Nil(t, WarnFuncFor(tl))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, LevelInfo, true)

	logger.Info("model ready", ClassesKey, 3)

	out := buf.String()
	assert.Contains(t, out, "model ready")
	assert.Contains(t, out, "data.classes=3")
	assert.False(t, strings.Contains(out, "\x1b["), "no ANSI codes expected")
}

func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			testLogger.With("worker", id).Info("classified", PredictedKey, "A")
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 8)
}
