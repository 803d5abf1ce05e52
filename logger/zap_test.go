package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newZapBuffer(buf *bytes.Buffer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func TestNewZapLogger(t *testing.T) {
	var buf bytes.Buffer

	zapAdapter := NewZapLogger(newZapBuffer(&buf), Config{
		LogLevel:      Info,
		SlowThreshold: 100 * time.Millisecond,
	})

	require.NotNil(t, zapAdapter)
	assert.Equal(t, Info, zapAdapter.(*ZapLogger).LogLevel)
	assert.Equal(t, 100*time.Millisecond, zapAdapter.(*ZapLogger).SlowThreshold)

	infoLogger := zapAdapter.LogMode(Error)
	assert.Equal(t, Error, infoLogger.(*ZapLogger).LogLevel)
	assert.Equal(t, Info, zapAdapter.(*ZapLogger).LogLevel)
}

func TestZapLogger_LogLevels(t *testing.T) {
	ctx := WithOperation(context.Background(), Operation{Name: "save", Model: "Admin"})
	var buf bytes.Buffer
	logger := NewZapLogger(newZapBuffer(&buf), Config{LogLevel: Warn})

	logger.Info(ctx, "hidden %s", "info")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, "table %s has no id field", "Note")
	output := buf.String()
	assert.Contains(t, output, "table Note has no id field")
	assert.Contains(t, output, `"operation":"save"`)
	assert.Contains(t, output, `"model":"Admin"`)
}

func TestZapLogger_Trace(t *testing.T) {
	ctx := WithOperation(context.Background(), Operation{Name: "all", Model: "User"})
	var buf bytes.Buffer
	logger := NewZapLogger(newZapBuffer(&buf), Config{
		LogLevel:      Info,
		SlowThreshold: 100 * time.Millisecond,
	})

	t.Run("normal trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int64) {
			return "SELECT * FROM User ORDER BY id;", 3
		}, nil)

		output := buf.String()
		assert.Contains(t, output, "SELECT * FROM User ORDER BY id;")
		assert.Contains(t, output, `"rows":3`)
		assert.Contains(t, output, "duration")
	})

	t.Run("slow query", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now().Add(-150*time.Millisecond), func() (string, int64) {
			return "SELECT * FROM User ORDER BY id;", 1000
		}, nil)

		output := buf.String()
		assert.Contains(t, output, "SLOW SQL executed")
		assert.Contains(t, output, "slow_threshold")
	})

	t.Run("error trace", func(t *testing.T) {
		buf.Reset()
		logger.Trace(ctx, time.Now(), func() (string, int64) {
			return "SELECT * FROM Missing ORDER BY id;", -1
		}, assert.AnError)

		output := buf.String()
		assert.Contains(t, output, "SELECT * FROM Missing ORDER BY id;")
		assert.Contains(t, output, `"level":"error"`)
		assert.NotContains(t, output, `"rows"`)
	})

	t.Run("record not found ignored", func(t *testing.T) {
		buf.Reset()
		quiet := logger.LogMode(Error)
		quiet.(*ZapLogger).IgnoreRecordNotFoundError = true

		quiet.Trace(ctx, time.Now(), func() (string, int64) {
			return "SELECT * FROM User ORDER BY id;", 0
		}, ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DPanicLevel, ZapLevel(Silent))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(Error))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(Warn))
	assert.Equal(t, zapcore.InfoLevel, ZapLevel(Info))
}
