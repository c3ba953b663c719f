package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"suprimentos/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json debug", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "debug", Format: "json"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug enabled")
		}
	})

	t.Run("console default level", func(t *testing.T) {
		l, err := New(config.LogConfig{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if l.Core().Enabled(zapcore.DebugLevel) || !l.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("expected info level")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := New(config.LogConfig{Level: "verbose"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
