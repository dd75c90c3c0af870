package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestZeroLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *ZeroLogger)
		want string
	}{
		{
			name: "info with field",
			log:  func(l *ZeroLogger) { l.Info("info-test", Field{Key: "key", Value: "value"}) },
			want: `"key":"value"`,
		},
		{
			name: "warn level tag",
			log:  func(l *ZeroLogger) { l.Warn("warn-test") },
			want: `"level":"warn"`,
		},
		{
			name: "error with err field",
			log:  func(l *ZeroLogger) { l.Error("error-test", Err(errors.New("boom"))) },
			want: `"err":"boom"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := NewWithWriter("development", buf)

			tt.log(log)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s in log output, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	if !strings.Contains(buf.String(), "debug-test") {
		t.Errorf("expected debug log in development, got: %s", buf.String())
	}
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	if buf.String() != "" {
		t.Errorf("expected no debug output in production, got: %s", buf.String())
	}
}
