package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zapcore.Level
		wantOK bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{" INFO ", zapcore.InfoLevel, true},
		{"Warn", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"fatal", zapcore.InfoLevel, false},
		{"verbose", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, ok := parseLevel(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("parseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNopAndWith(t *testing.T) {
	l := Nop().With(String("k", "v"))
	l.Info("discarded", Int("n", 1), Bool("b", true))
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
}
