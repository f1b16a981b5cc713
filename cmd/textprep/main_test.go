package main

import (
	"log/slog"
	"testing"

	"GoTextPrep/internal/testutil"
)

func TestDemoTextMatchesFixture(t *testing.T) {
	if demoText != testutil.DemoText {
		t.Error("demoText has drifted from testutil.DemoText")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
