package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// ===== Setup Tests =====

func TestSetupDisabledProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup("disabled", &buf)

	log := Get()
	log.Info().Msg("should never appear")

	if buf.Len() != 0 {
		t.Errorf("Setup(%q) logger wrote %q, want no output", "disabled", buf.String())
	}
}

func TestSetupEmptyLevelProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup("", &buf)

	log := Get()
	log.Error().Msg("should never appear")

	if buf.Len() != 0 {
		t.Errorf("Setup(%q) logger wrote %q, want no output", "", buf.String())
	}
}

func TestSetupUnknownLevelProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup("verbose", &buf)

	log := Get()
	log.Info().Msg("should never appear")

	if buf.Len() != 0 {
		t.Errorf("Setup(%q) logger wrote %q, want no output", "verbose", buf.String())
	}
}

func TestSetupInfoWritesInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	log := Get()
	log.Info().Msg("walk finished")

	if !strings.Contains(buf.String(), "walk finished") {
		t.Errorf("info logger output = %q, want it to contain %q", buf.String(), "walk finished")
	}
}

func TestSetupInfoSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	log := Get()
	log.Debug().Msg("candidate inspected")

	if strings.Contains(buf.String(), "candidate inspected") {
		t.Errorf("info logger output = %q, want debug entries suppressed", buf.String())
	}
}

func TestSetupErrorSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup("error", &buf)

	log := Get()
	log.Info().Msg("walk finished")
	log.Error().Msg("walk failed")

	out := buf.String()
	if strings.Contains(out, "walk finished") {
		t.Errorf("error logger output = %q, want info entries suppressed", out)
	}
	if !strings.Contains(out, "walk failed") {
		t.Errorf("error logger output = %q, want it to contain %q", out, "walk failed")
	}
}

func TestSetupDebugWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)

	log := Get()
	log.Debug().Msg("candidate inspected")

	if !strings.Contains(buf.String(), "candidate inspected") {
		t.Errorf("debug logger output = %q, want it to contain %q", buf.String(), "candidate inspected")
	}
}

// ===== Component Tagging Tests =====

func TestWithComponentTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	log := WithComponent("scanner")
	log.Info().Msg("walk finished")

	if !strings.Contains(buf.String(), "scanner") {
		t.Errorf("component logger output = %q, want it to contain %q", buf.String(), "scanner")
	}
}

func TestWithComponentBeforeSetupIsSafe(t *testing.T) {
	var buf bytes.Buffer
	Setup("disabled", &buf)

	// Must not panic even while diagnostics are off.
	log := WithComponent("cleaner")
	log.Debug().Str("path", "/tmp/x").Msg("deleted")

	if buf.Len() != 0 {
		t.Errorf("disabled component logger wrote %q, want no output", buf.String())
	}
}

// ===== Level Parsing Tests =====

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"disabled", "disabled", zerolog.Disabled},
		{"empty", "", zerolog.Disabled},
		{"mixed case", "DeBuG", zerolog.DebugLevel},
		{"unknown", "trace", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
