package style_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylo/internal/ui/style"
)

func TestForLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		label string
	}{
		{slog.LevelError + 4, "✗ failed"},
		{slog.LevelError, "✗ failed"},
		{slog.LevelWarn, "! failed"},
		{slog.LevelInfo, "failed"},
		{slog.LevelInfo + 1, "failed"},
		{slog.LevelDebug, "● failed"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.label, style.ForLevel(tt.level).Label("failed"))
		})
	}
}

func TestProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, style.Profile())
}

func TestRender_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	out := style.NewOutput(&buf)

	assert.Equal(t, "compiled", style.ForLevel(slog.LevelError).Render(out, "compiled"))
}

func TestRender_TrueColor(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))

	got := style.ForLevel(slog.LevelError).Render(out, "compiled")
	assert.Contains(t, got, "compiled")
	assert.NotEqual(t, "compiled", got)
}

func TestNewOutput_Nil(t *testing.T) {
	assert.NotNil(t, style.NewOutput(nil))
}
