package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylo/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil)).
		With("root", "/src").
		WithGroup("unit").
		With("path", "app.scss")

	log.Warn("slow compile", "took", "2s", slog.Group("graph", "files", 3))

	assert.Equal(t, "! slow compile root=/src unit.path=app.scss unit.took=2s unit.graph.files=3\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("compiled app.scss")
	log.Error("import not found")

	assert.Equal(t, "✗ import not found\n", buf.String())
}
