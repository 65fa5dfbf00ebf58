// Package style holds the terminal palette stylo draws its log lines with.
package style

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Arrow prefixes every cause line of a wrapped error.
const Arrow = "→"

// Mark is the icon and color a log line of one level is drawn with.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

var marks = []struct {
	level slog.Level
	mark  Mark
}{
	{slog.LevelError, Mark{Icon: "✗", Color: lipgloss.Color("#D93025")}},
	{slog.LevelWarn, Mark{Icon: "!", Color: lipgloss.Color("#F59E0B")}},
	{slog.LevelInfo, Mark{Color: lipgloss.Color("#667085")}},
}

var debugMark = Mark{Icon: "●", Color: lipgloss.Color("#8B5CF6")}

// ForLevel returns the mark of the highest level that is at or below l.
func ForLevel(l slog.Level) Mark {
	for _, m := range marks {
		if l >= m.level {
			return m.mark
		}
	}
	return debugMark
}

// Label prefixes msg with the icon of m. Marks without an icon leave msg unchanged.
func (m Mark) Label(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}

// Render draws text in the color of m on out.
func (m Mark) Render(out *termenv.Output, text string) string {
	return out.String(text).Foreground(out.Color(string(m.Color))).String()
}

// Profile returns the color profile of the process environment. NO_COLOR turns colors off.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewOutput returns a termenv output on w, or on stderr when w is nil, using Profile.
func NewOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile()), termenv.WithTTY(true))
}
