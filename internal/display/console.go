// internal/display/console.go
// Package display renders keyer snapshots for humans. The core only
// produces snapshots; everything about presentation lives here.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jericosergio/buzzer-morse-code-tester-ep32/internal/keyer"
)

// Tail returns the last n characters of text, prefixed with "..." when
// earlier output was dropped, either by this view or by buffer
// truncation upstream.
func Tail(text string, n int, truncated bool) string {
	clipped := len(text) > n
	if clipped {
		text = text[len(text)-n:]
	}
	if truncated || clipped {
		return "..." + text
	}
	return text
}

// Console writes a single status line per state change, suitable for a
// headless terminal.
type Console struct {
	w         io.Writer
	tailChars int
	last      string
}

// NewConsole creates a console renderer showing at most tailChars of
// committed text.
func NewConsole(w io.Writer, tailChars int) *Console {
	return &Console{w: w, tailChars: tailChars}
}

// Render draws the snapshot if it differs from the last rendered one.
func (c *Console) Render(snap keyer.Snapshot) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "u=%dms", snap.Unit.Milliseconds())
	sb.WriteString(flag(" DOT", snap.DotPressed))
	sb.WriteString(flag(" DASH", snap.DashPressed))
	sb.WriteString(flag(" OK", snap.CommitPressed))
	sb.WriteString(flag(" PLAY", snap.PlaybackActive))
	fmt.Fprintf(&sb, "  letter:%-6s", snap.Symbols)
	fmt.Fprintf(&sb, "  text:%s", Tail(snap.Text, c.tailChars, snap.Truncated))

	line := sb.String()
	if line == c.last {
		return
	}
	c.last = line
	// Redraw in place; ESC[K clears the remainder of the old line.
	fmt.Fprintf(c.w, "\r\x1b[K%s", line)
}

func flag(label string, on bool) string {
	if on {
		return label
	}
	return strings.Repeat(" ", len(label))
}
