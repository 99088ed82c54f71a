// internal/keyer/textbuf.go
package keyer

import "strings"

// TextBuffer accumulates decoded output up to a fixed limit. Overflow
// drops the oldest characters and sets a sticky truncated flag that only
// Clear resets.
type TextBuffer struct {
	limit     int
	text      string
	truncated bool
}

func newTextBuffer(limit int) *TextBuffer {
	return &TextBuffer{limit: limit}
}

// Append adds one character, trimming from the front if the limit is
// exceeded.
func (b *TextBuffer) Append(c rune) {
	b.text += string(c)
	b.trimToLimit()
}

// AppendSpaceIfNeeded adds a separating space unless the buffer is empty
// or already ends in one, so two adjacent spaces never occur.
func (b *TextBuffer) AppendSpaceIfNeeded() {
	if b.text == "" || strings.HasSuffix(b.text, " ") {
		return
	}
	b.text += " "
	b.trimToLimit()
}

func (b *TextBuffer) trimToLimit() {
	if len(b.text) > b.limit {
		b.text = b.text[len(b.text)-b.limit:]
		b.truncated = true
	}
}

// Clear empties the buffer and resets the truncated flag.
func (b *TextBuffer) Clear() {
	b.text = ""
	b.truncated = false
}

// String returns the committed text.
func (b *TextBuffer) String() string { return b.text }

// Len returns the committed text length in characters.
func (b *TextBuffer) Len() int { return len(b.text) }

// Truncated reports whether overflow trimming has occurred since the
// last Clear.
func (b *TextBuffer) Truncated() bool { return b.truncated }
