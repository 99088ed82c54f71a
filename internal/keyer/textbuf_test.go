package keyer

import (
	"strings"
	"testing"
)

func TestTextBuffer_AppendWithinLimit(t *testing.T) {
	b := newTextBuffer(10)
	for _, c := range "HELLO" {
		b.Append(c)
	}
	if got := b.String(); got != "HELLO" {
		t.Errorf("String() = %q, want %q", got, "HELLO")
	}
	if b.Truncated() {
		t.Error("Truncated() = true, want false below limit")
	}
}

func TestTextBuffer_OverflowTrimsOldest(t *testing.T) {
	b := newTextBuffer(5)
	for _, c := range "ABCDEFGH" {
		b.Append(c)
		if b.Len() > 5 {
			t.Fatalf("Len() = %d, want <= 5", b.Len())
		}
	}
	if got := b.String(); got != "DEFGH" {
		t.Errorf("String() = %q, want %q", got, "DEFGH")
	}
	if !b.Truncated() {
		t.Error("Truncated() = false, want true after overflow")
	}
	// The flag is sticky until Clear.
	b.Append('I')
	if !b.Truncated() {
		t.Error("Truncated() = false, want flag to stick")
	}
}

func TestTextBuffer_AppendSpaceIfNeeded(t *testing.T) {
	b := newTextBuffer(20)
	b.AppendSpaceIfNeeded()
	if got := b.String(); got != "" {
		t.Errorf("String() = %q, want empty (no space on empty buffer)", got)
	}
	b.Append('A')
	b.AppendSpaceIfNeeded()
	b.AppendSpaceIfNeeded()
	if got := b.String(); got != "A " {
		t.Errorf("String() = %q, want %q", got, "A ")
	}
	if strings.Contains(b.String(), "  ") {
		t.Errorf("String() = %q contains adjacent spaces", b.String())
	}
}

func TestTextBuffer_Clear(t *testing.T) {
	b := newTextBuffer(3)
	for _, c := range "ABCDE" {
		b.Append(c)
	}
	b.Clear()
	if got := b.String(); got != "" {
		t.Errorf("String() = %q, want empty after Clear", got)
	}
	if b.Truncated() {
		t.Error("Truncated() = true after Clear, want false")
	}
}
