// Package logger provides a small, dependency-free ring-buffered log used
// throughout the emulator core. Entries are tagged lines ("tag: message")
// rather than structured fields, matching the way the rest of the emulator
// reports events (illegal opcodes halting the CPU, cartridge file reads,
// SDL audio queue errors) without requiring a logging framework on the hot
// path.
package logger

import (
	"fmt"
	"io"
	"sync"
)

const maxEntries = 4096

type entry struct {
	tag string
	msg string
}

var (
	mu      sync.Mutex
	entries []entry
)

// Log records a tag/message pair.
func Log(tag, msg string) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{tag: tag, msg: msg})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
}

// Logf is Log with fmt.Sprintf formatting of the message.
func Logf(tag, format string, args ...interface{}) {
	Log(tag, fmt.Sprintf(format, args...))
}

// Write dumps every recorded entry to w, one "tag: message" per line.
func Write(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.msg)
	}
}

// Tail writes at most the last n entries to w.
func Tail(w io.Writer, n int) {
	mu.Lock()
	defer mu.Unlock()
	if n > len(entries) {
		n = len(entries)
	}
	for _, e := range entries[len(entries)-n:] {
		fmt.Fprintf(w, "%s: %s\n", e.tag, e.msg)
	}
}

// Clear empties the log. Used by tests that need a clean slate.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
}
