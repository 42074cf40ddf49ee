// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logger is a tagged, size bounded log. Consecutive identical entries
// are collapsed into one entry with a repeat count.
//
// The package level functions log to a central logger shared by the whole
// program.
//
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission implementations tell whether the caller is allowed to create log
// entries.
//
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow always permits logging.
//
var Allow Permission = allow{}

// Entry is a single log entry.
//
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	b.WriteString(": ")
	b.WriteString(e.Detail)
	if e.Repeated > 0 {
		fmt.Fprintf(&b, " (repeat x%d)", e.Repeated+1)
	}
	b.WriteByte('\n')
	return b.String()
}

// Logger is a bounded list of entries. It is safe for concurrent use.
//
type Logger struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

// NewLogger returns a logger that keeps at most maxEntries entries.
//
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Logger{maxEntries: maxEntries}
}

// Log adds an entry. detail is formatted with %v, which for errors is the
// result of Error().
//
func (l *Logger) Log(perm Permission, tag string, detail interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.add(tag, fmt.Sprintf("%v", detail))
}

// Logf adds a formatted entry.
//
func (l *Logger) Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}
	l.add(tag, fmt.Sprintf(format, args...))
}

func (l *Logger) add(tag, detail string) {
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	var e *Entry
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		e = &l.entries[n-1]
		e.Repeated++
		e.Timestamp = now
	} else {
		l.entries = append(l.entries, Entry{Timestamp: now, Tag: tag, Detail: detail})
		if len(l.entries) > l.maxEntries {
			l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.maxEntries:]...)
		}
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear removes all entries.
//
func (l *Logger) Clear() {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()
}

// Write writes all entries to w.
//
func (l *Logger) Write(w io.Writer) {
	l.Tail(w, -1)
}

// Tail writes the last n entries to w. A negative n writes all entries.
//
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-n:] {
		io.WriteString(w, e.String())
	}
}

// SetEcho echoes new entries to w as they are logged. A nil w disables
// echoing.
//
func (l *Logger) SetEcho(w io.Writer) {
	l.mu.Lock()
	l.echo = w
	l.mu.Unlock()
}

// Entries returns a copy of the current entries.
//
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// maximum number of entries in the central logger.
const maxCentral = 256

var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
//
func Log(perm Permission, tag string, detail interface{}) { central.Log(perm, tag, detail) }

// Logf adds a formatted entry to the central logger.
//
func Logf(perm Permission, tag, format string, args ...interface{}) {
	central.Logf(perm, tag, format, args...)
}

// Clear removes all entries from the central logger.
func Clear() { central.Clear() }

// Write writes the contents of the central logger to w.
func Write(w io.Writer) { central.Write(w) }

// Tail writes the last n entries of the central logger to w.
func Tail(w io.Writer, n int) { central.Tail(w, n) }

// SetEcho echoes new central log entries to w.
func SetEcho(w io.Writer) { central.SetEcho(w) }
