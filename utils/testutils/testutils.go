// Package testutils has helpers for testing code that fails tests: a
// Recorder stands in for *testing.T and keeps the failure to itself.
package testutils

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"
	"unicode"
)

func SpacesRemoved(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Recorder records Errorf messages and stops the calling goroutine on
// FailNow, the way *testing.T does, without failing the real test.
// Cleanups are forwarded to the real test.
type Recorder struct {
	T testing.TB

	mu       sync.Mutex
	messages []string
	failed   bool
}

func NewRecorder(t testing.TB) *Recorder {
	return &Recorder{T: t}
}

func (r *Recorder) Helper() {}

func (r *Recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *Recorder) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *Recorder) Cleanup(f func()) {
	r.T.Cleanup(f)
}

// Run calls fn on its own goroutine, so a FailNow inside it only ends fn,
// and reports whether fn ran to completion.
func (r *Recorder) Run(fn func()) (completed bool) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
		completed = true
	}()
	<-done

	return completed
}

func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Message returns every recorded message joined by newlines
func (r *Recorder) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.messages, "\n")
}
