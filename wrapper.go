// Package domtest is a typed DOM query helper for component tests.
//
// A test mounts a view into an isolated root and walks it through wrappers
// whose type says how much has been resolved so far:
//
//	e := domtest.MountHTML(t, `<span id="e">hi</span>`)
//	e.Query("#e").AssertExists().AssertTextIs("hi")
//
// Empty can only query, Maybe can only be asserted on, and Single (which
// only AssertExists can produce) carries the assertions, interactions and
// traversals. Every failed check fails the test right away with a message
// naming the selector or element involved.
package domtest

import (
	"log/slog"

	"github.com/stretchr/testify/require"

	"github.com/huuff/dom-test-lib/dom"
)

// TestingT is the part of *testing.T the wrappers need
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
	Cleanup(func())
}

// testContext is shared by every wrapper of a chain. It keeps the
// framework context reachable for as long as a wrapper is.
type testContext struct {
	t       TestingT
	fw      Context
	tickers []dom.Ticker
	opts    options
	log     *slog.Logger
}

func newTestContext(t TestingT, fw Context, opts options, tickers ...dom.Ticker) *testContext {
	ctx := &testContext{
		t:    t,
		fw:   fw,
		opts: opts,
		log:  opts.logger,
	}

	ctx.tickers = append(ctx.tickers, tickers...)
	ctx.tickers = append(ctx.tickers, opts.tickers...)
	if tk, ok := fw.(dom.Ticker); ok {
		ctx.tickers = append(ctx.tickers, tk)
	}

	return ctx
}

func (c *testContext) fail(f *Failure) {
	c.t.Helper()
	c.log.Debug("assertion failed", "kind", f.Kind.String(), "error", f.Error())
	require.FailNow(c.t, f.Error())
}

// settle waits one tick on the host, then on the framework
func (c *testContext) settle() {
	for _, tk := range c.tickers {
		tk.NextTick()
	}
	c.log.Debug("settled", "tickers", len(c.tickers))
}

func (c *testContext) afterInteraction() {
	if c.opts.autoSettle {
		c.settle()
	}
}

// wrapper is the carrier every state type embeds. The root and the context
// never change along a chain; only the state does.
type wrapper[S any] struct {
	root  dom.Element
	state S
	ctx   *testContext
}

func (w *wrapper[S]) live() {
	if w.ctx == nil {
		panic("domtest: wrapper used before being resolved, obtain it from Mount, WithRoot or AssertExists")
	}
}

// derive builds a wrapper for a new state out of the current one, leaving
// the current wrapper usable.
func derive[S, N any](w *wrapper[S], f func(*S) N) wrapper[N] {
	w.live()
	return wrapper[N]{
		root:  w.root,
		state: f(&w.state),
		ctx:   w.ctx,
	}
}

// transition consumes a wrapper into one for a new state
func transition[S, N any](w wrapper[S], f func(S) N) wrapper[N] {
	w.live()
	return wrapper[N]{
		root:  w.root,
		state: f(w.state),
		ctx:   w.ctx,
	}
}

// WithRoot starts a chain over an element that is already in a document.
// ctx may be nil when there is nothing to release; it is unmounted when
// the test ends.
func WithRoot(t TestingT, root dom.Element, ctx Context, opts ...Option) Empty {
	o := newOptions(opts)
	if ctx == nil {
		ctx = noopContext{}
	}

	tc := newTestContext(t, ctx, o)
	t.Cleanup(ctx.Unmount)

	return Empty{wrapper[empty]{root: root, ctx: tc}}
}
