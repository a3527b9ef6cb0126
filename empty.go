package domtest

import (
	"fmt"

	"github.com/huuff/dom-test-lib/dom"
)

type empty struct{}

// Empty is the initial state of a chain: nothing has been selected yet.
// Queries leave it usable, so one Empty can serve a whole test.
type Empty struct {
	w wrapper[empty]
}

func (e Empty) Root() dom.Element {
	return e.w.root
}

// Settle waits one settle tick, for reading the tree after an interaction
// when auto-settle is off.
func (e Empty) Settle() Empty {
	e.w.live()
	e.w.ctx.settle()
	return e
}

// Query tries to find an element by the given CSS selector
func (e Empty) Query(selector string) Maybe[dom.Element] {
	e.w.live()
	e.w.ctx.t.Helper()
	return queryIn[dom.Element](&e.w, e.w.root, selector)
}

// QueryAll finds every element matching the selector, in document order
func (e Empty) QueryAll(selector string) Many[dom.Element] {
	e.w.live()
	e.w.ctx.t.Helper()
	return queryAllIn[dom.Element](&e.w, e.w.root, selector)
}

// MustQuery finds an element by the given CSS selector, failing the test if
// it does not exist
func (e Empty) MustQuery(selector string) Single[dom.Element] {
	return e.Query(selector).AssertExists()
}

// FindByTextExact finds the first element, in document order, whose only
// child is a text node reading exactly text.
func (e Empty) FindByTextExact(text string) Maybe[dom.Element] {
	e.w.live()
	return findIn[dom.Element](&e.w, e.w.root, text)
}

func (e Empty) QueryInput(selector string) Maybe[dom.InputEl] {
	return QueryAs[dom.InputEl](e, selector)
}

func (e Empty) QuerySelect(selector string) Maybe[dom.SelectEl] {
	return QueryAs[dom.SelectEl](e, selector)
}

func (e Empty) QueryButton(selector string) Maybe[dom.ButtonEl] {
	return QueryAs[dom.ButtonEl](e, selector)
}

func (e Empty) QueryLabel(selector string) Maybe[dom.LabelEl] {
	return QueryAs[dom.LabelEl](e, selector)
}

func (e Empty) MustQueryInput(selector string) Single[dom.InputEl] {
	return e.QueryInput(selector).AssertExists()
}

func (e Empty) MustQuerySelect(selector string) Single[dom.SelectEl] {
	return e.QuerySelect(selector).AssertExists()
}

func (e Empty) MustQueryButton(selector string) Single[dom.ButtonEl] {
	return e.QueryButton(selector).AssertExists()
}

func (e Empty) MustQueryLabel(selector string) Single[dom.LabelEl] {
	return e.QueryLabel(selector).AssertExists()
}

// QueryAs tries to find an element by the given CSS selector and narrows it
// to T. A match that isn't a T fails the test immediately: that is a
// mistake in the test, not a missing element.
func QueryAs[T dom.Element](e Empty, selector string) Maybe[T] {
	e.w.live()
	e.w.ctx.t.Helper()
	return queryIn[T](&e.w, e.w.root, selector)
}

// MustQueryAs is QueryAs followed by AssertExists
func MustQueryAs[T dom.Element](e Empty, selector string) Single[T] {
	return QueryAs[T](e, selector).AssertExists()
}

// QueryAllAs finds every element matching the selector, all of which must
// be of shape T.
func QueryAllAs[T dom.Element](e Empty, selector string) Many[T] {
	e.w.live()
	e.w.ctx.t.Helper()
	return queryAllIn[T](&e.w, e.w.root, selector)
}

// FindByTextExactAs is FindByTextExact restricted to elements of shape T;
// other elements with the text are passed over.
func FindByTextExactAs[T dom.Element](e Empty, text string) Maybe[T] {
	e.w.live()
	return findIn[T](&e.w, e.w.root, text)
}

func queryIn[T dom.Element, S any](w *wrapper[S], from dom.Element, selector string) Maybe[T] {
	c := w.ctx
	c.t.Helper()

	return Maybe[T]{derive(w, func(*S) maybe[T] {
		found, err := from.QuerySelector(selector)
		if err != nil {
			c.fail(&Failure{Kind: InvalidSelector, Criterion: selector, Err: err})
		}

		m := maybe[T]{criterion: selector}
		if found != nil {
			el, ok := found.(T)
			if !ok {
				c.fail(&Failure{
					Kind:      ShapeMismatch,
					Criterion: selector,
					Expected:  shapeOf[T](),
					Actual:    dom.Describe(found),
				})
			}

			m.elem, m.ok = el, true
		}

		c.log.Debug("query", "selector", selector, "found", m.ok)
		return m
	})}
}

func queryAllIn[T dom.Element, S any](w *wrapper[S], from dom.Element, selector string) Many[T] {
	c := w.ctx
	c.t.Helper()

	return Many[T]{derive(w, func(*S) many[T] {
		nodes, err := from.QuerySelectorAll(selector)
		if err != nil {
			c.fail(&Failure{Kind: InvalidSelector, Criterion: selector, Err: err})
		}

		elems, err := Collect[T](nodes)
		if err != nil {
			f := err.(*Failure)
			f.Criterion = selector
			c.fail(f)
		}

		c.log.Debug("query all", "selector", selector, "found", len(elems))
		return many[T]{criterion: selector, elems: elems}
	})}
}

func findIn[T dom.Element, S any](w *wrapper[S], from dom.Element, text string) Maybe[T] {
	return Maybe[T]{derive(w, func(*S) maybe[T] {
		el, ok := findByTextExact[T](from, text)
		return maybe[T]{
			criterion: fmt.Sprintf("<text=%s>", text),
			elem:      el,
			ok:        ok,
		}
	})}
}

// findByTextExact searches depth first, the node itself included. A match
// is an element with a single text child equal to needle, so a container
// whose descendants merely spell needle together does not match.
func findByTextExact[T dom.Element](n dom.Node, needle string) (T, bool) {
	children := n.ChildNodes()

	if el, ok := n.(T); ok {
		if len(children) == 1 && children[0].Type() == dom.TextNode && n.TextContent() == needle {
			return el, true
		}
	}

	for _, c := range children {
		if c.Type() != dom.ElementNode {
			continue
		}

		if el, ok := findByTextExact[T](c, needle); ok {
			return el, true
		}
	}

	var zero T
	return zero, false
}
