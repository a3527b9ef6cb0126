package domtest

import (
	"strings"

	"github.com/huuff/dom-test-lib/dom"
)

// Single is a determinate state holding exactly one element of shape T
type Single[T dom.Element] struct {
	w wrapper[T]
}

// Elem returns the underlying element, for whatever the wrapper doesn't
// cover
func (s Single[T]) Elem() T {
	return s.w.state
}

// Root returns the root the chain started at, for starting over
func (s Single[T]) Root() Empty {
	s.w.live()
	return Empty{wrapper[empty]{root: s.w.root, ctx: s.w.ctx}}
}

func (s Single[T]) AssertTextIs(text string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	if actual := s.w.state.TextContent(); actual != text {
		c.fail(&Failure{
			Kind:     TextMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Expected: text,
			Actual:   actual,
		})
	}

	return s
}

func (s Single[T]) AssertTextContains(text string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	if actual := s.w.state.TextContent(); !strings.Contains(actual, text) {
		c.fail(&Failure{
			Kind:     TextMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Negated:  true,
			Expected: text,
			Actual:   actual,
		})
	}

	return s
}

// AssertClassContains checks the raw class attribute as a string, so
// "btn" is found in "btn-primary".
func (s Single[T]) AssertClassContains(class string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	if actual := s.class(); !strings.Contains(actual, class) {
		c.fail(&Failure{
			Kind:     ClassAssertionFailed,
			Element:  dom.DebugInfo(s.w.state),
			Expected: class,
			Actual:   actual,
		})
	}

	return s
}

// AssertClassNotContains passes when class appears nowhere in the class
// attribute. An element with no class attribute passes.
func (s Single[T]) AssertClassNotContains(class string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	if actual := s.class(); strings.Contains(actual, class) {
		c.fail(&Failure{
			Kind:     ClassAssertionFailed,
			Element:  dom.DebugInfo(s.w.state),
			Negated:  true,
			Expected: class,
			Actual:   actual,
		})
	}

	return s
}

func (s Single[T]) class() string {
	class, _ := s.w.state.Attr("class")
	return class
}

// AssertAttrIs checks that the attribute is present and equal to value
func (s Single[T]) AssertAttrIs(name, value string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	actual, ok := s.w.state.Attr(name)
	if !ok || actual != value {
		got := "missing"
		if ok {
			got = "`" + actual + "`"
		}

		c.fail(&Failure{
			Kind:      AttrMismatch,
			Criterion: name,
			Element:   dom.DebugInfo(s.w.state),
			Expected:  value,
			Actual:    got,
		})
	}

	return s
}

// Query searches the subtree of this element
func (s Single[T]) Query(selector string) Maybe[dom.Element] {
	s.w.live()
	s.w.ctx.t.Helper()
	return queryIn[dom.Element](&s.w, s.w.state, selector)
}

func (s Single[T]) QueryAll(selector string) Many[dom.Element] {
	s.w.live()
	s.w.ctx.t.Helper()
	return queryAllIn[dom.Element](&s.w, s.w.state, selector)
}

// FindByTextExact searches this element and its subtree
func (s Single[T]) FindByTextExact(text string) Maybe[dom.Element] {
	s.w.live()
	return findIn[dom.Element](&s.w, s.w.state, text)
}

// On registers a handler for events of type typ fired on or bubbling
// through this element. The handler is removed when the test ends. Hosts
// that can't run Go handlers fail the test.
func (s Single[T]) On(typ string, handler dom.EventHandler) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	target, ok := any(s.w.state).(dom.EventTarget)
	if !ok {
		c.fail(&Failure{
			Kind:     ShapeMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Expected: shapeOf[dom.EventTarget](),
		})
	}

	c.t.Cleanup(target.AddEventListener(typ, handler))
	return s
}
