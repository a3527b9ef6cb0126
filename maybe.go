package domtest

import (
	"github.com/huuff/dom-test-lib/dom"
)

type maybe[T any] struct {
	// criterion is the selector or pattern that produced this, for messages
	criterion string
	elem      T
	ok        bool
}

// Maybe is an indeterminate state: it may hold an element or it may not,
// you have to assert on it to get to a determinate state.
type Maybe[T dom.Element] struct {
	w wrapper[maybe[T]]
}

func (m Maybe[T]) Criterion() string {
	return m.w.state.criterion
}

// AssertExists runs an assertion that the element exists and promotes this
// to a Single holding it.
func (m Maybe[T]) AssertExists() Single[T] {
	m.w.live()
	c := m.w.ctx
	c.t.Helper()

	if !m.w.state.ok {
		c.fail(&Failure{Kind: NotFound, Criterion: m.w.state.criterion})
	}

	return Single[T]{transition(m.w, func(s maybe[T]) T {
		return s.elem
	})}
}

// AssertNotExists runs an assertion that the element doesn't exist. It ends
// the chain.
func (m Maybe[T]) AssertNotExists() {
	m.w.live()
	c := m.w.ctx
	c.t.Helper()

	if m.w.state.ok {
		c.fail(&Failure{
			Kind:      UnexpectedlyFound,
			Criterion: m.w.state.criterion,
			Actual:    dom.DebugInfo(m.w.state.elem),
		})
	}
}
