package domtest

import (
	"iter"
	"slices"
	"strconv"

	"github.com/huuff/dom-test-lib/dom"
)

type many[T any] struct {
	criterion string
	elems     []T
}

// Many holds every element a query matched, in document order. It can only
// be inspected: there's no way back to a Single from here.
type Many[T dom.Element] struct {
	w wrapper[many[T]]
}

func (m Many[T]) Criterion() string {
	return m.w.state.criterion
}

func (m Many[T]) Len() int {
	return len(m.w.state.elems)
}

// Elems returns a copy of the matched elements
func (m Many[T]) Elems() []T {
	return slices.Clone(m.w.state.elems)
}

func (m Many[T]) All() iter.Seq2[int, T] {
	return slices.All(m.w.state.elems)
}

func (m Many[T]) AssertLen(n int) Many[T] {
	m.w.live()
	c := m.w.ctx
	c.t.Helper()

	if len(m.w.state.elems) != n {
		c.fail(&Failure{
			Kind:      CountMismatch,
			Criterion: m.w.state.criterion,
			Expected:  strconv.Itoa(n),
			Actual:    strconv.Itoa(len(m.w.state.elems)),
		})
	}

	return m
}
