package domtest

import (
	"github.com/huuff/dom-test-lib/dom"
)

// asShape narrows the held element to the shape an operation needs. The
// result is only meaningful when the test has not been failed.
func asShape[X dom.Element, T dom.Element](s Single[T]) X {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	x, ok := any(s.w.state).(X)
	if !ok {
		c.fail(&Failure{
			Kind:     ShapeMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Expected: shapeOf[X](),
		})
	}

	return x
}

// ChangeValue sets the value of an input, then fires change and input on
// it, like a user editing the field would.
func (s Single[T]) ChangeValue(value string) Single[T] {
	s.w.live()
	s.w.ctx.t.Helper()
	input := asShape[dom.InputEl](s)
	c := s.w.ctx

	input.SetValue(value)
	input.DispatchEvent(dom.ChangeEvent())
	input.DispatchEvent(dom.InputEvent())
	c.log.Debug("changed value", "element", dom.DebugInfo(input), "value", value)

	c.afterInteraction()
	return s
}

// AssertValueIs checks the current value of an input, select or option
func (s Single[T]) AssertValueIs(value string) Single[T] {
	s.w.live()
	c := s.w.ctx
	c.t.Helper()

	var actual string
	switch el := any(s.w.state).(type) {
	case dom.InputEl:
		actual = el.Value()
	case dom.SelectEl:
		actual = el.Value()
	case dom.OptionEl:
		actual = el.Value()
	default:
		c.fail(&Failure{
			Kind:     ShapeMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Expected: shapeOf[dom.InputEl]() + " or " + shapeOf[dom.SelectEl](),
		})
	}

	if actual != value {
		c.fail(&Failure{
			Kind:     ValueMismatch,
			Element:  dom.DebugInfo(s.w.state),
			Expected: value,
			Actual:   actual,
		})
	}

	return s
}

// SelectOpt selects the option with the given value and fires change. The
// select is left untouched when no option has that value.
func (s Single[T]) SelectOpt(value string) Single[T] {
	s.w.live()
	s.w.ctx.t.Helper()
	sel := asShape[dom.SelectEl](s)
	c := s.w.ctx

	nodes, err := sel.QuerySelectorAll("option")
	if err != nil {
		c.fail(&Failure{Kind: InvalidSelector, Criterion: "option", Err: err})
	}

	opts, err := Collect[dom.OptionEl](nodes)
	if err != nil {
		f := err.(*Failure)
		f.Element = dom.DebugInfo(sel)
		c.fail(f)
	}

	found := false
	for _, opt := range opts {
		if opt.Value() == value {
			found = true
			break
		}
	}

	if !found {
		c.fail(&Failure{
			Kind:     ValueNotFound,
			Element:  dom.DebugInfo(sel),
			Expected: value,
		})
	}

	sel.SetValue(value)
	sel.DispatchEvent(dom.ChangeEvent())
	c.log.Debug("selected option", "element", dom.DebugInfo(sel), "value", value)

	c.afterInteraction()
	return s
}

// Click runs the host's native click on the element
func (s Single[T]) Click() Single[T] {
	s.w.live()
	s.w.ctx.t.Helper()
	el := asShape[dom.Clickable](s)
	c := s.w.ctx

	el.Click()
	c.log.Debug("clicked", "element", dom.DebugInfo(el))

	c.afterInteraction()
	return s
}

// Settle waits one settle tick
func (s Single[T]) Settle() Single[T] {
	s.w.live()
	s.w.ctx.settle()
	return s
}
