package domtest

import (
	"github.com/huuff/dom-test-lib/dom"
)

const (
	criterionNext   = "<next-sibling>"
	criterionPrev   = "<prev-sibling>"
	criterionParent = "<parent>"
)

// NextElem moves to the next element sibling, skipping text nodes
func (s Single[T]) NextElem() Maybe[dom.Element] {
	return traverse(s, criterionNext, dom.Element.NextElementSibling)
}

// PrevElem moves to the previous element sibling, skipping text nodes
func (s Single[T]) PrevElem() Maybe[dom.Element] {
	return traverse(s, criterionPrev, dom.Element.PreviousElementSibling)
}

func (s Single[T]) Parent() Maybe[dom.Element] {
	return traverse(s, criterionParent, func(el dom.Element) dom.Element {
		return el.ParentElement()
	})
}

func traverse[T dom.Element](s Single[T], criterion string, step func(dom.Element) dom.Element) Maybe[dom.Element] {
	return Maybe[dom.Element]{transition(s.w, func(el T) maybe[dom.Element] {
		next := step(el)
		return maybe[dom.Element]{
			criterion: criterion,
			elem:      next,
			ok:        next != nil,
		}
	})}
}
