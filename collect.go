package domtest

import (
	"github.com/huuff/dom-test-lib/dom"
)

// Collect converts a host node list into a slice of shape T, keeping the
// list's order. It fails as a whole, with a ShapeMismatch Failure, on the
// first node that isn't a T.
func Collect[T dom.Node](nodes []dom.Node) ([]T, error) {
	res := make([]T, 0, len(nodes))
	for _, n := range nodes {
		el, ok := n.(T)
		if !ok {
			return nil, &Failure{
				Kind:     ShapeMismatch,
				Expected: shapeOf[T](),
				Actual:   dom.Describe(n),
			}
		}

		res = append(res, el)
	}

	return res, nil
}
