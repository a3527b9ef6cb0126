package vdom

// Component is a view that can describe itself at any time. Render is
// called again on every update, and what it returns is diffed against
// the previous description.
type Component interface {
	Render() *Element
}

// ComponentFunc adapts a plain function to Component
type ComponentFunc func() *Element

func (f ComponentFunc) Render() *Element {
	return f()
}
