// Package vdom is a small virtual DOM: views describe their markup as
// Element trees, and a Root keeps a host document in sync with the latest
// description by patching the nodes it rendered before.
package vdom

import (
	"github.com/huuff/dom-test-lib/dom"
)

type Attributes map[string]any

type Node interface {
	IsElement() bool
}

type TextNode struct {
	Data string
}

func (t *TextNode) IsElement() bool {
	return false
}

func NewTextNode(data string) *TextNode {
	return &TextNode{Data: data}
}

type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
	// Handlers maps event types to the handler run when such an event
	// reaches the rendered element.
	Handlers map[string]dom.EventHandler

	binding *binding
}

func (t *Element) IsElement() bool {
	return true
}

func NewElement(tag string, attrs Attributes, children []Node) *Element {
	return &Element{
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// On sets the handler for events of type typ and returns the element, for
// building trees inline.
func (t *Element) On(typ string, handler dom.EventHandler) *Element {
	if t.Handlers == nil {
		t.Handlers = make(map[string]dom.EventHandler)
	}
	t.Handlers[typ] = handler

	return t
}

// NewNodeList flattens elements, text nodes and node slices into one list
func NewNodeList(nodes ...any) []Node {
	var l []Node
	for _, n := range nodes {
		switch n := n.(type) {
		case []Node:
			l = append(l, n...)
		case *Element:
			l = append(l, n)
		case *TextNode:
			l = append(l, n)
		case string:
			l = append(l, NewTextNode(n))
		default:
			panic("Invalid node type")
		}
	}

	return l
}

// binding connects a rendered element to the handlers of the Element that
// currently describes it. Listeners are added once per event type and look
// the handler up on every event, so a re-render only swaps the map.
type binding struct {
	target   dom.EventTarget
	handlers map[string]dom.EventHandler
	removes  map[string]func()
}

func (b *binding) update(handlers map[string]dom.EventHandler) {
	b.handlers = handlers
	for typ := range handlers {
		if _, ok := b.removes[typ]; ok {
			continue
		}

		b.removes[typ] = b.target.AddEventListener(typ, func(evt *dom.Event) {
			if h := b.handlers[typ]; h != nil {
				h(evt)
			}
		})
	}
}

func (b *binding) release() {
	for _, remove := range b.removes {
		remove()
	}
	b.removes = map[string]func(){}
}

// bind makes el's handlers reachable from d, reusing the binding of old
// when d was rendered for it.
func bind(d dom.Node, el, old *Element) {
	if old != nil && old.binding != nil {
		el.binding = old.binding
		el.binding.update(el.Handlers)
		return
	}

	if len(el.Handlers) == 0 {
		return
	}

	target, ok := d.(dom.EventTarget)
	if !ok {
		panic(dom.ElementError(d.(dom.Element), "host can't run event handlers"))
	}

	el.binding = &binding{target: target, removes: make(map[string]func())}
	el.binding.update(el.Handlers)
}

// release drops the listeners bound anywhere in the tree
func release(n Node) {
	el, ok := n.(*Element)
	if !ok {
		return
	}

	if el.binding != nil {
		el.binding.release()
	}
	for _, c := range el.Children {
		release(c)
	}
}
