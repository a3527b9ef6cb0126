package vdom

import (
	"errors"
	"fmt"

	"github.com/huuff/dom-test-lib/dom"
)

var ErrNilRender = errors.New("component rendered nothing")

type domNode struct {
	dom.Node
}

func (d domNode) Child(i int) DomNode {
	children := d.ChildNodes()
	if i < 0 || i >= len(children) {
		return nil
	}

	return domNode{children[i]}
}

func nodeOf(d DomNode) dom.Node {
	return d.(domNode).Node
}

func elementOf(d DomNode) dom.Element {
	el, ok := nodeOf(d).(dom.Element)
	if !ok {
		panic(fmt.Sprintf("vdom: %s is not an element", dom.Describe(nodeOf(d))))
	}

	return el
}

// attrValue converts an attribute value to its markup form. The second
// result is false for attributes that must be absent.
func attrValue(attr string, v any) (string, bool) {
	switch v := v.(type) {
	case bool:
		return attr, v
	case string:
		return v, true
	case nil:
		return "", false
	}

	return fmt.Sprint(v), true
}

// patcher applies diff actions to a host document
type patcher struct {
	doc dom.Document
}

func (p patcher) render(node Node) dom.Node {
	if !node.IsElement() {
		return p.doc.CreateTextNode(node.(*TextNode).Data)
	}

	e := node.(*Element)
	d := p.doc.CreateElement(e.Tag)
	for attr, v := range e.Attrs {
		if attr == "key" {
			continue
		}

		if s, ok := attrValue(attr, v); ok {
			d.SetAttr(attr, s)
		}
	}

	for _, c := range e.Children {
		if c != nil {
			d.AppendChild(p.render(c))
		}
	}

	bind(d, e, nil)
	return d
}

func (p patcher) SetAttr(d DomNode, attr string, v any) {
	if attr == "key" {
		return
	}

	el := elementOf(d)
	if s, ok := attrValue(attr, v); ok {
		el.SetAttr(attr, s)
	} else {
		el.RemoveAttr(attr)
	}
}

func (p patcher) RemoveAttr(d DomNode, attr string) {
	elementOf(d).RemoveAttr(attr)
}

func (p patcher) Bind(d DomNode, a, b *Element) {
	bind(nodeOf(d), a, b)
}

func (p patcher) Do(d DomNode, action Action) {
	switch action.Type {
	case Deletion:
		release(action.Content)
		elementOf(d).RemoveChild(nodeOf(action.Element))

	case Insertion:
		el := elementOf(d)
		insertee := p.render(action.Content)
		if ref := d.Child(action.Index); action.Index >= 0 && ref != nil {
			el.InsertBefore(insertee, nodeOf(ref))
		} else {
			el.AppendChild(insertee)
		}

	case Move:
		el := elementOf(d)
		if ref := d.Child(action.Index); ref != nil {
			el.InsertBefore(nodeOf(action.Element), nodeOf(ref))
		} else {
			el.AppendChild(nodeOf(action.Element))
		}

	case Update:
		old := nodeOf(d)
		parent := old.ParentElement()
		if parent == nil {
			panic(fmt.Sprintf("vdom: can't replace %s, it has no parent", dom.Describe(old)))
		}

		parent.InsertBefore(p.render(action.Content), old)
		parent.RemoveChild(old)
	}
}

// Root keeps the children of a container in sync with a component
type Root struct {
	container dom.Element
	component Component
	patcher   patcher
	tree      *Element
}

// Render renders c into container, which must be empty
func Render(doc dom.Document, container dom.Element, c Component) (*Root, error) {
	tree := c.Render()
	if tree == nil {
		return nil, fmt.Errorf("rendering %T: %w", c, ErrNilRender)
	}

	r := &Root{
		container: container,
		component: c,
		patcher:   patcher{doc},
		tree:      tree,
	}
	container.AppendChild(r.patcher.render(tree))

	return r, nil
}

func (r *Root) node() dom.Node {
	children := r.container.ChildNodes()
	if len(children) == 0 {
		return nil
	}

	return children[0]
}

// Update renders the component again and patches the rendered nodes to
// match.
func (r *Root) Update() {
	if r.tree == nil {
		return
	}

	next := r.component.Render()
	if next == nil {
		panic(fmt.Sprintf("rendering %T: %v", r.component, ErrNilRender))
	}

	PerformDiff(next, r.tree, domNode{r.node()}, r.patcher)
	r.tree = next
}

// Unmount removes the rendered nodes and their handlers. The root can't be
// updated afterwards.
func (r *Root) Unmount() {
	if r.tree == nil {
		return
	}

	release(r.tree)
	if n := r.node(); n != nil {
		r.container.RemoveChild(n)
	}
	r.tree = nil
}
