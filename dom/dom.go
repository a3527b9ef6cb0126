// Package dom declares the host DOM contract the test wrapper talks to.
//
// A host (an in-memory tree, a GopherJS document, a remote browser page)
// implements Document and returns nodes whose concrete types satisfy the
// shape interfaces below, so that a generic node can be narrowed with a
// plain type assertion.
package dom

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrorCantGetTagName    = errors.New("not an element node, can't get tag name")
	ErrorNoElementSelected = errors.New("no element selected")
)

type NodeType int

const (
	NopNode NodeType = iota
	ElementNode
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	}

	return "nop"
}

type (
	Node interface {
		Type() NodeType
		// NodeName is the lower-case tag name for elements and "#text" for
		// text nodes.
		NodeName() string
		TextContent() string
		ChildNodes() []Node
		// ParentElement returns nil when the parent is missing or is not an
		// element.
		ParentElement() Element
	}

	Element interface {
		Node
		TagName() string
		Attr(name string) (string, bool)
		SetAttr(name, value string)
		RemoveAttr(name string)

		// QuerySelector returns a nil Element and a nil error when nothing
		// under this element matches. The error is only for selectors the
		// host can't parse.
		QuerySelector(selector string) (Element, error)
		QuerySelectorAll(selector string) ([]Node, error)

		NextElementSibling() Element
		PreviousElementSibling() Element

		AppendChild(child Node)
		InsertBefore(child, ref Node)
		RemoveChild(child Node)
		SetInnerHTML(src string)
		Remove()

		DispatchEvent(evt *Event)
	}

	Text interface {
		Node
		SetData(data string)
	}

	Document interface {
		Body() Element
		CreateElement(tag string) Element
		CreateTextNode(data string) Text
	}

	// EventTarget is implemented by hosts that can run Go handlers for
	// events fired in their tree.
	EventTarget interface {
		AddEventListener(typ string, handler EventHandler) (remove func())
	}

	// Ticker is the settle primitive: NextTick returns once the host (or a
	// framework) had one chance to run the effects queued so far.
	Ticker interface {
		NextTick()
	}
)

// Shapes. Each carries at least one method that only its element kind has,
// so a host element satisfies exactly the shapes of its tag.
type (
	Clickable interface {
		Element
		Click()
	}

	InputEl interface {
		Clickable
		Value() string
		SetValue(value string)
		Checked() bool
		SetChecked(checked bool)
		InputType() string
		Disabled() bool
	}

	SelectEl interface {
		Element
		Value() string
		SetValue(value string)
		SelectedIndex() int
		Disabled() bool
	}

	OptionEl interface {
		Element
		Value() string
		Selected() bool
	}

	ButtonEl interface {
		Clickable
		ButtonType() string
		Disabled() bool
	}

	LabelEl interface {
		Clickable
		HtmlFor() string
	}
)

// DebugInfo describes an element by tag, id and ancestor path, e.g.
// "span#found (html>body>section>div>)".
func DebugInfo(el Element) string {
	if el == nil {
		return "<nil>"
	}

	str := el.TagName()
	if id, ok := el.Attr("id"); ok && id != "" {
		str += "#" + id
	}

	var parents []string
	for p := el.ParentElement(); p != nil; p = p.ParentElement() {
		parents = append(parents, p.TagName())
	}

	str += " ("
	for j := len(parents) - 1; j >= 0; j-- {
		str += parents[j] + ">"
	}
	str += ")"

	return str
}

// ElementError returns an error with DebugInfo on the element
func ElementError(el Element, errstr string) error {
	return fmt.Errorf("error on element {%v}: %v", DebugInfo(el), errstr)
}

// Describe is a short DebugInfo for nodes of any kind, used in messages
// where the ancestor path would be noise.
func Describe(n Node) string {
	if n == nil {
		return "<nil>"
	}

	switch n.Type() {
	case ElementNode:
		if el, ok := n.(Element); ok {
			s := "<" + el.TagName()
			if id, ok := el.Attr("id"); ok && id != "" {
				s += "#" + id
			}
			return s + ">"
		}
	case TextNode:
		return fmt.Sprintf("#text %q", strings.TrimSpace(n.TextContent()))
	}

	return n.NodeName()
}
