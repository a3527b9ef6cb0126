// Package rod is a dom host over a live browser page driven by go-rod.
// Every call is a round trip to the browser; transport errors panic, the
// way rod's Must helpers do, which fails the test running the call.
package rod

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"

	"github.com/huuff/dom-test-lib/dom"
)

type (
	Document struct {
		page *rod.Page
	}

	Node struct {
		doc *Document
		el  *rod.Element
	}

	Element struct {
		Node
	}

	Text struct {
		Node
	}
)

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Ticker    = (*Document)(nil)
	_ dom.Clickable = Element{}
	_ dom.Text      = Text{}
)

// NewDocument uses the document loaded in page
func NewDocument(page *rod.Page) *Document {
	return &Document{page: page}
}

func (d *Document) Page() *rod.Page {
	return d.page
}

func (d *Document) Body() dom.Element {
	return d.element(d.page.MustElement("body"))
}

func (d *Document) CreateElement(tag string) dom.Element {
	return d.element(d.page.MustElementByJS(`(t) => document.createElement(t)`, tag))
}

func (d *Document) CreateTextNode(data string) dom.Text {
	return Text{Node{d, d.page.MustElementByJS(`(s) => document.createTextNode(s)`, data)}}
}

// NextTick returns after the page rendered one frame and ran the tasks
// queued behind it.
func (d *Document) NextTick() {
	d.page.MustEval(`() => new Promise((resolve) => requestAnimationFrame(() => setTimeout(resolve, 0)))`)
}

// Wrap returns the typed dom node for a remote node of this document
func (d *Document) Wrap(el *rod.Element) dom.Node {
	node := Node{d, el}
	switch el.MustEval(`() => this.nodeType`).Int() {
	case 1:
	case 3:
		return Text{node}
	default:
		return node
	}

	e := Element{node}
	switch e.TagName() {
	case "input":
		return InputElement{e}
	case "select":
		return SelectElement{e}
	case "option":
		return OptionElement{e}
	case "button":
		return ButtonElement{e}
	case "label":
		return LabelElement{e}
	}

	return e
}

func (d *Document) element(el *rod.Element) dom.Element {
	return d.Wrap(el).(dom.Element)
}

func (d *Document) nodes(els rod.Elements) []dom.Node {
	list := make([]dom.Node, len(els))
	for i, el := range els {
		list[i] = d.Wrap(el)
	}

	return list
}

// RodElement returns the remote element behind a node of this host
func RodElement(n dom.Node) *rod.Element {
	if r, ok := n.(interface{ RodElement() *rod.Element }); ok {
		return r.RodElement()
	}

	panic(fmt.Sprintf("node of type %T does not belong to the rod host", n))
}

func (z Node) RodElement() *rod.Element {
	return z.el
}

func (z Node) Type() dom.NodeType {
	switch z.el.MustEval(`() => this.nodeType`).Int() {
	case 1:
		return dom.ElementNode
	case 3:
		return dom.TextNode
	}

	return dom.NopNode
}

func (z Node) NodeName() string {
	return strings.ToLower(z.el.MustEval(`() => this.nodeName`).String())
}

func (z Node) TextContent() string {
	return z.el.MustEval(`() => this.textContent`).String()
}

func (z Node) ChildNodes() []dom.Node {
	els, err := z.el.ElementsByJS(rod.Eval(`() => Array.from(this.childNodes)`))
	if err != nil {
		panic(err)
	}

	return z.doc.nodes(els)
}

// single runs js, which must return an array of at most one node
func (z Node) single(js string, params ...any) (dom.Element, error) {
	els, err := z.el.ElementsByJS(rod.Eval(js, params...))
	if err != nil {
		return nil, err
	}

	if len(els) == 0 {
		return nil, nil
	}

	return z.doc.element(els[0]), nil
}

func (z Node) mustSingle(js string) dom.Element {
	el, err := z.single(js)
	if err != nil {
		panic(err)
	}

	return el
}

func (z Node) ParentElement() dom.Element {
	return z.mustSingle(`() => this.parentElement ? [this.parentElement] : []`)
}

func (z Text) SetData(data string) {
	z.el.MustEval(`(s) => { this.data = s }`, data)
}

func (z Element) TagName() string {
	return strings.ToLower(z.el.MustEval(`() => this.tagName`).String())
}

func (z Element) Attr(name string) (string, bool) {
	v, err := z.el.Attribute(name)
	if err != nil {
		panic(dom.ElementError(z, err.Error()))
	}

	if v == nil {
		return "", false
	}

	return *v, true
}

func (z Element) SetAttr(name, value string) {
	z.el.MustEval(`(n, v) => this.setAttribute(n, v)`, name, value)
}

func (z Element) RemoveAttr(name string) {
	z.el.MustEval(`(n) => this.removeAttribute(n)`, name)
}

func (z Element) QuerySelector(selector string) (dom.Element, error) {
	el, err := z.single(`(s) => { const el = this.querySelector(s); return el ? [el] : [] }`, selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	return el, nil
}

func (z Element) QuerySelectorAll(selector string) ([]dom.Node, error) {
	els, err := z.el.ElementsByJS(rod.Eval(`(s) => Array.from(this.querySelectorAll(s))`, selector))
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	return z.doc.nodes(els), nil
}

func (z Element) NextElementSibling() dom.Element {
	return z.mustSingle(`() => this.nextElementSibling ? [this.nextElementSibling] : []`)
}

func (z Element) PreviousElementSibling() dom.Element {
	return z.mustSingle(`() => this.previousElementSibling ? [this.previousElementSibling] : []`)
}

func (z Element) AppendChild(child dom.Node) {
	z.el.MustEval(`(c) => { this.appendChild(c) }`, RodElement(child).Object)
}

func (z Element) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		z.AppendChild(child)
		return
	}

	z.el.MustEval(`(c, r) => { this.insertBefore(c, r) }`, RodElement(child).Object, RodElement(ref).Object)
}

func (z Element) RemoveChild(child dom.Node) {
	z.el.MustEval(`(c) => { this.removeChild(c) }`, RodElement(child).Object)
}

func (z Element) SetInnerHTML(src string) {
	z.el.MustEval(`(s) => { this.innerHTML = s }`, src)
}

func (z Element) Remove() {
	z.el.MustEval(`() => this.remove()`)
}

func (z Element) DispatchEvent(evt *dom.Event) {
	z.el.MustEval(`(t, b) => { this.dispatchEvent(new Event(t, {bubbles: b})) }`, evt.Type(), evt.Bubbles())
}

// Click runs HTMLElement.click() in the page, so there is no pointer
// movement and the element doesn't need to be visible.
func (z Element) Click() {
	z.el.MustEval(`() => this.click()`)
}
