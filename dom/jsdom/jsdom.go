//go:build js

// Package jsdom is the dom host for GopherJS builds, talking to the
// document of the page the test bundle runs in.
package jsdom

import (
	"fmt"
	"strings"
	"time"

	"github.com/gopherjs/gopherjs/js"

	"github.com/huuff/dom-test-lib/dom"
)

// SettleDelay is how long NextTick waits for the page's scheduler
const SettleDelay = 25 * time.Millisecond

type (
	Document struct {
		Node
	}

	Node struct {
		*js.Object
	}

	Element struct {
		Node
	}

	Text struct {
		Node
	}
)

var (
	_ dom.Document    = Document{}
	_ dom.Ticker      = Document{}
	_ dom.Clickable   = Element{}
	_ dom.EventTarget = Element{}
	_ dom.Text        = Text{}
)

// GetDocument returns the page's document
func GetDocument() Document {
	if js.Global == nil || js.Global.Get("document") == js.Undefined {
		panic("jsdom package can only be used in browser environment")
	}

	return Document{Node{js.Global.Get("document")}}
}

func isNull(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

func (d Document) Body() dom.Element {
	return wrapElement(d.Get("body"))
}

func (d Document) CreateElement(tag string) dom.Element {
	return wrapElement(d.Call("createElement", tag))
}

func (d Document) CreateTextNode(data string) dom.Text {
	return Text{Node{d.Call("createTextNode", data)}}
}

// NextTick gives the page's scheduler SettleDelay to run its effects
func (d Document) NextTick() {
	done := make(chan struct{})
	js.Global.Call("setTimeout", func() {
		close(done)
	}, SettleDelay.Milliseconds())
	<-done
}

// Wrap returns the typed dom node for a js node
func Wrap(o *js.Object) dom.Node {
	if isNull(o) {
		return nil
	}

	node := Node{o}
	switch o.Get("nodeType").Int() {
	case 1:
	case 3:
		return Text{node}
	default:
		return node
	}

	el := Element{node}
	switch el.TagName() {
	case "input":
		return InputElement{el}
	case "select":
		return SelectElement{el}
	case "option":
		return OptionElement{el}
	case "button":
		return ButtonElement{el}
	case "label":
		return LabelElement{el}
	}

	return el
}

func wrapElement(o *js.Object) dom.Element {
	if isNull(o) {
		return nil
	}

	return Wrap(o).(dom.Element)
}

func nodeList(jslist *js.Object) []dom.Node {
	n := jslist.Length()
	l := make([]dom.Node, 0, n)
	for i := 0; i < n; i++ {
		l = append(l, Wrap(jslist.Index(i)))
	}

	return l
}

func object(n dom.Node) *js.Object {
	if o, ok := n.(interface{ JS() *js.Object }); ok {
		return o.JS()
	}

	panic(fmt.Sprintf("node of type %T does not belong to the jsdom host", n))
}

func (z Node) JS() *js.Object {
	return z.Object
}

func (z Node) Type() dom.NodeType {
	switch z.Get("nodeType").Int() {
	case 1:
		return dom.ElementNode
	case 3:
		return dom.TextNode
	}

	return dom.NopNode
}

func (z Node) NodeName() string {
	return strings.ToLower(z.Get("nodeName").String())
}

func (z Node) TextContent() string {
	return z.Get("textContent").String()
}

func (z Node) ChildNodes() []dom.Node {
	return nodeList(z.Get("childNodes"))
}

func (z Node) ParentElement() dom.Element {
	return wrapElement(z.Get("parentElement"))
}

func (z Text) SetData(data string) {
	z.Set("data", data)
}

func (z Element) TagName() string {
	return strings.ToLower(z.Get("tagName").String())
}

func (z Element) Attr(name string) (string, bool) {
	v := z.Call("getAttribute", name)
	if isNull(v) {
		return "", false
	}

	return v.String(), true
}

func (z Element) SetAttr(name, value string) {
	z.Call("setAttribute", name, value)
}

func (z Element) RemoveAttr(name string) {
	z.Call("removeAttribute", name)
}

// catch turns the SyntaxError a bad selector throws into an error
func catch(selector string, err *error) {
	if e := recover(); e != nil {
		jsErr, ok := e.(*js.Error)
		if !ok {
			panic(e)
		}

		*err = fmt.Errorf("invalid selector %q: %w", selector, jsErr)
	}
}

func (z Element) QuerySelector(selector string) (el dom.Element, err error) {
	defer catch(selector, &err)
	return wrapElement(z.Call("querySelector", selector)), nil
}

func (z Element) QuerySelectorAll(selector string) (nodes []dom.Node, err error) {
	defer catch(selector, &err)
	return nodeList(z.Call("querySelectorAll", selector)), nil
}

func (z Element) NextElementSibling() dom.Element {
	return wrapElement(z.Get("nextElementSibling"))
}

func (z Element) PreviousElementSibling() dom.Element {
	return wrapElement(z.Get("previousElementSibling"))
}

func (z Element) AppendChild(child dom.Node) {
	z.Call("appendChild", object(child))
}

func (z Element) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		z.AppendChild(child)
		return
	}

	z.Call("insertBefore", object(child), object(ref))
}

func (z Element) RemoveChild(child dom.Node) {
	z.Call("removeChild", object(child))
}

func (z Element) SetInnerHTML(src string) {
	z.Set("innerHTML", src)
}

func (z Element) Remove() {
	z.Call("remove")
}

func (z Element) DispatchEvent(evt *dom.Event) {
	opts := js.M{"bubbles": evt.Bubbles()}
	native := js.Global.Get("Event").New(evt.Type(), opts)
	z.Call("dispatchEvent", native)
}

func (z Element) Click() {
	z.Call("click")
}

// AddEventListener runs handler for native events. Stopping propagation
// or preventing the default on the dom.Event is forwarded to the native
// event once handler returns.
func (z Element) AddEventListener(typ string, handler dom.EventHandler) func() {
	listener := func(native *js.Object) {
		evt := dom.NewEvent(typ, native.Get("bubbles").Bool())
		evt.Begin(wrapElement(native.Get("target")))
		evt.At(wrapElement(native.Get("currentTarget")))
		handler(evt)

		if evt.PropagationStopped() {
			native.Call("stopPropagation")
		}
		if evt.DefaultPrevented() {
			native.Call("preventDefault")
		}
	}

	z.Call("addEventListener", typ, listener)
	return func() {
		z.Call("removeEventListener", typ, listener)
	}
}
