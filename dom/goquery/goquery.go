// Package goquery is an in-memory dom host backed by golang.org/x/net/html
// trees and goquery selections. It needs no browser, so component tests
// using it run under a plain `go test`.
package goquery

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/huuff/dom-test-lib/dom"
	"github.com/huuff/dom-test-lib/utils/htmlutils"
)

const (
	emptyDocument = `<html><head></head><body></body></html>`
)

type (
	// Document owns a parsed tree plus the state a browser would keep
	// outside of it: event listeners, script-set selectedness and the
	// deferred task queue.
	Document struct {
		root      *html.Node
		listeners map[*html.Node]map[string][]*listener
		dirty     map[*html.Node]bool
		queue     []func()
	}

	Node struct {
		doc  *Document
		node *html.Node
	}

	Element struct {
		Node
	}

	Text struct {
		Node
	}
)

var (
	_ dom.Document    = (*Document)(nil)
	_ dom.Ticker      = (*Document)(nil)
	_ dom.Clickable   = Element{}
	_ dom.EventTarget = Element{}
	_ dom.Text        = Text{}
)

// NewDocument creates an empty document with a head and a body
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader(emptyDocument))
	if err != nil {
		panic(err)
	}

	return doc
}

// ParseDocument parses a full html document
func ParseDocument(source io.Reader) (*Document, error) {
	root, err := html.Parse(source)
	if err != nil {
		return nil, err
	}

	return &Document{
		root:      root,
		listeners: make(map[*html.Node]map[string][]*listener),
		dirty:     make(map[*html.Node]bool),
	}, nil
}

func (d *Document) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(d.root).Selection
}

func (d *Document) Body() dom.Element {
	body := d.selection().Find("body")
	if body.Length() == 0 {
		panic("document has no body")
	}

	return d.element(body.Nodes[0])
}

func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.element(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func (d *Document) CreateTextNode(data string) dom.Text {
	return Text{Node{d, &html.Node{Type: html.TextNode, Data: data}}}
}

// Wrap returns the typed dom node for an html node of this document:
// form controls get their shape types, other elements are plain Elements.
func (d *Document) Wrap(n *html.Node) dom.Node {
	base := Node{d, n}
	switch n.Type {
	case html.TextNode:
		return Text{base}
	case html.ElementNode:
	default:
		return base
	}

	el := Element{base}
	switch n.DataAtom {
	case atom.Input:
		return InputElement{el}
	case atom.Select:
		return SelectElement{el}
	case atom.Option:
		return OptionElement{el}
	case atom.Button:
		return ButtonElement{el}
	case atom.Label:
		return LabelElement{el}
	}

	return el
}

func (d *Document) element(n *html.Node) dom.Element {
	return d.Wrap(n).(dom.Element)
}

func (d *Document) nodes(ns []*html.Node) []dom.Node {
	list := make([]dom.Node, len(ns))
	for i, n := range ns {
		list[i] = d.Wrap(n)
	}

	return list
}

// Render serializes a node and its subtree
func Render(n dom.Node) string {
	return htmlutils.Render(HTMLNode(n))
}

// HTMLNode returns the html node behind a node of this host
func HTMLNode(n dom.Node) *html.Node {
	if nn, ok := n.(interface{ HTMLNode() *html.Node }); ok {
		return nn.HTMLNode()
	}

	panic(fmt.Sprintf("node of type %T does not belong to the goquery host", n))
}

func (z Node) HTMLNode() *html.Node {
	return z.node
}

func (z Node) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(z.node).Selection
}

func (z Node) Type() dom.NodeType {
	switch z.node.Type {
	case html.ElementNode:
		return dom.ElementNode
	case html.TextNode:
		return dom.TextNode
	}

	return dom.NopNode
}

func (z Node) NodeName() string {
	switch z.node.Type {
	case html.ElementNode:
		return strings.ToLower(z.node.Data)
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	case html.DocumentNode:
		return "#document"
	}

	return ""
}

func (z Node) TextContent() string {
	switch z.node.Type {
	case html.TextNode, html.CommentNode:
		return z.node.Data
	}

	return z.selection().Text()
}

func (z Node) ChildNodes() []dom.Node {
	var list []dom.Node
	for c := z.node.FirstChild; c != nil; c = c.NextSibling {
		list = append(list, z.doc.Wrap(c))
	}

	return list
}

func (z Node) ParentElement() dom.Element {
	p := z.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}

	return z.doc.element(p)
}

func (z Text) SetData(data string) {
	z.node.Data = data
}

func (z Element) TagName() string {
	return strings.ToLower(z.node.Data)
}

func (z Element) Attr(name string) (string, bool) {
	return z.selection().Attr(strings.ToLower(name))
}

func (z Element) SetAttr(name, value string) {
	z.selection().SetAttr(strings.ToLower(name), value)
}

func (z Element) RemoveAttr(name string) {
	z.selection().RemoveAttr(strings.ToLower(name))
}

func (z Element) hasAttr(name string) bool {
	_, ok := z.Attr(name)
	return ok
}

func compile(selector string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	return m, nil
}

func (z Element) QuerySelector(selector string) (dom.Element, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}

	found := z.selection().FindMatcher(m)
	if found.Length() == 0 {
		return nil, nil
	}

	return z.doc.element(found.Nodes[0]), nil
}

func (z Element) QuerySelectorAll(selector string) ([]dom.Node, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}

	return z.doc.nodes(z.selection().FindMatcher(m).Nodes), nil
}

func (z Element) sibling(sel *goquery.Selection) dom.Element {
	if sel.Length() == 0 {
		return nil
	}

	return z.doc.element(sel.Nodes[0])
}

func (z Element) NextElementSibling() dom.Element {
	return z.sibling(z.selection().Next())
}

func (z Element) PreviousElementSibling() dom.Element {
	return z.sibling(z.selection().Prev())
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func (z Element) AppendChild(child dom.Node) {
	c := HTMLNode(child)
	detach(c)
	z.node.AppendChild(c)
}

func (z Element) InsertBefore(child, ref dom.Node) {
	if ref == nil {
		z.AppendChild(child)
		return
	}

	c, r := HTMLNode(child), HTMLNode(ref)
	if c == r {
		return
	}

	detach(c)
	z.node.InsertBefore(c, r)
}

func (z Element) RemoveChild(child dom.Node) {
	c := HTMLNode(child)
	z.node.RemoveChild(c)
	z.doc.forget(c)
}

func (z Element) SetInnerHTML(src string) {
	nodes, err := htmlutils.ParseFragment(strings.NewReader(src), z.node)
	if err != nil {
		panic(dom.ElementError(z, err.Error()))
	}

	for c := z.node.FirstChild; c != nil; c = z.node.FirstChild {
		z.node.RemoveChild(c)
		z.doc.forget(c)
	}

	for _, n := range nodes {
		z.node.AppendChild(n)
	}
}

func (z Element) Remove() {
	detach(z.node)
	z.doc.forget(z.node)
}

func (z Element) DispatchEvent(evt *dom.Event) {
	z.doc.dispatch(z, evt)
}

// Click runs the element's activation behavior, then fires click
func (z Element) Click() {
	z.doc.click(z)
}

func (z Element) AddEventListener(typ string, handler dom.EventHandler) func() {
	return z.doc.listen(z.node, typ, handler)
}
