package vdom_test

import (
	"testing"

	. "github.com/huuff/dom-test-lib/vdom"

	"github.com/stretchr/testify/suite"
)

type DiffTestSuite struct {
	suite.Suite
}

type GoDomNode struct {
	Node
}

func (n GoDomNode) Child(idx int) DomNode {
	return GoDomNode{n.Node.(*Element).Children[idx]}
}

type attrChange struct {
	remove  bool
	attr    string
	value   any
	domNode DomNode
}

type change struct {
	action Action
	dNode  GoDomNode
}

type modifier struct {
	changes     []change
	attrChanges []attrChange
	binds       int
}

func (m *modifier) recordAC(c attrChange) {
	m.attrChanges = append(m.attrChanges, c)
}

func (m *modifier) Do(d DomNode, action Action) {
	change := change{action: action}
	if d != nil {
		change.dNode = d.(GoDomNode)
	}
	m.changes = append(m.changes, change)
}

func (m *modifier) SetAttr(d DomNode, attr string, v any) {
	if b, ok := v.(bool); ok && !b {
		m.RemoveAttr(d, attr)
		return
	}

	m.recordAC(attrChange{false, attr, v, d})
}

func (m *modifier) RemoveAttr(d DomNode, attr string) {
	m.recordAC(attrChange{true, attr, nil, d})
}

func (m *modifier) Bind(DomNode, *Element, *Element) {
	m.binds++
}

func newModifier() *modifier {
	return &modifier{}
}

func (s *DiffTestSuite) TestDiff() {
	m1 := newModifier()
	a := NewElement("div", nil, nil)
	PerformDiff(a, nil, GoDomNode{NewElement("div", nil, nil)}, m1)
	s.Len(m1.changes, 1)
	s.Equal(Update, m1.changes[0].action.Type)
	s.Equal(0, m1.binds)

	b := NewElement("div", Attributes{"title": "d", "hidden": true}, []Node{
		NewTextNode("a"),
		NewElement("span", nil, nil),
	})
	a = NewElement("div", Attributes{"title": "e"}, []Node{
		NewTextNode("a"),
		NewElement("p", nil, nil),
	})

	m2 := newModifier()
	PerformDiff(a, b, GoDomNode{b}, m2)
	s.Equal([]attrChange{
		{false, "title", "e", GoDomNode{b}},
		{true, "hidden", nil, GoDomNode{b}},
	}, m2.attrChanges)
	s.Len(m2.changes, 1)
	s.Equal(Update, m2.changes[0].action.Type)
	s.Equal(a.Children[1], m2.changes[0].action.Content)
	s.Equal(b.Children[1], m2.changes[0].dNode.Node)
	s.Equal(1, m2.binds)
}

func (s *DiffTestSuite) TestDiffAttrTypes() {
	b := NewElement("input", Attributes{"size": 3, "checked": true}, nil)
	a := NewElement("input", Attributes{"size": "3", "checked": false}, nil)

	m := newModifier()
	PerformDiff(a, b, GoDomNode{b}, m)
	s.ElementsMatch([]attrChange{
		{false, "size", "3", GoDomNode{b}},
		{true, "checked", nil, GoDomNode{b}},
	}, m.attrChanges)
}

func (s *DiffTestSuite) TestDiffChildren() {
	b := NewElement("ul", nil, NewNodeList(
		NewElement("li", nil, NewNodeList("1")),
		NewElement("li", nil, NewNodeList("2")),
		NewElement("li", nil, NewNodeList("3")),
	))

	m := newModifier()
	a := NewElement("ul", nil, NewNodeList(NewElement("li", nil, NewNodeList("1"))))
	PerformDiff(a, b, GoDomNode{b}, m)
	s.Len(m.changes, 2)
	for i, c := range m.changes {
		s.Equal(Deletion, c.action.Type)
		s.Equal(i+1, c.action.Index)
		s.Equal(b.Children[i+1], c.action.Element.(GoDomNode).Node)
	}

	m = newModifier()
	a = NewElement("ul", nil, NewNodeList(b.Children, NewElement("li", nil, nil)))
	PerformDiff(a, b, GoDomNode{b}, m)
	s.Len(m.changes, 1)
	s.Equal(Insertion, m.changes[0].action.Type)
	s.Equal(-1, m.changes[0].action.Index)
}

func (s *DiffTestSuite) TestKeyedDiff() {
	li := func(key string) *Element {
		return NewElement("li", Attributes{"key": key}, nil)
	}

	b := NewElement("ul", nil, NewNodeList(li("a"), li("b"), li("c")))
	a := NewElement("ul", nil, NewNodeList(li("c"), li("x"), li("a")))

	m := newModifier()
	PerformDiff(a, b, GoDomNode{b}, m)

	var types []ActionType
	var indexes []int
	for _, c := range m.changes {
		types = append(types, c.action.Type)
		indexes = append(indexes, c.action.Index)
	}

	s.Equal([]ActionType{Deletion, Move, Insertion, Move}, types)
	s.Equal([]int{1, 0, 1, 2}, indexes)
	s.Equal(b.Children[2], m.changes[1].action.Element.(GoDomNode).Node)
	s.Equal(a.Children[1], m.changes[2].action.Content)
}

func TestDiff(t *testing.T) {
	suite.Run(t, new(DiffTestSuite))
}
