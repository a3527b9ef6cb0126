package vdom

import (
	"fmt"
	"sort"
)

type TreeModifier interface {
	SetAttr(DomNode, string, any)
	RemoveAttr(DomNode, string)
	Do(DomNode, Action)
	// Bind points the handlers of the rendered node at a, which replaces
	// b (nil on first render) as its description.
	Bind(d DomNode, a, b *Element)
}

type DomNode interface {
	Child(int) DomNode
}

func nodeCompat(a, b Node) bool {
	aie, bie := a.IsElement(), b.IsElement()
	if aie != bie {
		return false
	}

	if aie {
		return a.(*Element).Tag == b.(*Element).Tag
	}

	return a.(*TextNode).Data == b.(*TextNode).Data
}

// equals returns true iff x and y are equal according to Go's
// linguistic equivalence relation for their (identical) dynamic type.
func equals(x, y any) bool {
	switch x := x.(type) {
	case bool:
		return x == y.(bool)
	case int:
		return x == y.(int)
	case int8:
		return x == y.(int8)
	case int16:
		return x == y.(int16)
	case int32:
		return x == y.(int32)
	case int64:
		return x == y.(int64)
	case uint:
		return x == y.(uint)
	case uint8:
		return x == y.(uint8)
	case uint16:
		return x == y.(uint16)
	case uint32:
		return x == y.(uint32)
	case uint64:
		return x == y.(uint64)
	case uintptr:
		return x == y.(uintptr)
	case float32:
		return x == y.(float32)
	case float64:
		return x == y.(float64)
	case complex64:
		return x == y.(complex64)
	case complex128:
		return x == y.(complex128)
	case string:
		return x == y.(string)
	}

	panic(fmt.Sprintf("comparing uncomparable type %T", x))
}

func sameAttr(va, vb any) bool {
	if fmt.Sprintf("%T", va) != fmt.Sprintf("%T", vb) {
		return false
	}

	return equals(va, vb)
}

func diffProps(a, b *Element, dNode DomNode, m TreeModifier) {
	for attr, va := range a.Attrs {
		if vb, ok := b.Attrs[attr]; !ok || !sameAttr(va, vb) {
			m.SetAttr(dNode, attr, va)
		}
	}

	for attr := range b.Attrs {
		if _, ok := a.Attrs[attr]; !ok {
			m.RemoveAttr(dNode, attr)
		}
	}
}

func getKey(node Node) string {
	if e, ok := node.(*Element); ok {
		if e.Attrs != nil {
			if key, ok := e.Attrs["key"]; ok {
				return fmt.Sprint(key)
			}
		}
	}

	return ""
}

type ActionType int

const (
	Deletion ActionType = iota
	Insertion
	Move
	Update
)

type Action struct {
	Type    ActionType
	Index   int
	From    int
	Element DomNode
	Content Node
}

type actionPriority []Action

func (a actionPriority) Len() int      { return len(a) }
func (a actionPriority) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
// Less puts deletions first, then places nodes by their final index, so
// every insertion or move lands after the ones already in place.
func (a actionPriority) Less(i, j int) bool {
	di, dj := a[i].Type == Deletion, a[j].Type == Deletion
	if di != dj {
		return di
	}

	return a[i].Index < a[j].Index
}

// PerformDiff calculates and performs operations on the DOM tree dNode
// to transform an old tree representation (b) to the new tree (a)
func PerformDiff(a, b *Element, dNode DomNode, m TreeModifier) {
	if b == nil || a.Tag != b.Tag {
		m.Do(dNode, Action{Type: Update, Content: a})
		return
	}

	diffProps(a, b, dNode, m)
	m.Bind(dNode, a, b)

	existing := make(map[string]Action)
	keyedDiff := false
	var unkeyedOld []Action
	for i, bCh := range b.Children {
		deletion := Action{Type: Deletion, Index: i, Element: dNode.Child(i), Content: bCh}
		if key := getKey(bCh); key != "" {
			keyedDiff = true
			existing[key] = deletion
		} else {
			unkeyedOld = append(unkeyedOld, deletion)
		}
	}

	if keyedDiff { // Algorithm inspired by Mithril.js
		for _, action := range unkeyedOld {
			m.Do(dNode, action)
		}

		var actions []Action
		for i, aCh := range a.Children {
			key := getKey(aCh)
			if key != "" {
				if action, ok := existing[key]; !ok || action.Type != Deletion {
					existing[key] = Action{Type: Insertion, Index: i, Content: aCh}
				} else {
					existing[key] = Action{
						Type:    Move,
						Index:   i,
						From:    action.Index,
						Element: action.Element,
					}
				}
			} else {
				actions = append(actions, Action{Type: Insertion, Index: i, Content: aCh})
			}
		}

		for _, action := range existing {
			actions = append(actions, action)
		}

		sort.Sort(actionPriority(actions))

		for _, action := range actions {
			m.Do(dNode, action)
			if action.Type == Move {
				aCh, aok := a.Children[action.Index].(*Element)
				bCh, bok := b.Children[action.From].(*Element)
				if aok && bok {
					PerformDiff(aCh, bCh, action.Element, m)
				}
			}
		}

		return
	}

	i := 0
	for ; i < len(a.Children); i++ {
		aCh := a.Children[i]

		if i > len(b.Children)-1 {
			m.Do(dNode, Action{Type: Insertion, Index: -1, Content: aCh})
			continue
		}

		bCh := b.Children[i]
		if nodeCompat(aCh, bCh) {
			if aCh.IsElement() {
				PerformDiff(aCh.(*Element), bCh.(*Element), dNode.Child(i), m)
			}
		} else {
			m.Do(dNode.Child(i), Action{Type: Update, Content: aCh})
		}
	}

	// collected first, removing one shifts the indexes of the rest
	var stale []Action
	for ; i < len(b.Children); i++ {
		stale = append(stale, Action{Type: Deletion, Index: i, Element: dNode.Child(i), Content: b.Children[i]})
	}
	for _, action := range stale {
		m.Do(dNode, action)
	}
}
