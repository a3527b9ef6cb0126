package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/huuff/dom-test-lib/dom"
)

type (
	InputElement  struct{ Element }
	SelectElement struct{ Element }
	OptionElement struct{ Element }
	ButtonElement struct{ Element }
	LabelElement  struct{ Element }
)

var (
	_ dom.InputEl  = InputElement{}
	_ dom.SelectEl = SelectElement{}
	_ dom.OptionEl = OptionElement{}
	_ dom.ButtonEl = ButtonElement{}
	_ dom.LabelEl  = LabelElement{}
)

// The value property is kept in the value attribute; tests only ever
// observe one of the two.
func (e InputElement) Value() string {
	if v, ok := e.Attr("value"); ok {
		return v
	}

	switch e.InputType() {
	case "checkbox", "radio":
		return "on"
	}

	return ""
}

func (e InputElement) SetValue(value string) {
	e.SetAttr("value", value)
}

func (e InputElement) Checked() bool {
	return e.hasAttr("checked")
}

func (e InputElement) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
	} else {
		e.RemoveAttr("checked")
	}
}

func (e InputElement) InputType() string {
	t, ok := e.Attr("type")
	if !ok || t == "" {
		return "text"
	}

	return strings.ToLower(t)
}

func (e InputElement) Disabled() bool {
	return e.hasAttr("disabled")
}

func (e SelectElement) options() []*html.Node {
	return e.selection().Find("option").Nodes
}

// SelectedIndex follows single-select rules: the last option marked
// selected wins, otherwise the first option, unless a script set a value
// that matched no option.
func (e SelectElement) SelectedIndex() int {
	opts := e.options()
	idx := -1
	for i, opt := range opts {
		if hasAttr(opt, "selected") {
			idx = i
		}
	}

	if idx == -1 && !e.doc.dirty[e.node] && len(opts) > 0 {
		idx = 0
	}

	return idx
}

func (e SelectElement) Value() string {
	idx := e.SelectedIndex()
	if idx < 0 {
		return ""
	}

	return OptionElement{Element{Node{e.doc, e.options()[idx]}}}.Value()
}

func (e SelectElement) SetValue(value string) {
	e.doc.dirty[e.node] = true
	found := false
	for _, opt := range e.options() {
		o := OptionElement{Element{Node{e.doc, opt}}}
		if !found && o.Value() == value {
			o.SetAttr("selected", "")
			found = true
		} else {
			o.RemoveAttr("selected")
		}
	}
}

func (e SelectElement) Disabled() bool {
	return e.hasAttr("disabled")
}

func (e OptionElement) Value() string {
	if v, ok := e.Attr("value"); ok {
		return v
	}

	return strings.Join(strings.Fields(e.TextContent()), " ")
}

func (e OptionElement) Selected() bool {
	sel := e.selection().Closest("select")
	if sel.Length() == 0 {
		return e.hasAttr("selected")
	}

	s := SelectElement{Element{Node{e.doc, sel.Nodes[0]}}}
	idx := s.SelectedIndex()

	return idx >= 0 && s.options()[idx] == e.node
}

func (e ButtonElement) ButtonType() string {
	t, ok := e.Attr("type")
	if !ok || t == "" {
		return "submit"
	}

	return strings.ToLower(t)
}

func (e ButtonElement) Disabled() bool {
	return e.hasAttr("disabled")
}

func (e LabelElement) HtmlFor() string {
	f, _ := e.Attr("for")
	return f
}

// control is the element a label activates: the one named by its for
// attribute, or its first labelable descendant.
func (e LabelElement) control() dom.Element {
	if id := e.HtmlFor(); id != "" {
		found := e.doc.selection().Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			v, _ := s.Attr("id")
			return v == id
		})
		if found.Length() == 0 {
			return nil
		}

		return e.doc.element(found.Nodes[0])
	}

	found := e.selection().Find("input, select, button, textarea")
	if found.Length() == 0 {
		return nil
	}

	return e.doc.element(found.Nodes[0])
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}

	return false
}
