package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/huuff/dom-test-lib/dom"
)

type listener struct {
	handler dom.EventHandler
	removed bool
}

func (d *Document) listen(n *html.Node, typ string, handler dom.EventHandler) func() {
	l := &listener{handler: handler}
	if d.listeners[n] == nil {
		d.listeners[n] = make(map[string][]*listener)
	}
	d.listeners[n][typ] = append(d.listeners[n][typ], l)

	return func() {
		if l.removed {
			return
		}

		l.removed = true
		ls := d.listeners[n][typ]
		for i, o := range ls {
			if o == l {
				d.listeners[n][typ] = append(ls[:i:i], ls[i+1:]...)
				break
			}
		}
	}
}

// forget drops listeners and selectedness of a detached subtree
func (d *Document) forget(n *html.Node) {
	delete(d.listeners, n)
	delete(d.dirty, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// dispatch runs listeners on the target, then on each ancestor while the
// event bubbles and nobody stopped it.
func (d *Document) dispatch(target dom.Element, evt *dom.Event) {
	start := HTMLNode(target)
	evt.Begin(d.element(start))
	for n := start; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			if ls := d.listeners[n][evt.Type()]; len(ls) > 0 {
				evt.At(d.element(n))
				for _, l := range append([]*listener(nil), ls...) {
					if !l.removed {
						l.handler(evt)
					}
				}
			}
		}

		if evt.PropagationStopped() || !evt.Bubbles() {
			break
		}
	}
	evt.At(nil)
}

func isFormControl(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Input, atom.Button, atom.Select, atom.Textarea, atom.Option, atom.Fieldset:
		return true
	}

	return false
}

// click mimics HTMLElement.click(): disabled controls do nothing, checkable
// inputs flip before the click event and flip back if it is canceled, and
// a label forwards activation to its control.
func (d *Document) click(el dom.Element) {
	n := HTMLNode(el)
	if isFormControl(n) && hasAttr(n, "disabled") {
		return
	}

	el = d.element(n)

	var undo func()
	if input, ok := el.(InputElement); ok {
		undo = d.toggle(input)
	}

	evt := dom.ClickEvent()
	d.dispatch(el, evt)

	if undo != nil {
		if evt.DefaultPrevented() {
			undo()
		} else {
			d.dispatch(el, dom.InputEvent())
			d.dispatch(el, dom.ChangeEvent())
		}

		return
	}

	if label, ok := el.(LabelElement); ok && !evt.DefaultPrevented() {
		if ctrl, ok := label.control().(dom.Clickable); ok {
			ctrl.Click()
		}
	}
}

func (d *Document) toggle(input InputElement) func() {
	switch input.InputType() {
	case "checkbox":
		prev := input.Checked()
		input.SetChecked(!prev)
		return func() { input.SetChecked(prev) }

	case "radio":
		if input.Checked() {
			return nil
		}

		group := d.radioGroup(input)
		var prev InputElement
		for _, r := range group {
			if r.Checked() {
				prev = r
			}
			r.SetChecked(false)
		}
		input.SetChecked(true)

		return func() {
			input.SetChecked(false)
			if prev.node != nil {
				prev.SetChecked(true)
			}
		}
	}

	return nil
}

func (d *Document) radioGroup(input InputElement) []InputElement {
	name, _ := input.Attr("name")
	if name == "" {
		return []InputElement{input}
	}

	var group []InputElement
	d.selection().Find("input").Each(func(_ int, s *goquery.Selection) {
		r := InputElement{Element{Node{d, s.Nodes[0]}}}
		if n, _ := r.Attr("name"); n == name && r.InputType() == "radio" {
			group = append(group, r)
		}
	})

	return group
}

// Defer queues fn to run on the next tick, the way a reactive scheduler
// queues effects triggered by an event.
func (d *Document) Defer(fn func()) {
	d.queue = append(d.queue, fn)
}

// NextTick runs the tasks queued so far. Tasks they queue wait for the
// following tick.
func (d *Document) NextTick() {
	queue := d.queue
	d.queue = nil
	for _, fn := range queue {
		fn()
	}
}
