//go:build js

package jsdom

import (
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

func (e InputElement) Checked() bool {
	return e.Get("checked").Bool()
}

func (e InputElement) SetChecked(checked bool) {
	e.Set("checked", checked)
}

func (e InputElement) Value() string {
	return e.Get("value").String()
}

func (e InputElement) SetValue(value string) {
	e.Set("value", value)
}

func (e InputElement) InputType() string {
	return e.Get("type").String()
}

func (e InputElement) Disabled() bool {
	return e.Get("disabled").Bool()
}

func (e SelectElement) Value() string {
	return e.Get("value").String()
}

func (e SelectElement) SetValue(value string) {
	e.Set("value", value)
}

func (e SelectElement) SelectedIndex() int {
	return e.Get("selectedIndex").Int()
}

func (e SelectElement) Disabled() bool {
	return e.Get("disabled").Bool()
}

func (e OptionElement) Value() string {
	return e.Get("value").String()
}

func (e OptionElement) Selected() bool {
	return e.Get("selected").Bool()
}

func (e ButtonElement) ButtonType() string {
	return e.Get("type").String()
}

func (e ButtonElement) Disabled() bool {
	return e.Get("disabled").Bool()
}

func (e LabelElement) HtmlFor() string {
	return e.Get("htmlFor").String()
}
