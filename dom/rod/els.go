package rod

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

func (z Element) prop(name string) string {
	return z.el.MustProperty(name).String()
}

func (z Element) flag(name string) bool {
	return z.el.MustProperty(name).Bool()
}

func (z Element) setProp(name string, value any) {
	z.el.MustEval(`(n, v) => { this[n] = v }`, name, value)
}

func (e InputElement) Value() string {
	return e.prop("value")
}

func (e InputElement) SetValue(value string) {
	e.setProp("value", value)
}

func (e InputElement) Checked() bool {
	return e.flag("checked")
}

func (e InputElement) SetChecked(checked bool) {
	e.setProp("checked", checked)
}

func (e InputElement) InputType() string {
	return e.prop("type")
}

func (e InputElement) Disabled() bool {
	return e.flag("disabled")
}

func (e SelectElement) Value() string {
	return e.prop("value")
}

func (e SelectElement) SetValue(value string) {
	e.setProp("value", value)
}

func (e SelectElement) SelectedIndex() int {
	return e.el.MustProperty("selectedIndex").Int()
}

func (e SelectElement) Disabled() bool {
	return e.flag("disabled")
}

func (e OptionElement) Value() string {
	return e.prop("value")
}

func (e OptionElement) Selected() bool {
	return e.flag("selected")
}

func (e ButtonElement) ButtonType() string {
	return e.prop("type")
}

func (e ButtonElement) Disabled() bool {
	return e.flag("disabled")
}

func (e LabelElement) HtmlFor() string {
	return e.prop("htmlFor")
}
