package dom

type (
	EventHandler func(*Event)

	// Event is a host-independent synthetic event. Hosts with a native event
	// system translate it on dispatch and copy back whether the default
	// action was prevented.
	Event struct {
		typ              string
		bubbles          bool
		target           Element
		currentTarget    Element
		propaStopped     bool
		defaultPrevented bool
	}
)

// NewEvent creates a new event
func NewEvent(eventType string, bubbles bool) *Event {
	return &Event{typ: eventType, bubbles: bubbles}
}

// ChangeEvent creates a bubbling "change" event
func ChangeEvent() *Event {
	return NewEvent("change", true)
}

// InputEvent creates a bubbling "input" event
func InputEvent() *Event {
	return NewEvent("input", true)
}

// ClickEvent creates a bubbling "click" event
func ClickEvent() *Event {
	return NewEvent("click", true)
}

func (e *Event) Type() string {
	return e.typ
}

func (e *Event) Bubbles() bool {
	return e.bubbles
}

func (e *Event) Target() Element {
	return e.target
}

func (e *Event) CurrentTarget() Element {
	return e.currentTarget
}

func (e *Event) StopPropagation() {
	e.propaStopped = true
}

func (e *Event) PropagationStopped() bool {
	return e.propaStopped
}

func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Begin resets propagation state and sets the target. Hosts call it once
// per dispatch.
func (e *Event) Begin(target Element) {
	e.target = target
	e.currentTarget = nil
	e.propaStopped = false
}

// At sets the element whose listeners are currently running.
func (e *Event) At(current Element) {
	e.currentTarget = current
}
