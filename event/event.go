// Package event separates UI events from plain values at the boundary
// between a UI adapter and the handlers built by package handlers.
package event

// Event is a UI event whose default action and propagation can be stopped.
type Event interface {
	PreventDefault()
	StopPropagation()
}

// Target is the element an event originated from.
type Target interface {
	Value() any
	Blur()
}

// Targeted is implemented by events that know their target.
type Targeted interface {
	Target() Target
}

// Input is what a handler receives: either an Event or a raw value.
type Input struct {
	ev  Event
	val any
}

// Of wraps a UI event. A nil event is treated as a raw nil value.
func Of(e Event) Input {
	return Input{ev: e}
}

// Raw wraps a plain value.
func Raw(v any) Input {
	return Input{val: v}
}

// Event returns the wrapped event, if any.
func (in Input) Event() (Event, bool) {
	return in.ev, in.ev != nil
}

// Value is the value of the event target for events and the value itself
// for raw inputs.
func (in Input) Value() any {
	if in.ev == nil {
		return in.val
	}
	if t := target(in.ev); t != nil {
		return t.Value()
	}
	return nil
}

func target(e Event) Target {
	if te, ok := e.(Targeted); ok {
		return te.Target()
	}
	return nil
}

func PreventDefault(in Input) {
	if in.ev != nil {
		in.ev.PreventDefault()
	}
}

func StopPropagation(in Input) {
	if in.ev != nil {
		in.ev.StopPropagation()
	}
}

// PreventDefaultAndBlur prevents the default action, stops propagation and
// removes focus from the target. Raw inputs are left alone.
func PreventDefaultAndBlur(in Input) {
	if in.ev == nil {
		return
	}
	in.ev.PreventDefault()
	in.ev.StopPropagation()
	if t := target(in.ev); t != nil {
		t.Blur()
	}
}
