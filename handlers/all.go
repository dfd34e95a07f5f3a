package handlers

import (
	"slices"

	"pfeifer.dev/stately/event"
)

type composite struct {
	handlers       []*Handler
	preventDefault bool
	h              *Handler
}

func (c *composite) matches(handlers []*Handler, preventDefault bool) bool {
	return c.preventDefault == preventDefault && slices.Equal(c.handlers, handlers)
}

// All returns a handler that runs handlers in order. Every handler sees the
// state as it was when the composite started, and their changes are merged
// into the owner. The composite for the same handlers, compared by pointer,
// is reused. It returns the owner's state after all handlers ran.
func All(o Owner, handlers []*Handler, preventDefault bool) *Handler {
	m := o.Memo()
	for i := range m.composites {
		if m.composites[i].matches(handlers, preventDefault) {
			return m.composites[i].h
		}
	}

	hs := slices.Clone(handlers)
	h := &Handler{fn: func(in event.Input) any {
		if preventDefault {
			event.PreventDefaultAndBlur(in)
		}
		m := o.Memo()
		if m.pinned == 0 {
			m.snapshot = o.State()
		}
		m.pinned++
		defer func() {
			m.pinned--
			if m.pinned == 0 {
				m.snapshot = nil
			}
		}()

		for _, h := range hs {
			h.Handle(in)
		}
		return o.State()
	}}
	m.composites = append(m.composites, composite{handlers: hs, preventDefault: preventDefault, h: h})
	return h
}
