package handlers

import (
	"pfeifer.dev/stately/event"
	"pfeifer.dev/stately/response"
)

// Updater computes the new value at a path from the current one.
type Updater func(cur any, in event.Input) any

// Handler handles an event or value. It returns the new state for state
// handlers and the new prop value for prop handlers.
type Handler struct {
	fn func(event.Input) any
}

func (h *Handler) Handle(in event.Input) any {
	return h.fn(in)
}

// Value handles a raw value.
func (h *Handler) Value(v any) any {
	return h.fn(event.Raw(v))
}

type Caller struct {
	fn func(args ...any) any
}

func (c *Caller) Call(args ...any) any {
	return c.fn(args...)
}

type RefSetter struct {
	fn func(any)
}

func (r *RefSetter) Set(v any) {
	r.fn(v)
}

type ThenHandler struct {
	fn func(*response.Response)
}

func (h *ThenHandler) Handle(resp *response.Response) {
	h.fn(resp)
}

type CatchHandler struct {
	fn func(error)
}

func (h *CatchHandler) Handle(err error) {
	h.fn(err)
}
