// Package handlers builds memoized event handlers that read and write the
// state and props of a UI component through package deep.
//
// Every factory returns the same handler pointer when it is called again
// with the same owner and arguments, so the result can be handed to a
// renderer that compares callbacks by identity.
package handlers

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/rs/xid"
	"pfeifer.dev/stately/deep"
)

// Func is a function that can be called by name through Call and CallProp.
type Func func(args ...any) any

// Owner is the component handlers are memoized for.
type Owner interface {
	State() map[string]any
	// SetState merges partial into the state and re-renders.
	SetState(partial map[string]any)
	Props() map[string]any
	Memo() *Memo
}

// MethodOwner is implemented by owners that expose methods to Call.
type MethodOwner interface {
	Method(name string) (Func, bool)
}

var (
	_ Owner       = (*Component)(nil)
	_ MethodOwner = (*Component)(nil)
)

// Component is a ready to use Owner. Embed it in a UI model to get state,
// props, methods and a handler cache.
type Component struct {
	id       string
	state    map[string]any
	props    map[string]any
	methods  map[string]Func
	memo     Memo
	onRender func(*Component)
}

type Option func(*Component)

func WithProps(props map[string]any) Option {
	return func(c *Component) {
		c.props = props
	}
}

func WithMethods(methods map[string]Func) Option {
	return func(c *Component) {
		for name, fn := range methods {
			c.Define(name, fn)
		}
	}
}

// OnRender sets the function called after every state change.
func OnRender(fn func(*Component)) Option {
	return func(c *Component) {
		c.onRender = fn
	}
}

func New(state map[string]any, opts ...Option) *Component {
	c := &Component{
		id:    xid.New().String(),
		state: state,
	}
	if c.state == nil {
		c.state = map[string]any{}
	}
	for _, opt := range opts {
		opt(c)
	}
	slog.Debug("component created", "component", c.id)
	return c
}

func (c *Component) ID() string {
	return c.id
}

func (c *Component) State() map[string]any {
	return c.state
}

// SetState replaces the state with a copy that has partial merged in. An
// empty partial does nothing.
func (c *Component) SetState(partial map[string]any) {
	if len(partial) == 0 {
		return
	}
	next := make(map[string]any, len(c.state)+len(partial))
	maps.Copy(next, c.state)
	maps.Copy(next, partial)
	c.state = next

	slog.Debug("state changed", "component", c.id, "keys", slices.Sorted(maps.Keys(partial)))
	if c.onRender != nil {
		c.onRender(c)
	}
}

func (c *Component) Props() map[string]any {
	return c.props
}

// SetProps replaces the props, as done by the parent on re-render.
func (c *Component) SetProps(props map[string]any) {
	c.props = props
}

func (c *Component) Memo() *Memo {
	return &c.memo
}

func (c *Component) Define(name string, fn Func) {
	if c.methods == nil {
		c.methods = make(map[string]Func)
	}
	c.methods[name] = fn
}

func (c *Component) Method(name string) (Func, bool) {
	fn, ok := c.methods[name]
	return fn, ok && fn != nil
}

// Ref returns the value registered at path through RegisterRef.
func (c *Component) Ref(path any) any {
	return deep.Get(c.memo.refs, path)
}
