package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pfeifer.dev/stately/event"
)

func TestAllRunsEveryHandler(t *testing.T) {
	renders := 0
	c := New(map[string]any{"a": 1}, OnRender(func(*Component) { renders++ }))

	both := All(c, []*Handler{
		SetState(c, "a", 2, false),
		Update(c, "b", false),
	}, false)
	out := both.Value("x")

	assert.Equal(t, map[string]any{"a": 2, "b": "x"}, c.State())
	assert.Equal(t, c.State(), out)
	assert.Equal(t, 2, renders)
}

func TestAllHandlersSeeStartingState(t *testing.T) {
	c := New(map[string]any{"open": false})

	All(c, []*Handler{Toggle(c, "open", false), Toggle(c, "open", false)}, false).Value(nil)
	assert.Equal(t, true, c.State()["open"])

	Toggle(c, "open", false).Value(nil)
	Toggle(c, "open", false).Value(nil)
	assert.Equal(t, true, c.State()["open"])
	assert.Nil(t, c.Memo().snapshot)
}

func TestAllIsMemoizedByHandlerIdentity(t *testing.T) {
	c := New(nil)
	a := Update(c, "a", false)
	b := Update(c, "b", false)

	h := All(c, []*Handler{a, b}, false)
	assert.Same(t, h, All(c, []*Handler{a, b}, false))
	assert.NotSame(t, h, All(c, []*Handler{b, a}, false))
	assert.NotSame(t, h, All(c, []*Handler{a, b}, true))
	assert.NotSame(t, h, All(c, []*Handler{a}, false))
}

func TestAllNested(t *testing.T) {
	c := New(map[string]any{"n": 0})
	inner := All(c, []*Handler{SetState(c, "n", 1, false)}, false)
	outer := All(c, []*Handler{inner, Toggle(c, "flag", false)}, true)

	e := event.New(&event.Field{})
	outer.Handle(event.Of(e))

	assert.Equal(t, map[string]any{"n": 1, "flag": true}, c.State())
	assert.True(t, e.Prevented)
	assert.Equal(t, 0, c.Memo().pinned)
}
