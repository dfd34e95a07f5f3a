package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pfeifer.dev/stately/deep"
	"pfeifer.dev/stately/event"
)

func TestHandlersAreMemoized(t *testing.T) {
	c := New(nil)

	h := Update(c, "name", false)
	assert.Same(t, h, Update(c, "name", false))
	assert.Same(t, h, Update(c, []any{"name"}, false))
	assert.NotSame(t, h, Update(c, "name", true))
	assert.NotSame(t, h, Update(c, "other", false))
	assert.NotSame(t, h, UpdateNumber(c, "name", false))
	assert.NotSame(t, SetState(c, "name", 1, false), SetState(c, "name", 2, false))

	other := New(nil)
	assert.NotSame(t, h, Update(other, "name", false))
}

func TestChangeStateCopiesOnlyChangedSpine(t *testing.T) {
	renders := 0
	sibling := map[string]any{"keep": true}
	c := New(map[string]any{
		"form":  map[string]any{"user": map[string]any{"name": "a"}, "meta": sibling},
		"other": []any{1, 2},
	}, OnRender(func(*Component) { renders++ }))
	orig := c.State()

	next := Update(c, deep.Path{"form", "user", "name"}, false).Value("b")

	assert.Equal(t, "b", deep.Get(c.State(), deep.Path{"form", "user", "name"}))
	assert.Equal(t, "a", deep.Get(orig, deep.Path{"form", "user", "name"}))
	assert.True(t, deep.Same(sibling, deep.Get(c.State(), deep.Path{"form", "meta"})))
	assert.True(t, deep.Same(orig["other"], c.State()["other"]))
	assert.Equal(t, c.State(), next)
	assert.Equal(t, 1, renders)
}

func TestChangeStateSameValueDoesNotRender(t *testing.T) {
	renders := 0
	c := New(map[string]any{"name": "a"}, OnRender(func(*Component) { renders++ }))

	Update(c, "name", false).Value("a")
	assert.Equal(t, 0, renders)
}

func TestSetNilOnMissingKeyDoesNotRender(t *testing.T) {
	renders := 0
	c := New(map[string]any{"a": 1}, OnRender(func(*Component) { renders++ }))
	before := c.State()

	SetState(c, "x", nil, false).Value(nil)
	SetState(c, deep.Path{"x", "y"}, nil, false).Value(nil)

	assert.Equal(t, 0, renders)
	assert.NotContains(t, c.State(), "x")
	assert.True(t, deep.Same(before, c.State()))
}

func TestChangeStatePreventsDefault(t *testing.T) {
	c := New(nil)
	field := &event.Field{Val: "typed"}
	e := event.New(field)

	Update(c, "name", true).Handle(event.Of(e))

	assert.Equal(t, "typed", c.State()["name"])
	assert.True(t, e.Prevented)
	assert.True(t, e.Stopped)
	assert.True(t, field.Blurred)

	e2 := event.New(field)
	Update(c, "name", false).Handle(event.Of(e2))
	assert.False(t, e2.Prevented)
}

func TestChangeStateRootMustStayAMap(t *testing.T) {
	c := New(map[string]any{"a": 1})
	SetState(c, nil, "scalar", false).Value(nil)
	assert.Equal(t, map[string]any{"a": 1}, c.State())
}

func TestToggleAndValues(t *testing.T) {
	c := New(map[string]any{"open": false})

	Toggle(c, "open", false).Value(nil)
	assert.Equal(t, true, c.State()["open"])
	Toggle(c, "open", false).Value(nil)
	assert.Equal(t, false, c.State()["open"])

	ToggleValue(c, "mode", "edit", false).Value(nil)
	assert.Equal(t, "edit", c.State()["mode"])
	ToggleValue(c, "mode", "edit", false).Value(nil)
	assert.Nil(t, c.State()["mode"])

	ToggleFromEvent(c, "tab", false).Value("a")
	assert.Equal(t, "a", c.State()["tab"])
	ToggleFromEvent(c, "tab", false).Value("b")
	assert.Equal(t, "b", c.State()["tab"])
	ToggleFromEvent(c, "tab", false).Value("b")
	assert.Nil(t, c.State()["tab"])
}

func TestToggleArrayMember(t *testing.T) {
	c := New(map[string]any{"tags": []any{"a"}})

	ToggleArrayMember(c, "tags", "b", false).Value(nil)
	assert.Equal(t, []any{"a", "b"}, c.State()["tags"])

	ToggleArrayMemberFromEvent(c, "tags", false).Value("a")
	assert.Equal(t, []any{"b"}, c.State()["tags"])

	ToggleArrayMember(c, deep.Path{"nested", "ids"}, 3, false).Value(nil)
	assert.Equal(t, []any{3}, deep.Get(c.State(), deep.Path{"nested", "ids"}))
}

func TestUpdateNumberAndSetState(t *testing.T) {
	c := New(nil)

	UpdateNumber(c, "n", false).Value("42px")
	assert.Equal(t, 42.0, c.State()["n"])
	UpdateNumber(c, "n", false).Value("nope")
	assert.Nil(t, c.State()["n"])

	SetState(c, deep.Path{"rows", 1}, "x", false).Value("ignored")
	assert.Equal(t, []any{nil, "x"}, c.State()["rows"])
}

func TestDeleteState(t *testing.T) {
	c := New(map[string]any{
		"rows": []any{"a", "b", "c"},
		"user": map[string]any{"name": "n", "age": 3},
		"flag": true,
	})

	DeleteState(c, deep.Path{"rows", 1}, false).Value(nil)
	assert.Equal(t, []any{"a", "c"}, c.State()["rows"])

	DeleteState(c, deep.Path{"user", "age"}, false).Value(nil)
	assert.Equal(t, map[string]any{"name": "n"}, c.State()["user"])

	DeleteState(c, "flag", false).Value(nil)
	assert.Nil(t, c.State()["flag"])

	before := c.State()["rows"]
	DeleteState(c, deep.Path{"rows", "x"}, false).Value(nil)
	assert.True(t, deep.Same(before, c.State()["rows"]))
}

func TestChangeProp(t *testing.T) {
	var got []any
	items := []any{"a", "b"}
	c := New(nil, WithProps(map[string]any{
		"items":   items,
		"onItems": func(v any) { got = append(got, v) },
	}))

	out := TogglePropArrayMember(c, "onItems", "items", nil, "c", false).Value(nil)
	assert.Equal(t, []any{"a", "b", "c"}, out)
	require.Len(t, got, 1)
	assert.Equal(t, []any{"a", "b", "c"}, got[0])
	assert.Equal(t, []any{"a", "b"}, items)

	SetProp(c, "onItems", nil, nil, false).Value("raw")
	assert.Equal(t, "raw", got[1])
}

func TestChangePropIndex(t *testing.T) {
	var got any
	user := map[string]any{"name": "x", "age": 3.0}
	c := New(nil, WithProps(map[string]any{
		"user":   user,
		"onUser": Func(func(args ...any) any { got = args[0]; return nil }),
	}))

	SetProp(c, "onUser", "user", "name", false).Value("y")
	assert.Equal(t, map[string]any{"name": "y", "age": 3.0}, got)
	assert.Equal(t, "x", user["name"])

	SetPropNumber(c, "onUser", "user", "age", false).Value("4")
	assert.Equal(t, 4.0, deep.Get(got, "age"))

	TogglePropValue(c, "onUser", "user", "name", "x", false).Value(nil)
	assert.Nil(t, deep.Get(got, "name"))

	DeleteProp(c, "onUser", "user", "age", false).Value(nil)
	assert.Equal(t, map[string]any{"name": "x"}, got)
}

func TestChangePropPersistent(t *testing.T) {
	var got any
	c := New(nil, WithProps(map[string]any{
		"user":   deep.NewMap(map[string]any{"name": "x"}),
		"onUser": func(v any) { got = v },
	}))

	SetPropValue(c, "onUser", "user", "name", "z", false).Value(nil)
	m, ok := got.(*deep.Map)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "z"}, m.ToMap())
}

func TestChangePropToggles(t *testing.T) {
	var got any
	c := New(nil, WithProps(map[string]any{
		"open":   true,
		"tags":   []any{"a"},
		"sel":    "a",
		"update": func(v any) { got = v },
	}))

	ToggleProp(c, "update", "open", nil, false).Value(nil)
	assert.Equal(t, false, got)

	TogglePropArrayMemberFromEvent(c, "update", "tags", nil, false).Value("a")
	assert.Equal(t, []any{}, got)

	TogglePropFromEvent(c, "update", "sel", nil, false).Value("a")
	assert.Nil(t, got)
}

func TestChangePropMissingCallback(t *testing.T) {
	c := New(nil, WithProps(map[string]any{"open": true}))
	var out any
	assert.NotPanics(t, func() {
		out = ToggleProp(c, "onOpen", "open", nil, false).Value(nil)
	})
	assert.Equal(t, false, out)
}
