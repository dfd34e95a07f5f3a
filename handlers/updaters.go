package handlers

import (
	"log/slog"
	"math"
	"regexp"
	"slices"
	"strconv"

	"pfeifer.dev/stately/deep"
	"pfeifer.dev/stately/event"
)

// FromEvent uses the input value.
func FromEvent(_ any, in event.Input) any {
	return in.Value()
}

var leadingNumber = regexp.MustCompile(`^\s*([+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?))`)

// NumberFromEvent parses the input value as a float64 the way a form field
// would: leading whitespace is skipped and trailing garbage ignored. Inputs
// that are not numbers become nil.
func NumberFromEvent(_ any, in event.Input) any {
	return toNumber(in.Value())
}

func toNumber(v any) any {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		m := leadingNumber.FindStringSubmatch(n)
		if m == nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(m[1], 64)
		if err != nil && !math.IsInf(parsed, 0) {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) {
		return nil
	}
	return f
}

// Constant always uses v.
func Constant(v any) Updater {
	return func(any, event.Input) any {
		return v
	}
}

// Remove deletes path from the current value. A path that cannot be
// deleted leaves the value unchanged.
func Remove(path any) Updater {
	keys := deep.Keys(path)
	return func(cur any, _ event.Input) any {
		next, err := deep.DeleteMixed(cur, keys)
		if err != nil {
			slog.Warn("remove failed", "path", keys, "error", err)
			return cur
		}
		return next
	}
}

// ToggleMembership adds v to the current slice, or removes every element
// that is the same as v.
func ToggleMembership(v any) Updater {
	return func(cur any, _ event.Input) any {
		return toggleMember(cur, v)
	}
}

func ToggleMembershipFromEvent(cur any, in event.Input) any {
	return toggleMember(cur, in.Value())
}

func toggleMember(cur, v any) []any {
	list, _ := cur.([]any)
	same := func(e any) bool { return deep.Same(e, v) }
	if !slices.ContainsFunc(list, same) {
		out := make([]any, 0, len(list)+1)
		out = append(out, list...)
		return append(out, v)
	}
	return slices.DeleteFunc(slices.Clone(list), same)
}

// Negate flips the truthiness of the current value.
func Negate(cur any, _ event.Input) any {
	return !truthy(cur)
}

// ToggleConstant uses v, or nil when the current value already is v.
func ToggleConstant(v any) Updater {
	return func(cur any, _ event.Input) any {
		if deep.Same(cur, v) {
			return nil
		}
		return v
	}
}

// SetOrNull uses the input value, or nil when the current value already is
// the input value.
func SetOrNull(cur any, in event.Input) any {
	v := in.Value()
	if deep.Same(cur, v) {
		return nil
	}
	return v
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case float64:
		return t != 0 && !math.IsNaN(t)
	}
	return true
}
