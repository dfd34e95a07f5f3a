package handlers

import (
	"fmt"

	"pfeifer.dev/stately/deep"
	"pfeifer.dev/stately/event"
)

// ChangeState returns a handler that replaces the state value at path with
// compute(current, input) and commits only the top level keys that changed.
// The discriminator tells apart handlers whose compute functions differ,
// since functions take no part in the cache key.
func ChangeState(o Owner, path any, compute Updater, preventDefault bool, discriminator any) *Handler {
	keys := deep.Keys(path)
	key := cacheKey("changeState", keys, preventDefault, discriminator)
	return cached(o, key, func() *Handler {
		return &Handler{fn: func(in event.Input) any {
			if preventDefault {
				event.PreventDefaultAndBlur(in)
			}
			state := stateOf(o)
			cur := deep.GetMixed(state, keys)
			next, ok := deep.SetMixed(state, keys, compute(cur, in)).(map[string]any)
			if !ok {
				logger(o).Warn("state update did not produce a map, ignoring", "path", fmt.Sprint(keys))
				return state
			}
			o.SetState(GetChanged(state, next))
			return next
		}}
	})
}

// ChangeProp returns a handler that computes a new value for the prop at
// propPath and passes it to the callback prop updateProp. With indexInProp
// only the value at that path inside the prop is computed, and the callback
// receives the whole prop with it replaced. Without propPath the computed
// value is passed as is. Empty paths count as absent.
func ChangeProp(o Owner, updateProp string, propPath, indexInProp any, compute Updater, preventDefault bool, discriminator any) *Handler {
	propKeys := deep.Keys(propPath)
	indexKeys := deep.Keys(indexInProp)
	key := cacheKey("changeProp", updateProp, propKeys, indexKeys, preventDefault, discriminator)
	return cached(o, key, func() *Handler {
		return &Handler{fn: func(in event.Input) any {
			if preventDefault {
				event.PreventDefaultAndBlur(in)
			}
			var next any
			switch {
			case len(propKeys) == 0:
				next = compute(nil, in)
			case len(indexKeys) == 0:
				next = compute(deep.GetMixed(o.Props(), propKeys), in)
			default:
				prop := deep.GetMixed(o.Props(), propKeys)
				next = deep.SetMixed(prop, indexKeys, compute(deep.GetMixed(prop, indexKeys), in))
			}

			fn, ok := propFunc(o, updateProp)
			if !ok {
				logger(o).Warn("prop callback not found", "prop", updateProp)
				return next
			}
			fn(next)
			return next
		}}
	})
}

// GetChanged returns the entries of changed that are missing from orig or
// are not the same value as in orig.
func GetChanged(orig, changed map[string]any) map[string]any {
	changes := make(map[string]any)
	for k, v := range changed {
		if old, ok := orig[k]; !ok || !deep.Same(old, v) {
			changes[k] = v
		}
	}
	return changes
}

// propFunc finds a callable prop. Callbacks are stored in props as Func,
// func(...any) any, func(any) or func().
func propFunc(o Owner, path any) (Func, bool) {
	switch fn := deep.GetMixed(o.Props(), path).(type) {
	case Func:
		return fn, fn != nil
	case func(...any) any:
		return fn, fn != nil
	case func(any):
		if fn == nil {
			return nil, false
		}
		return func(args ...any) any {
			var v any
			if len(args) > 0 {
				v = args[0]
			}
			fn(v)
			return nil
		}, true
	case func():
		if fn == nil {
			return nil, false
		}
		return func(...any) any {
			fn()
			return nil
		}, true
	}
	return nil, false
}
