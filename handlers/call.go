package handlers

import (
	"pfeifer.dev/stately/deep"
	"pfeifer.dev/stately/event"
)

// Call returns a caller that invokes the owner's method with prefixArgs
// followed by the call arguments. A missing method is a no-op.
func Call(o Owner, method string, prefixArgs []any, preventDefault bool, discriminator any) *Caller {
	key := cacheKey("call", method, prefixArgs, preventDefault, discriminator)
	return cached(o, key, func() *Caller {
		return &Caller{fn: func(args ...any) any {
			if preventDefault {
				preventFirst(args)
			}
			mo, ok := o.(MethodOwner)
			if !ok {
				return nil
			}
			fn, ok := mo.Method(method)
			if !ok {
				logger(o).Debug("method not found", "method", method)
				return nil
			}
			return fn(joinArgs(prefixArgs, args)...)
		}}
	})
}

// CallProp is Call for a function stored in props at propPath.
func CallProp(o Owner, propPath any, prefixArgs []any, preventDefault bool, discriminator any) *Caller {
	keys := deep.Keys(propPath)
	key := cacheKey("callProp", keys, prefixArgs, preventDefault, discriminator)
	return cached(o, key, func() *Caller {
		return &Caller{fn: func(args ...any) any {
			if preventDefault {
				preventFirst(args)
			}
			fn, ok := propFunc(o, keys)
			if !ok {
				logger(o).Debug("prop function not found", "prop", keys)
				return nil
			}
			return fn(joinArgs(prefixArgs, args)...)
		}}
	})
}

func preventFirst(args []any) {
	if len(args) == 0 {
		return
	}
	switch a := args[0].(type) {
	case event.Input:
		event.PreventDefaultAndBlur(a)
	case event.Event:
		event.PreventDefaultAndBlur(event.Of(a))
	}
}

func joinArgs(prefix, args []any) []any {
	out := make([]any, 0, len(prefix)+len(args))
	out = append(out, prefix...)
	return append(out, args...)
}
