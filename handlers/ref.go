package handlers

import "pfeifer.dev/stately/deep"

// RegisterRef returns a setter that stores a reference at slotPath in the
// owner's ref tree. Read it back with Component.Ref.
func RegisterRef(o Owner, slotPath any) *RefSetter {
	keys := deep.Keys(slotPath)
	return cached(o, cacheKey("registerRef", keys), func() *RefSetter {
		return &RefSetter{fn: func(v any) {
			m := o.Memo()
			m.refs = deep.Set(m.refs, keys, v)
		}}
	})
}
