// Package deep reads and writes values deep inside nested map[string]any and
// []any trees without mutating them. Every write returns a new root where the
// nodes along the written path are shallow copies and everything else is
// shared with the original.
package deep

import (
	"fmt"
	"maps"
	"strconv"
)

// MaxGap is how far past the end of a slice Set may write. The gap is
// filled with nil.
const MaxGap = 1024

// Path is an ordered list of keys. Keys are strings or ints.
type Path []any

// Keys normalizes a single key or a list of keys into a Path.
// Strings are used as-is, they are never split on dots.
func Keys(keys any) Path {
	switch k := keys.(type) {
	case nil:
		return nil
	case Path:
		return k
	case []any:
		return Path(k)
	case []string:
		p := make(Path, len(k))
		for i, s := range k {
			p[i] = s
		}
		return p
	case []int:
		p := make(Path, len(k))
		for i, n := range k {
			p[i] = n
		}
		return p
	default:
		return Path{k}
	}
}

// Get returns the value at keys or nil if any part of the path is missing.
func Get(root any, keys any) any {
	v, _ := lookup(root, Keys(keys), false)
	return v
}

// Lookup is like Get but also reports whether the path exists.
func Lookup(root any, keys any) (any, bool) {
	return lookup(root, Keys(keys), false)
}

// Set returns root with value stored at keys. If Get(root, keys) is the same
// as value, root itself is returned, so storing nil at a missing path is a
// no-op.
//
// Missing or non container intermediates are replaced by a new []any when
// the following key is an int and by a new map[string]any otherwise. Slices
// are padded with nil up to the index, but an index more than MaxGap past
// the end cannot be written and root is returned unchanged.
func Set(root any, keys any, value any) any {
	path := Keys(keys)
	if cur, _ := lookup(root, path, false); Same(cur, value) {
		return root
	}
	out, _ := set(root, path, value, false)
	return out
}

// Delete returns root without the value at keys. Deleting from a slice
// splices the element out and requires an int key, any other key type
// results in an *InvalidKeyType error. Deleting a path that does not exist
// returns root unchanged.
func Delete(root any, keys any) (any, error) {
	return deleteIn(root, Keys(keys), false)
}

func lookup(root any, path Path, mixed bool) (any, bool) {
	cur := root
	for i, key := range path {
		if mixed {
			if p, ok := cur.(Persistent); ok {
				return p.GetIn(path[i:])
			}
		}
		next, ok := child(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// set copies every node on the path. The bool is false when the path cannot
// be written, in which case node is returned untouched.
func set(node any, path Path, value any, mixed bool) (any, bool) {
	if len(path) == 0 {
		return value, true
	}
	if mixed {
		if p, ok := node.(Persistent); ok {
			out := p.SetIn(path, value)
			return out, !Same(out, p)
		}
	}
	next, _ := child(node, path[0])
	v, ok := set(next, path[1:], value, mixed)
	if !ok {
		return node, false
	}
	return assign(node, path[0], v)
}

func deleteIn(node any, path Path, mixed bool) (any, error) {
	if len(path) == 0 {
		return nil, nil
	}
	if mixed {
		if p, ok := node.(Persistent); ok {
			out, err := p.DeleteIn(path)
			if err != nil {
				return node, err
			}
			return out, nil
		}
	}
	key := path[0]
	if len(path) == 1 {
		return remove(node, key)
	}
	next, ok := child(node, key)
	if !ok {
		return node, nil
	}
	v, err := deleteIn(next, path[1:], mixed)
	if err != nil {
		return node, err
	}
	if Same(v, next) {
		return node, nil
	}
	out, _ := assign(node, key, v)
	return out, nil
}

func child(node any, key any) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[mapKey(key)]
		return v, ok
	case []any:
		i, ok := index(key)
		if !ok || i >= len(n) {
			return nil, false
		}
		return n[i], true
	}
	return nil, false
}

// assign returns a shallow copy of node with key set to v.
func assign(node any, key any, v any) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		c := maps.Clone(n)
		if c == nil {
			c = make(map[string]any, 1)
		}
		c[mapKey(key)] = v
		return c, true
	case []any:
		i, ok := index(key)
		if !ok || i-len(n) > MaxGap {
			return node, false
		}
		c := make([]any, max(len(n), i+1))
		copy(c, n)
		c[i] = v
		return c, true
	}

	if i, ok := key.(int); ok && i >= 0 {
		if i > MaxGap {
			return node, false
		}
		c := make([]any, i+1)
		c[i] = v
		return c, true
	}
	return map[string]any{mapKey(key): v}, true
}

func remove(node any, key any) (any, error) {
	switch n := node.(type) {
	case []any:
		i, ok := key.(int)
		if !ok {
			return node, newInvalidKeyType(key)
		}
		if i < 0 {
			i += len(n)
		}
		if i < 0 || i >= len(n) {
			return node, nil
		}
		c := make([]any, 0, len(n)-1)
		c = append(c, n[:i]...)
		return append(c, n[i+1:]...), nil
	case map[string]any:
		k := mapKey(key)
		if _, ok := n[k]; !ok {
			return node, nil
		}
		c := maps.Clone(n)
		delete(c, k)
		return c, nil
	}
	return node, nil
}

// index converts key into a slice position. Strings are accepted when they
// are the canonical form of a non-negative integer.
func index(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, k >= 0
	case string:
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || strconv.Itoa(i) != k {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func mapKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	}
	return fmt.Sprint(key)
}
