package deep

// Persistent is a structurally immutable container. Its methods never modify
// the receiver, SetIn and DeleteIn return a new container instead.
type Persistent interface {
	GetIn(path Path) (any, bool)
	SetIn(path Path, value any) Persistent
	DeleteIn(path Path) (Persistent, error)
}

// GetMixed is Get for trees that hold Persistent containers. The part of the
// path below the first Persistent container is resolved by that container.
func GetMixed(root any, keys any) any {
	v, _ := lookup(root, Keys(keys), true)
	return v
}

func LookupMixed(root any, keys any) (any, bool) {
	return lookup(root, Keys(keys), true)
}

// SetMixed is Set for trees that hold Persistent containers. Plain maps and
// slices above the first Persistent container are copied, the container
// itself is updated through SetIn.
func SetMixed(root any, keys any, value any) any {
	path := Keys(keys)
	if cur, _ := lookup(root, path, true); Same(cur, value) {
		return root
	}
	out, _ := set(root, path, value, true)
	return out
}

func DeleteMixed(root any, keys any) (any, error) {
	return deleteIn(root, Keys(keys), true)
}
