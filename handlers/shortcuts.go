package handlers

import "pfeifer.dev/stately/deep"

// Toggle flips the truthiness of the state value at path.
func Toggle(o Owner, path any, preventDefault bool) *Handler {
	return ChangeState(o, path, Negate, preventDefault, "negate")
}

// ToggleValue sets the state value at path to value, or to nil when it
// already is value.
func ToggleValue(o Owner, path, value any, preventDefault bool) *Handler {
	return ChangeState(o, path, ToggleConstant(value), preventDefault, []any{"toggleConstant", value})
}

func ToggleFromEvent(o Owner, path any, preventDefault bool) *Handler {
	return ChangeState(o, path, SetOrNull, preventDefault, "setOrNull")
}

func ToggleArrayMember(o Owner, path, value any, preventDefault bool) *Handler {
	return ChangeState(o, path, ToggleMembership(value), preventDefault, []any{"toggleMembership", value})
}

func ToggleArrayMemberFromEvent(o Owner, path any, preventDefault bool) *Handler {
	return ChangeState(o, path, ToggleMembershipFromEvent, preventDefault, "toggleMembershipFromEvent")
}

// Update stores the input value at path.
func Update(o Owner, path any, preventDefault bool) *Handler {
	return ChangeState(o, path, FromEvent, preventDefault, "fromEvent")
}

func UpdateNumber(o Owner, path any, preventDefault bool) *Handler {
	return ChangeState(o, path, NumberFromEvent, preventDefault, "numberFromEvent")
}

// SetState stores value at path.
func SetState(o Owner, path, value any, preventDefault bool) *Handler {
	return ChangeState(o, path, Constant(value), preventDefault, []any{"constant", value})
}

// DeleteState removes path from state. The first key names the top level
// state entry, which is set to nil when it is the whole path.
func DeleteState(o Owner, path any, preventDefault bool) *Handler {
	keys := deep.Keys(path)
	if len(keys) == 0 {
		return ChangeState(o, keys, Remove(nil), preventDefault, []any{"remove", deep.Path{}})
	}
	rest := keys[1:]
	return ChangeState(o, keys[0], Remove(rest), preventDefault, []any{"remove", rest})
}

func ToggleProp(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, Negate, preventDefault, "negate")
}

func TogglePropValue(o Owner, updateProp string, propPath, indexInProp, value any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, ToggleConstant(value), preventDefault, []any{"toggleConstant", value})
}

func TogglePropFromEvent(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, SetOrNull, preventDefault, "setOrNull")
}

func TogglePropArrayMember(o Owner, updateProp string, propPath, indexInProp, value any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, ToggleMembership(value), preventDefault, []any{"toggleMembership", value})
}

func TogglePropArrayMemberFromEvent(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, ToggleMembershipFromEvent, preventDefault, "toggleMembershipFromEvent")
}

// SetProp passes the input value to updateProp.
func SetProp(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, FromEvent, preventDefault, "fromEvent")
}

func SetPropNumber(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, NumberFromEvent, preventDefault, "numberFromEvent")
}

func SetPropValue(o Owner, updateProp string, propPath, indexInProp, value any, preventDefault bool) *Handler {
	return ChangeProp(o, updateProp, propPath, indexInProp, Constant(value), preventDefault, []any{"constant", value})
}

// DeleteProp passes the prop at propPath with indexInProp removed to
// updateProp.
func DeleteProp(o Owner, updateProp string, propPath, indexInProp any, preventDefault bool) *Handler {
	index := deep.Keys(indexInProp)
	return ChangeProp(o, updateProp, propPath, nil, Remove(index), preventDefault, []any{"remove", index})
}
