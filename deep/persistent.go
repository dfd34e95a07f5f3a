package deep

import (
	"github.com/benbjohnson/immutable"
)

var (
	_ Persistent = (*Map)(nil)
	_ Persistent = (*List)(nil)
)

// Map is a Persistent map with string keys.
type Map struct {
	m *immutable.Map[string, any]
}

func NewMap(entries map[string]any) *Map {
	m := immutable.NewMap[string, any](nil)
	for k, v := range entries {
		m = m.Set(k, v)
	}
	return &Map{m: m}
}

func (m *Map) Get(key string) (any, bool) {
	return m.m.Get(key)
}

func (m *Map) Len() int {
	return m.m.Len()
}

// ToMap copies the top level entries into a plain map.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.m.Len())
	itr := m.m.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		out[k] = v
	}
	return out
}

func (m *Map) GetIn(path Path) (any, bool) {
	if len(path) == 0 {
		return m, true
	}
	v, ok := m.m.Get(mapKey(path[0]))
	if !ok {
		return nil, false
	}
	return lookup(v, path[1:], true)
}

func (m *Map) SetIn(path Path, value any) Persistent {
	if len(path) == 0 {
		return m
	}
	k := mapKey(path[0])
	cur, _ := m.m.Get(k)
	v, ok := set(cur, path[1:], value, true)
	if !ok {
		return m
	}
	return &Map{m: m.m.Set(k, v)}
}

func (m *Map) DeleteIn(path Path) (Persistent, error) {
	if len(path) == 0 {
		return m, nil
	}
	k := mapKey(path[0])
	cur, ok := m.m.Get(k)
	if !ok {
		return m, nil
	}
	if len(path) == 1 {
		return &Map{m: m.m.Delete(k)}, nil
	}
	v, err := deleteIn(cur, path[1:], true)
	if err != nil {
		return m, err
	}
	if Same(v, cur) {
		return m, nil
	}
	return &Map{m: m.m.Set(k, v)}, nil
}

// List is a Persistent list addressed by int keys.
type List struct {
	l *immutable.List[any]
}

func NewList(values ...any) *List {
	return &List{l: immutable.NewList[any](values...)}
}

func (l *List) Len() int {
	return l.l.Len()
}

func (l *List) ToSlice() []any {
	out := make([]any, l.l.Len())
	for i := range out {
		out[i] = l.l.Get(i)
	}
	return out
}

func (l *List) GetIn(path Path) (any, bool) {
	if len(path) == 0 {
		return l, true
	}
	i, ok := index(path[0])
	if !ok || i >= l.l.Len() {
		return nil, false
	}
	return lookup(l.l.Get(i), path[1:], true)
}

func (l *List) SetIn(path Path, value any) Persistent {
	if len(path) == 0 {
		return l
	}
	i, ok := index(path[0])
	if !ok || i-l.l.Len() > MaxGap {
		return l
	}
	var cur any
	if i < l.l.Len() {
		cur = l.l.Get(i)
	}
	v, ok := set(cur, path[1:], value, true)
	if !ok {
		return l
	}
	if i < l.l.Len() {
		return &List{l: l.l.Set(i, v)}
	}
	out := l.l
	for out.Len() < i {
		out = out.Append(nil)
	}
	return &List{l: out.Append(v)}
}

func (l *List) DeleteIn(path Path) (Persistent, error) {
	if len(path) == 0 {
		return l, nil
	}
	if len(path) > 1 {
		i, ok := index(path[0])
		if !ok || i >= l.l.Len() {
			return l, nil
		}
		cur := l.l.Get(i)
		v, err := deleteIn(cur, path[1:], true)
		if err != nil {
			return l, err
		}
		if Same(v, cur) {
			return l, nil
		}
		return &List{l: l.l.Set(i, v)}, nil
	}

	i, ok := path[0].(int)
	if !ok {
		return l, newInvalidKeyType(path[0])
	}
	if i < 0 {
		i += l.l.Len()
	}
	if i < 0 || i >= l.l.Len() {
		return l, nil
	}
	out := l.l.Slice(0, i)
	for j := i + 1; j < l.l.Len(); j++ {
		out = out.Append(l.l.Get(j))
	}
	return &List{l: out}, nil
}
