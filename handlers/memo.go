package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Memo is the handler cache of one owner. The zero value is ready to use.
// Entries are created on first request and live as long as the Memo.
// References stored by RegisterRef are read back with Component.Ref.
type Memo struct {
	entries    map[string]any
	composites []composite

	refs any

	// snapshot is the state seen by handlers while All runs them.
	snapshot map[string]any
	pinned   int
}

// Len is the number of handlers built so far.
func (m *Memo) Len() int {
	return len(m.entries) + len(m.composites)
}

func cacheKey(kind string, args ...any) string {
	parts := append([]any{kind}, args...)
	data, err := json.Marshal(parts)
	if err != nil {
		return fmt.Sprintf("%#v", parts)
	}
	return string(data)
}

func cached[T any](o Owner, key string, build func() *T) *T {
	m := o.Memo()
	if h, ok := m.entries[key].(*T); ok {
		return h
	}
	if m.entries == nil {
		m.entries = make(map[string]any)
	}
	h := build()
	m.entries[key] = h
	return h
}

// stateOf is the state handlers should work on: the pinned snapshot while
// All is running, the owner's state otherwise.
func stateOf(o Owner) map[string]any {
	if m := o.Memo(); m.pinned > 0 {
		return m.snapshot
	}
	return o.State()
}

func logger(o Owner) *slog.Logger {
	if c, ok := o.(interface{ ID() string }); ok {
		return slog.Default().With("component", c.ID())
	}
	return slog.Default()
}
