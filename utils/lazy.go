package utils

// Lazy holds a value that is computed on first use.
type Lazy[T any] struct {
	set bool
	val T
}

func (c *Lazy[T]) Value(setter func() T) T {
	if c.set {
		return c.val
	}
	c.set = true
	c.val = setter()
	return c.val
}
