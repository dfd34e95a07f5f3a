package event

// Basic is an Event that records what was done to it. UI adapters that have
// no native event type can use it directly.
type Basic struct {
	Src Target

	Prevented bool
	Stopped   bool
}

func New(target Target) *Basic {
	return &Basic{Src: target}
}

func (b *Basic) PreventDefault()  { b.Prevented = true }
func (b *Basic) StopPropagation() { b.Stopped = true }

func (b *Basic) Target() Target { return b.Src }

// Field is a Target holding a value. OnBlur is called when the field loses
// focus through PreventDefaultAndBlur.
type Field struct {
	Val     any
	Blurred bool
	OnBlur  func()
}

func (f *Field) Value() any { return f.Val }

func (f *Field) Blur() {
	f.Blurred = true
	if f.OnBlur != nil {
		f.OnBlur()
	}
}
