package deep

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidKeyType is returned when an element is deleted from a slice with a
// key that is not an int.
type InvalidKeyType struct {
	Key any
}

func newInvalidKeyType(key any) error {
	return errors.WithStack(&InvalidKeyType{Key: key})
}

// Type is the Go type of the offending key.
func (e *InvalidKeyType) Type() string {
	return fmt.Sprintf("%T", e.Key)
}

func (e *InvalidKeyType) Error() string {
	return fmt.Sprintf("expected an int key to delete from a slice, got a %s (%q)", e.Type(), fmt.Sprint(e.Key))
}
