package mythoji

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned for values which are not a member of their
// category, e.g. Item(-1).
var ErrInvalidValue = errors.New("invalid category value")

// ErrUnknownName is returned by the ByName functions for names without a
// matching category member.
var ErrUnknownName = errors.New("unknown category member name")

// InvalidValueError reports a value outside of its category.
// It matches ErrInvalidValue with errors.Is.
type InvalidValueError struct {
	Category string // e.g. "Person"
	Value    int
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s(%d)", ErrInvalidValue, e.Category, e.Value)
}

// Is makes errors.Is(err, ErrInvalidValue) work.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func invalidValue(category string, value int) error {
	tracer().P("category", category).Debugf("value %d out of range", value)
	return &InvalidValueError{Category: category, Value: value}
}

func unknownName(category string, name string) error {
	tracer().P("category", category).Debugf("no member named %q", name)
	return fmt.Errorf("%w: %s %q", ErrUnknownName, category, name)
}
