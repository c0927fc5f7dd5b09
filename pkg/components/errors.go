package components

import (
	"errors"
	"fmt"
)

// ErrInvalidComponent is the sentinel wrapped by every construction failure.
var ErrInvalidComponent = errors.New("invalid component")

// ErrUnknownComponentType is returned when decoding a payload whose type tag
// does not name a known component.
var ErrUnknownComponentType = errors.New("unknown component type")

// ConstructionError reports a field combination rejected while building a
// component.
type ConstructionError struct {
	Component ComponentType
	Field     string
	Reason    string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Component, e.Field, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrInvalidComponent
}

func invalid(component ComponentType, field, reason string) error {
	return &ConstructionError{Component: component, Field: field, Reason: reason}
}
