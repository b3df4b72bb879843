/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

func ErrMissedComponent(component string) error {
	return ErrMissed("<%s> component is required", component)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

// Sentinel for errors.Is checks against UnknownComponentError values.
var ErrUnknownComponentError = errors.New("unknown component")

// UnknownComponentError reports component names a convention does not
// define, raised during compose, replace, or component reads. It carries
// the identity of the offending convention and the full sorted list of
// offending component names.
type UnknownComponentError struct {
	Convention string
	Components []string
}

func ErrUnknownComponents(c Convention, components ...string) error {
	sorted := make([]string, len(components))
	copy(sorted, components)
	sort.Strings(sorted)
	return &UnknownComponentError{Convention: c.String(), Components: sorted}
}

func (e *UnknownComponentError) Error() string {
	quoted := make([]string, len(e.Components))
	for i, c := range e.Components {
		quoted[i] = "'" + c + "'"
	}
	noun := "component"
	if len(e.Components) > 1 {
		noun = "components"
	}
	return fmt.Sprintf("unknown %s %s: not defined by convention %s",
		noun, strings.Join(quoted, ", "), e.Convention)
}

func (e *UnknownComponentError) Is(target error) bool {
	return target == ErrUnknownComponentError
}
