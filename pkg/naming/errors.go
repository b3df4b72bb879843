/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrSyntaxError = errors.New("invalid syntax")

func ErrSyntax(msg string, args ...any) error {
	return EnrichError(ErrSyntaxError, msg, args...)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

// Raised when conflicting argument combinations are passed to BuildName
// or Name.Replace, e.g. a short leaf together with a base.
var ErrExclusiveError = errors.New("mutually exclusive")

func ErrExclusive(a, b string) error {
	return EnrichError(ErrExclusiveError, "«%s» and «%s»", a, b)
}
