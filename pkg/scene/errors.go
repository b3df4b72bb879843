/*
 * Copyright (c) 2026-present NameKit project
 */

package scene

import (
	"errors"
	"fmt"
)

// Raised when an identifier matches no node in the registry.
var ErrNotExistError = errors.New("does not exist")

// NotExistError reports the identifier that failed to resolve.
type NotExistError struct {
	Identifier string
}

func ErrNotExist(identifier string) error {
	return &NotExistError{Identifier: identifier}
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("node «%s» %v", e.Identifier, ErrNotExistError)
}

func (e *NotExistError) Is(target error) bool { return target == ErrNotExistError }

// Raised when an identifier matches more than one node in the registry.
var ErrNotUniqueError = errors.New("is not unique")

// NotUniqueError reports the ambiguous identifier and how many nodes it
// matched.
type NotUniqueError struct {
	Identifier string
	Matches    int
}

func ErrNotUnique(identifier string, matches int) error {
	return &NotUniqueError{Identifier: identifier, Matches: matches}
}

func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("node «%s» %v: %d nodes match", e.Identifier, ErrNotUniqueError, e.Matches)
}

func (e *NotUniqueError) Is(target error) bool { return target == ErrNotUniqueError }
