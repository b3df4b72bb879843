/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import "fmt"

// The convention in effect when no scope is open.
var active Convention = None

// Returns the naming convention currently in effect. By default, and
// outside any scope, that is the None convention.
func Active() Convention { return active }

// # Scope
//
// A Scope delimits a block of code within which a naming convention is in
// effect. Scopes follow a strict LIFO discipline: a scope must be exited
// before any scope opened around it, typically with defer:
//
//	scope := convention.Enter(convention.Slots)
//	defer scope.Exit()
//
// The active-convention slot is process-wide and not designed for
// concurrent mutation; hosts running scopes on several goroutines must
// confine each scope to one goroutine.
type Scope struct {
	installed Convention
	prev      Convention
}

// Enter opens a new scope, installing c as the active convention, and
// returns the scope to exit when the block ends.
func Enter(c Convention) *Scope {
	s := &Scope{installed: c, prev: active}
	active = c
	return s
}

// Exit closes the scope and restores the convention that was active when
// the scope was entered.
//
// # Panics:
//   - if the active convention is not the one this scope installed, which
//     means an inner scope is still open. This is a programming fault, not
//     a data fault, and is not recoverable.
func (s *Scope) Exit() {
	if active != s.installed {
		panic(fmt.Sprintf("convention scope for %v exited before inner scope for %v", s.installed, active))
	}
	active = s.prev
}
