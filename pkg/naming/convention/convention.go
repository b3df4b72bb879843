/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

// # Convention
//
// A naming convention decomposes a base name (the leaf of a node path,
// stripped of path and namespace qualifiers) into named components and
// composes components back into a base name.
//
// Code that works with conventions, such as the component operations of
// naming.Name, consults Active() when no convention is supplied
// explicitly. Use Enter to install a convention for a scope of code.
type Convention interface {
	// Identity of the convention, used in error messages.
	String() string

	// Returns the Composition describing name under this convention.
	// Decomposing the empty string is an error; everything else is
	// decomposed on a best-effort basis and never fails.
	Decompose(name string) (Composition, error)

	// Returns a Composition built from the given components.
	//
	// Composing a component this convention does not define is an
	// UnknownComponentError; omitting a component the convention
	// requires is a missing-component error.
	Compose(components map[string]string) (Composition, error)
}

// # Composition
//
// The decomposed-component view of a base name under some convention.
// Compositions are immutable; Replace returns a new value.
type Composition interface {
	// The base name described by the composition.
	Name() string

	// Is the name valid under the convention that produced the
	// composition? The baseline is the node name rule (see
	// ValidNodeName); conventions add their own component checks.
	IsValid() bool

	// Returns the value of the named component. ok is false when the
	// convention defines the component but the name does not populate
	// it. Asking for a component the convention does not define is an
	// UnknownComponentError.
	Component(component string) (value string, ok bool, err error)

	// Returns the populated components as a component-to-value map.
	Components() map[string]string

	// Returns a Composition with the named components overridden and
	// all others inherited. Unknown component names are rejected.
	Replace(components map[string]string) (Composition, error)
}

// Returns is string a valid node name and error if not.
//
// A valid node name begins with a letter a-z or A-Z or an underscore,
// followed by any number of letters a-z, A-Z, underscores, and/or
// digits 0-9.
func ValidNodeName(name string) (bool, error) {
	if len(name) < 1 {
		return false, ErrMissed("node name")
	}

	letter := func(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
	digit := func(r rune) bool { return '0' <= r && r <= '9' }

	for p, c := range name {
		if letter(c) || c == '_' {
			continue
		}
		if p > 0 && digit(c) {
			continue
		}
		return false, ErrInvalid("node name «%s» has invalid char «%c» at pos %d", name, c, p)
	}

	return true, nil
}
