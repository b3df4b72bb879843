/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import (
	"strings"

	"github.com/namekit/namekit/pkg/naming/convention"
)

// NamePart describes one part of a node path under construction. Parts
// are applied in order by BuildName and Replace.
type NamePart func(*nameBuilder) error

// Builder state. The *Set flags mark parts holding a value, seeded or
// explicit; the *Explicit flags mark parts named by an option, which is
// what the short-leaf exclusivity check is concerned with.
type nameBuilder struct {
	parent       *Name
	parentSet    bool
	ns           *Namespace
	nsSet        bool
	nsExplicit   bool
	base         string
	baseSet      bool
	baseExplicit bool
	short        string
	shortSet     bool
	comps        map[string]string
	conv         convention.Convention
}

// WithParent sets the parent path of the built name.
func WithParent(parent *Name) NamePart {
	return func(b *nameBuilder) error {
		if parent == nil {
			return ErrMissed("parent name")
		}
		b.parent, b.parentSet = parent, true
		return nil
	}
}

// NoParent removes any parent path, producing a relative single-segment
// name.
func NoParent() NamePart {
	return func(b *nameBuilder) error {
		b.parent, b.parentSet = nil, true
		return nil
	}
}

// WithShort sets the whole leaf segment at once, namespace qualifier
// included. Mutually exclusive with WithNamespace, WithBase and
// WithComponent.
func WithShort(short string) NamePart {
	return func(b *nameBuilder) error {
		b.short, b.shortSet = short, true
		return nil
	}
}

// WithNamespace sets the namespace qualifying the leaf segment.
func WithNamespace(ns *Namespace) NamePart {
	return func(b *nameBuilder) error {
		if ns == nil {
			return ErrMissed("namespace")
		}
		b.ns, b.nsSet, b.nsExplicit = ns, true, true
		return nil
	}
}

// NoNamespace strips the leaf namespace qualifier, placing the node in
// the root namespace.
func NoNamespace() NamePart {
	return func(b *nameBuilder) error {
		b.ns, b.nsSet, b.nsExplicit = RootNamespace, true, true
		return nil
	}
}

// WithBase sets the base name of the leaf segment.
func WithBase(base string) NamePart {
	return func(b *nameBuilder) error {
		b.base, b.baseSet, b.baseExplicit = base, true, true
		return nil
	}
}

// WithConvention selects the convention used to compose or recompose the
// base name from components. Without it the active convention applies.
func WithConvention(conv convention.Convention) NamePart {
	return func(b *nameBuilder) error {
		if conv == nil {
			return ErrMissed("convention")
		}
		b.conv = conv
		return nil
	}
}

// WithComponent sets one named component of the base name, composed or
// recomposed under the effective convention. Mutually exclusive with
// WithShort.
func WithComponent(component, value string) NamePart {
	return func(b *nameBuilder) error {
		if b.comps == nil {
			b.comps = make(map[string]string)
		}
		b.comps[component] = value
		return nil
	}
}

// BuildName constructs a node path from parts. A base name is required,
// either directly, via WithShort, or composed from components under the
// effective convention.
func BuildName(parts ...NamePart) (*Name, error) {
	b := &nameBuilder{}
	for _, part := range parts {
		if part == nil {
			return nil, ErrMissed("name part")
		}
		if err := part(b); err != nil {
			return nil, err
		}
	}
	return b.build()
}

// Replace derives a new node path from n with the given parts changed.
// Unmentioned parts carry over; components recompose within the current
// base under the effective convention.
func (n *Name) Replace(parts ...NamePart) (*Name, error) {
	b := &nameBuilder{
		parent:    n.Parent(),
		parentSet: true,
		ns:        n.Namespace(),
		nsSet:     true,
		base:      n.Base(),
		baseSet:   true,
	}
	for _, part := range parts {
		if part == nil {
			return nil, ErrMissed("name part")
		}
		if err := part(b); err != nil {
			return nil, err
		}
	}
	return b.build()
}

func (b *nameBuilder) build() (*Name, error) {
	if b.shortSet {
		if b.nsExplicit {
			return nil, ErrExclusive("WithShort", "WithNamespace")
		}
		if b.baseExplicit {
			return nil, ErrExclusive("WithShort", "WithBase")
		}
		if b.comps != nil {
			return nil, ErrExclusive("WithShort", "WithComponent")
		}
		if err := b.splitShort(); err != nil {
			return nil, err
		}
	}

	base, err := b.composeBase()
	if err != nil {
		return nil, err
	}
	if base == "" {
		return nil, ErrMissed("base name")
	}
	if strings.Contains(base, PathSeparator) || strings.Contains(base, NamespaceSeparator) {
		return nil, ErrInvalid("base name «%s»: separators forbidden", base)
	}

	leaf := base
	if b.nsSet && !b.ns.IsRoot() {
		// the root marker is superfluous on a leaf qualifier; strip it to
		// keep the canonical, reparseable form
		ns := strings.TrimPrefix(b.ns.String(), NamespaceSeparator)
		leaf = ns + NamespaceSeparator + base
	}

	if b.parentSet && b.parent != nil {
		return JoinNames(b.parent, &Name{path: leaf})
	}
	return &Name{path: leaf}, nil
}

// splitShort resolves a WithShort value into namespace and base.
func (b *nameBuilder) splitShort() error {
	short := b.short
	if strings.Contains(short, PathSeparator) {
		return ErrInvalid("short name «%s»: path separator forbidden", short)
	}
	b.ns, b.nsSet = RootNamespace, true
	if i := strings.LastIndex(short, NamespaceSeparator); i >= 0 {
		ns, err := ParseNamespace(short[:i])
		if err != nil {
			return err
		}
		b.ns = ns
		short = short[i+1:]
	}
	b.base, b.baseSet = short, true
	return nil
}

// composeBase resolves the effective base name from the builder state:
// an explicit base possibly recomposed with component overrides, or a
// base composed from components alone.
func (b *nameBuilder) composeBase() (string, error) {
	if b.comps == nil {
		return b.base, nil
	}
	conv := b.conv
	if conv == nil {
		conv = convention.Active()
	}
	if b.baseSet {
		comp, err := conv.Decompose(b.base)
		if err != nil {
			return "", err
		}
		replaced, err := comp.Replace(b.comps)
		if err != nil {
			return "", err
		}
		return replaced.Name(), nil
	}
	comp, err := conv.Compose(b.comps)
	if err != nil {
		return "", err
	}
	return comp.Name(), nil
}
