/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import (
	"strings"
	"sync/atomic"
)

// # Namespace
//
// Namespace represents an immutable colon-delimited namespace path, either
// relative («foo:bar») or absolute («:foo:bar»). The empty string is an
// alias for «:», the path of the unnamed root namespace.
//
// A Namespace never changes once constructed. Parts derived from its path
// (parent, name, depth, root) are computed on first access and published
// atomically, so values may be shared between goroutines without external
// synchronization.
type Namespace struct {
	path string
	memo atomic.Pointer[nsMemo]
}

// Parts lazily derived from a namespace path. All fields are computed
// together, at most once per Namespace.
type nsMemo struct {
	parent *Namespace // nil when the path declares no parent
	name   string     // last name of the path; empty for the root
	root   *Namespace // first name of the path, or the root namespace
	rest   *Namespace // path relative to root; nil when root is the whole path
	depth  int        // number of (in)direct parents
}

// RootNamespace is the unnamed topmost namespace, the path «:».
var RootNamespace = newRootNamespace()

func newRootNamespace() *Namespace {
	ns := &Namespace{path: NamespaceSeparator}
	ns.memo.Store(&nsMemo{name: "", root: ns, depth: 0})
	return ns
}

// Returns the Namespace for the given namespace path.
//
// The empty string denotes the root namespace, as does «:».
func ParseNamespace(path string) (*Namespace, error) {
	if path == "" || path == NamespaceSeparator {
		return RootNamespace, nil
	}
	if err := checkNamespacePath(path); err != nil {
		return nil, err
	}
	return &Namespace{path: path}, nil
}

// Returns the Namespace for the given namespace path.
//
// # Panics:
//   - if path is not a valid namespace path
func MustParseNamespace(path string) *Namespace {
	ns, err := ParseNamespace(path)
	if err != nil {
		panic(err)
	}
	return ns
}

// Forms a Namespace from multiple parts, concatenated left to right with
// exactly one separator between adjacent parts.
//
// The result is absolute iff the first part is the root namespace or an
// absolute path. The root namespace appearing at any position but the first
// is ignored. Joining zero parts is an error.
func JoinNamespaces(parts ...*Namespace) (*Namespace, error) {
	if len(parts) == 0 {
		return nil, ErrMissed("namespace parts to join")
	}

	var b strings.Builder
	rooted, addedLead := false, false
	for i, p := range parts {
		if p == nil {
			return nil, ErrMissed("namespace part #%d", i+1)
		}
		s := p.path
		if s == NamespaceSeparator {
			if i == 0 {
				rooted = true
			}
			continue
		}
		if !strings.HasPrefix(s, NamespaceSeparator) {
			if b.Len() == 0 {
				addedLead = true
			}
			b.WriteString(NamespaceSeparator)
		}
		b.WriteString(s)
	}

	if b.Len() == 0 {
		return RootNamespace, nil
	}

	joined := b.String()
	if addedLead && !rooted {
		joined = joined[1:]
	}
	return &Namespace{path: joined}, nil
}

// The namespace path as a string. The root namespace renders as «:».
func (ns *Namespace) String() string { return ns.path }

// Translates the path to an absolute path if not already one, resolving it
// against the given current context namespace. A nil current namespace
// denotes a host-free context and is treated as the root namespace.
func (ns *Namespace) Abs(current *Namespace) *Namespace {
	if ns.IsAbs() {
		return ns
	}
	if current == nil || current.IsRoot() {
		return &Namespace{path: NamespaceSeparator + ns.path}
	}
	return &Namespace{path: current.path + NamespaceSeparator + ns.path}
}

// Is the namespace path fully specified (absolute)?
func (ns *Namespace) IsAbs() bool {
	return strings.HasPrefix(ns.path, NamespaceSeparator)
}

// Is the namespace path only partially specified (relative)?
func (ns *Namespace) IsRel() bool { return !ns.IsAbs() }

// Does the namespace path represent the unnamed root namespace?
func (ns *Namespace) IsRoot() bool { return ns.path == NamespaceSeparator }

// Is the namespace path valid, i.e. does every name of the path satisfy
// the namespace name rule? The root namespace is valid.
func (ns *Namespace) IsValid() bool {
	if ns.IsRoot() {
		return true
	}
	names := strings.TrimPrefix(ns.path, NamespaceSeparator)
	for _, name := range strings.Split(names, NamespaceSeparator) {
		if ok, _ := ValidNamespaceName(name); !ok {
			return false
		}
	}
	return true
}

// The name of the namespace without any qualifying parent. Empty for the
// root namespace.
func (ns *Namespace) Name() string { return ns.split().name }

// The parent of the namespace path, or nil if the path declares none.
// «:foo» has the root namespace as parent; «foo» has none.
func (ns *Namespace) Parent() *Namespace { return ns.split().parent }

// How many layers of namespaces the namespace name is nested within.
func (ns *Namespace) Depth() int { return ns.split().depth }

// Returns the namespace path and all its iteratively declared parents,
// ordered from its root to itself.
func (ns *Namespace) Hierarchy() []*Namespace {
	if p := ns.Parent(); p != nil {
		return append(p.Hierarchy(), ns)
	}
	return []*Namespace{ns}
}

// Splits the namespace path into its parent (nil if none declared) and
// an unqualified namespace name.
func (ns *Namespace) Split() (parent, name *Namespace) {
	m := ns.split()
	if m.parent == nil {
		return nil, ns
	}
	return m.parent, &Namespace{path: m.name}
}

// Splits the namespace path into its root and possibly a path relative to
// that. The second value is nil when the root is the whole path.
func (ns *Namespace) SplitRoot() (root, rest *Namespace) {
	m := ns.split()
	return m.root, m.rest
}

// Equal reports whether two namespace paths are the same, by canonical
// string equality.
func (ns *Namespace) Equal(other *Namespace) bool {
	if ns == other {
		return true
	}
	return ns != nil && other != nil && ns.path == other.path
}

// Compare two namespace paths.
//
// Namespaces are compared from their roots and down the hierarchy they
// represent, name by name; a path precedes any of its own extensions.
// CompareNamespace returns 0 only for equal paths, so it induces a strict
// total order.
func CompareNamespace(a, b *Namespace) int {
	for {
		ra, resta := a.SplitRoot()
		rb, restb := b.SplitRoot()
		if c := strings.Compare(ra.Name(), rb.Name()); c != 0 {
			return c
		}
		if resta == nil {
			if restb == nil {
				return 0
			}
			return -1
		}
		if restb == nil {
			return 1
		}
		a, b = resta, restb
	}
}

// Text marshaling support
func (ns *Namespace) MarshalText() ([]byte, error) {
	return []byte(ns.path), nil
}

// Text unmarshaling support
func (ns *Namespace) UnmarshalText(text []byte) error {
	parsed, err := ParseNamespace(string(text))
	if err != nil {
		return err
	}
	ns.path = parsed.path
	ns.memo.Store(nil)
	return nil
}

// split returns the lazily derived parts of the path, computing and
// publishing them on first access. Racing computations produce identical
// values, so the first published memo wins.
func (ns *Namespace) split() *nsMemo {
	if m := ns.memo.Load(); m != nil {
		return m
	}
	m := ns.computeMemo()
	if ns.memo.CompareAndSwap(nil, m) {
		return m
	}
	return ns.memo.Load()
}

func (ns *Namespace) computeMemo() *nsMemo {
	if ns.path == NamespaceSeparator {
		return &nsMemo{name: "", root: RootNamespace, depth: 0}
	}

	m := &nsMemo{depth: strings.Count(ns.path, NamespaceSeparator)}

	if i := strings.LastIndex(ns.path, NamespaceSeparator); i >= 0 {
		if i == 0 {
			m.parent = RootNamespace
		} else {
			m.parent = &Namespace{path: ns.path[:i]}
		}
		m.name = ns.path[i+1:]
	} else {
		m.name = ns.path
	}

	if i := strings.Index(ns.path, NamespaceSeparator); i >= 0 {
		if i == 0 {
			m.root = RootNamespace
		} else {
			m.root = &Namespace{path: ns.path[:i]}
		}
		if rest := ns.path[i+1:]; rest != "" {
			m.rest = &Namespace{path: rest}
		}
	} else {
		m.root = ns
	}

	return m
}
