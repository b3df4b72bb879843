/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import (
	"strings"
	"sync/atomic"

	"github.com/namekit/namekit/pkg/naming/convention"
)

// # Name
//
// Name represents an immutable pipe-delimited node path, e.g.
// «|group|char:body». The final path segment may carry a namespace
// qualifier before the base name; the base name is the part any naming
// convention operates on.
//
// The reserved token «<world>» denotes the implicit graph root node. It
// joins, orders, and parents like any other Name but has no parent and a
// fixed canonical string.
//
// Like Namespace, a Name is immutable and derives its parts lazily with
// compute-once-publish caching, so values may be shared freely.
type Name struct {
	path string
	memo atomic.Pointer[nameMemo]
	leaf atomic.Pointer[leafMemo]
}

// Parts lazily derived from the path, computed together at most once.
type nameMemo struct {
	parent *Name  // nil when the path declares no parent
	leaf   string // last path segment, including any namespace qualifier
	root   *Name
	rest   *Name // path relative to root; nil when root is the whole path
	depth  int
}

// The namespace/base split of the leaf segment, derived at most once.
type leafMemo struct {
	ns   *Namespace
	base string
}

// World is the implicit graph root node all rooted paths hang under.
var World = newWorld()

func newWorld() *Name {
	n := &Name{path: WorldToken}
	n.memo.Store(&nameMemo{leaf: WorldToken, root: n, depth: 0})
	n.leaf.Store(&leafMemo{ns: RootNamespace, base: WorldToken})
	return n
}

// Returns the Name for the given node path.
//
// Segments are canonicalized: a superfluous root-namespace marker is
// collapsed («:obj» becomes «obj»). «<world>» and «:<world>» both denote
// the graph root node. Empty path segments are a syntax error.
func ParseName(path string) (*Name, error) {
	if path == WorldToken || path == NamespaceSeparator+WorldToken {
		return World, nil
	}
	if path == "" {
		return nil, ErrSyntax("invalid name «»: empty string forbidden")
	}

	s, rooted := strings.CutPrefix(path, PathSeparator)
	if s == "" {
		return nil, ErrSyntax("invalid name «%s»: empty path segment forbidden", path)
	}

	segs := strings.Split(s, PathSeparator)
	canon := make([]string, len(segs))
	for i, seg := range segs {
		c, err := checkSegment(seg)
		if err != nil {
			return nil, err
		}
		canon[i] = c
	}

	p := strings.Join(canon, PathSeparator)
	if rooted {
		p = PathSeparator + p
	}
	return &Name{path: p}, nil
}

// Returns the Name for the given node path.
//
// # Panics:
//   - if path is not a valid node path
func MustParseName(path string) *Name {
	n, err := ParseName(path)
	if err != nil {
		panic(err)
	}
	return n
}

// Forms a Name from multiple parts, concatenated left to right with
// exactly one path separator between adjacent parts.
//
// The result is rooted iff the first part is World or a rooted path.
// World appearing at any position but the first is ignored; joining World
// alone returns World. Joining zero parts is an error.
func JoinNames(parts ...*Name) (*Name, error) {
	if len(parts) == 0 {
		return nil, ErrMissed("name parts to join")
	}

	var b strings.Builder
	rooted, addedLead := false, false
	for i, p := range parts {
		if p == nil {
			return nil, ErrMissed("name part #%d", i+1)
		}
		if p.path == WorldToken {
			if i == 0 {
				rooted = true
			}
			continue
		}
		s := p.path
		if !strings.HasPrefix(s, PathSeparator) {
			if b.Len() == 0 {
				addedLead = true
			}
			b.WriteString(PathSeparator)
		}
		b.WriteString(s)
	}

	if b.Len() == 0 {
		return World, nil
	}

	joined := b.String()
	if addedLead && !rooted {
		joined = joined[1:]
	}
	return &Name{path: joined}, nil
}

// The node path as a string. The graph root node renders as «<world>».
func (n *Name) String() string { return n.path }

// Is the path anchored at the graph root node? True iff the path begins
// with the path separator or is World itself. Rooted paths identify the
// same node regardless of context.
func (n *Name) IsRooted() bool {
	return n.path == WorldToken || strings.HasPrefix(n.path, PathSeparator)
}

// IsFull is an alias of IsRooted: a full path enumerates every ancestor
// up to the graph root.
func (n *Name) IsFull() bool { return n.IsRooted() }

// The first segment of the path as a Name; World for rooted paths.
func (n *Name) Root() *Name { return n.split().root }

// The parent path, or nil if the path declares none. «|obj» has World as
// parent; «obj» has none; World has none.
func (n *Name) Parent() *Name { return n.split().parent }

// How many (in)direct parents the path declares.
func (n *Name) Depth() int { return n.split().depth }

// Returns the path and all its iteratively declared parents, ordered from
// its root to itself.
func (n *Name) Hierarchy() []*Name {
	if p := n.Parent(); p != nil {
		return append(p.Hierarchy(), n)
	}
	return []*Name{n}
}

// Splits the path into its parent (nil if none declared) and the leaf
// segment as a relative Name.
func (n *Name) Split() (parent, leaf *Name) {
	m := n.split()
	if m.parent == nil {
		return nil, n
	}
	return m.parent, &Name{path: m.leaf}
}

// Splits the path into its root and possibly a path relative to that.
// The second value is nil when the root is the whole path.
func (n *Name) SplitRoot() (root, rest *Name) {
	m := n.split()
	return m.root, m.rest
}

// The namespace qualifying the leaf segment, or the root namespace when
// the leaf declares none.
func (n *Name) Namespace() *Namespace { return n.splitLeaf().ns }

// The base name of the leaf segment, stripped of path and namespace
// qualifiers. This is the part naming conventions decompose.
func (n *Name) Base() string { return n.splitLeaf().base }

// NamespaceMode selects how Short renders the leaf's namespace qualifier.
type NamespaceMode int

const (
	// The leaf segment as declared by the path.
	NamespaceDeclared NamespaceMode = iota

	// Always qualify: the root namespace renders as a bare «:» marker.
	NamespaceExplicit

	// The base name only.
	NamespaceOmitted
)

// Short returns the leaf segment without any path qualifier, rendering
// the namespace per mode.
func (n *Name) Short(mode NamespaceMode) string {
	switch mode {
	case NamespaceExplicit:
		ns := n.Namespace()
		if ns.IsRoot() {
			return NamespaceSeparator + n.Base()
		}
		return ns.String() + NamespaceSeparator + n.Base()
	case NamespaceOmitted:
		return n.Base()
	default:
		return n.split().leaf
	}
}

// Is the path valid? Validity requires, at every level of the path, a
// valid namespace, and a base satisfying the node name rule; the leaf
// base is additionally validated by the given convention (or the active
// one when none is given). World is always valid.
func (n *Name) IsValid(conv ...convention.Convention) bool {
	if n.path == WorldToken {
		return true
	}
	for cur := n; cur != nil && cur.path != WorldToken; cur = cur.Parent() {
		if !cur.Namespace().IsValid() {
			return false
		}
		if cur == n {
			comp, err := pickConvention(conv).Decompose(cur.Base())
			if err != nil || !comp.IsValid() {
				return false
			}
		} else if ok, _ := convention.ValidNodeName(cur.Base()); !ok {
			return false
		}
	}
	return true
}

// Decompose returns the leaf base's composition under the given
// convention, or under the active convention when none is given.
func (n *Name) Decompose(conv ...convention.Convention) (convention.Composition, error) {
	return pickConvention(conv).Decompose(n.Base())
}

// Component returns the value of the named component of the leaf base,
// delegating to the given (or active) convention. ok is false when the
// component is defined but not populated.
func (n *Name) Component(component string, conv ...convention.Convention) (value string, ok bool, err error) {
	comp, err := n.Decompose(conv...)
	if err != nil {
		return "", false, err
	}
	return comp.Component(component)
}

// Equal reports whether two node paths are the same, by canonical string
// equality.
func (n *Name) Equal(other *Name) bool {
	if n == other {
		return true
	}
	return n != nil && other != nil && n.path == other.path
}

// Compare two node paths.
//
// Names are compared from their roots and down the hierarchy, segment by
// segment; at each level the namespace is compared before the base, and a
// path precedes any of its own extensions. CompareName returns 0 only for
// equal paths, so it induces a strict total order.
func CompareName(a, b *Name) int {
	for {
		ra, resta := a.SplitRoot()
		rb, restb := b.SplitRoot()
		if c := compareSegment(ra, rb); c != 0 {
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

// compareSegment compares two single-segment names: namespace first, then
// base. World compares by its fixed token with the root namespace.
func compareSegment(a, b *Name) int {
	if c := CompareNamespace(a.Namespace(), b.Namespace()); c != 0 {
		return c
	}
	return strings.Compare(a.Base(), b.Base())
}

// Text marshaling support
func (n *Name) MarshalText() ([]byte, error) {
	return []byte(n.path), nil
}

// Text unmarshaling support
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	n.path = parsed.path
	n.memo.Store(nil)
	n.leaf.Store(nil)
	return nil
}

func pickConvention(conv []convention.Convention) convention.Convention {
	if len(conv) > 0 && conv[0] != nil {
		return conv[0]
	}
	return convention.Active()
}

func (n *Name) split() *nameMemo {
	if m := n.memo.Load(); m != nil {
		return m
	}
	m := n.computeMemo()
	if n.memo.CompareAndSwap(nil, m) {
		return m
	}
	return n.memo.Load()
}

func (n *Name) computeMemo() *nameMemo {
	if n.path == WorldToken {
		return &nameMemo{leaf: WorldToken, root: World, depth: 0}
	}

	m := &nameMemo{depth: strings.Count(n.path, PathSeparator)}

	if i := strings.LastIndex(n.path, PathSeparator); i >= 0 {
		if i == 0 {
			m.parent = World
		} else {
			m.parent = &Name{path: n.path[:i]}
		}
		m.leaf = n.path[i+1:]
	} else {
		m.leaf = n.path
	}

	if i := strings.Index(n.path, PathSeparator); i >= 0 {
		if i == 0 {
			m.root = World
		} else {
			m.root = &Name{path: n.path[:i]}
		}
		if rest := n.path[i+1:]; rest != "" {
			m.rest = &Name{path: rest}
		}
	} else {
		m.root = n
	}

	return m
}

func (n *Name) splitLeaf() *leafMemo {
	if m := n.leaf.Load(); m != nil {
		return m
	}
	leaf := n.split().leaf
	m := &leafMemo{}
	if i := strings.LastIndex(leaf, NamespaceSeparator); i >= 0 {
		m.ns = &Namespace{path: leaf[:i]}
		m.base = leaf[i+1:]
	} else {
		m.ns = RootNamespace
		m.base = leaf
	}
	if n.leaf.CompareAndSwap(nil, m) {
		return m
	}
	return n.leaf.Load()
}
