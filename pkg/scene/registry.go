/*
 * Copyright (c) 2026-present NameKit project
 */

// Package scene keeps an in-memory registry of scene graph nodes keyed by
// stable identity, so node paths stay usable across renames and reparents.
package scene

import (
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"

	"github.com/namekit/namekit/pkg/naming"
)

// Node is a stable handle to one registered scene node. The handle stays
// valid across renames; its path is looked up in the registry on demand.
type Node struct {
	id  uuid.UUID
	reg *Registry
}

// ID returns the node's stable identity.
func (n Node) ID() uuid.UUID { return n.id }

// Name returns the node's current rooted path, or an error when the node
// has been removed from its registry.
func (n Node) Name() (*naming.Name, error) {
	return n.reg.nameOf(n.id)
}

// Registry tracks the rooted path of every known node and resolves node
// identifiers, exact or wildcarded, back to handles.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	paths   map[uuid.UUID]*naming.Name
	current *naming.Namespace
	worldID uuid.UUID
}

// NewRegistry returns an empty registry whose current namespace is the
// root namespace.
func NewRegistry() *Registry {
	return &Registry{
		paths:   make(map[uuid.UUID]*naming.Name),
		current: naming.RootNamespace,
		worldID: uuid.New(),
	}
}

// World returns the handle of the implicit graph root node. The world is
// always resolvable, is never listed, and cannot be renamed or removed.
func (r *Registry) World() Node {
	return Node{id: r.worldID, reg: r}
}

// Current returns the registry's current namespace, the context relative
// namespaces resolve against.
func (r *Registry) Current() *naming.Namespace {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetCurrent changes the registry's current namespace. A nil namespace
// resets to the root.
func (r *Registry) SetCurrent(ns *naming.Namespace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ns == nil {
		ns = naming.RootNamespace
	}
	r.current = ns
}

// Add registers a node under the given path and returns its handle. A
// relative path is anchored under the graph root. Paths need not be
// unique; ambiguity is the resolver's concern.
func (r *Registry) Add(name *naming.Name) (Node, error) {
	if name == nil {
		return Node{}, naming.ErrMissed("node name")
	}
	rooted, err := rootedName(name)
	if err != nil {
		return Node{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.paths[id] = rooted
	if logger.IsVerbose() {
		logger.Verbose("registered", rooted.String(), "as", id.String())
	}
	return Node{id: id, reg: r}, nil
}

// Rename moves the node to a new path. A relative path keeps the node
// under its current parent.
func (r *Registry) Rename(n Node, name *naming.Name) error {
	if name == nil {
		return naming.ErrMissed("node name")
	}
	if n.id == r.worldID {
		return naming.ErrInvalid("the graph root node cannot be renamed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.paths[n.id]
	if !ok {
		return ErrNotExist(n.id.String())
	}

	rooted := name
	if !name.IsRooted() {
		parent := old.Parent()
		if parent == nil {
			parent = naming.World
		}
		joined, err := naming.JoinNames(parent, name)
		if err != nil {
			return err
		}
		rooted = joined
	}
	r.paths[n.id] = rooted
	if logger.IsVerbose() {
		logger.Verbose("renamed", old.String(), "to", rooted.String())
	}
	return nil
}

// Remove unregisters the node. Removing an unknown node is an error.
func (r *Registry) Remove(n Node) error {
	if n.id == r.worldID {
		return naming.ErrInvalid("the graph root node cannot be removed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.paths[n.id]; !ok {
		return ErrNotExist(n.id.String())
	}
	delete(r.paths, n.id)
	return nil
}

// Resolve finds the single node the identifier denotes.
//
// The world token denotes the implicit graph root node. A rooted
// identifier must match a node path exactly. A relative identifier
// matches any node whose path ends with it on a segment boundary.
// Identifiers may use glob wildcards («*», «**»), matched per path
// segment.
//
// # Errors:
//   - NotExistError when nothing matches
//   - NotUniqueError when more than one node matches
func (r *Registry) Resolve(identifier string) (Node, error) {
	if name, err := naming.ParseName(identifier); err == nil && name.Equal(naming.World) {
		return r.World(), nil
	}
	nodes, err := r.resolveAll(identifier)
	if err != nil {
		return Node{}, err
	}
	switch len(nodes) {
	case 0:
		return Node{}, ErrNotExist(identifier)
	case 1:
		return nodes[0], nil
	default:
		return Node{}, ErrNotUnique(identifier, len(nodes))
	}
}

// ResolveAll finds every node the identifier denotes, ordered by path.
// No match is not an error; the result is simply empty.
func (r *Registry) ResolveAll(identifier string) ([]Node, error) {
	return r.resolveAll(identifier)
}

// List returns the nodes matching any of the identifiers, ordered by path
// and deduplicated. Without identifiers it returns every registered node.
func (r *Registry) List(identifiers ...string) ([]Node, error) {
	if len(identifiers) == 0 {
		r.mu.RLock()
		nodes := make([]nodePath, 0, len(r.paths))
		for id, name := range r.paths {
			nodes = append(nodes, nodePath{id: id, name: name})
		}
		r.mu.RUnlock()
		return r.sorted(nodes), nil
	}

	seen := make(map[uuid.UUID]bool)
	var nodes []nodePath
	for _, identifier := range identifiers {
		matched, err := r.resolveAll(identifier)
		if err != nil {
			return nil, err
		}
		for _, n := range matched {
			if seen[n.id] {
				continue
			}
			seen[n.id] = true
			name, err := r.nameOf(n.id)
			if err != nil {
				continue // removed since matching
			}
			nodes = append(nodes, nodePath{id: n.id, name: name})
		}
	}
	return r.sorted(nodes), nil
}

// ByID returns the handle for a known node identity.
func (r *Registry) ByID(id uuid.UUID) (Node, error) {
	if _, err := r.nameOf(id); err != nil {
		return Node{}, err
	}
	return Node{id: id, reg: r}, nil
}

// Abs resolves the given name against the registry: a relative path is
// anchored under the graph root, and the leaf namespace, when relative,
// is resolved against the current namespace.
func (r *Registry) Abs(name *naming.Name) (*naming.Name, error) {
	if name == nil {
		return nil, naming.ErrMissed("node name")
	}
	rooted, err := rootedName(name)
	if err != nil {
		return nil, err
	}
	ns := rooted.Namespace()
	if ns.IsAbs() || ns.IsRoot() {
		return rooted, nil
	}
	return rooted.Replace(naming.WithNamespace(ns.Abs(r.Current())))
}

type nodePath struct {
	id   uuid.UUID
	name *naming.Name
}

func (r *Registry) nameOf(id uuid.UUID) (*naming.Name, error) {
	if id == r.worldID {
		return naming.World, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.paths[id]
	if !ok {
		return nil, ErrNotExist(id.String())
	}
	return name, nil
}

func (r *Registry) resolveAll(identifier string) ([]Node, error) {
	if identifier == "" {
		return nil, naming.ErrMissed("node identifier")
	}

	pat, err := pattern(identifier)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]nodePath, 0)
	for id, name := range r.paths {
		ok, err := doublestar.Match(pat, slashed(name.String()))
		if err != nil {
			r.mu.RUnlock()
			return nil, naming.ErrSyntax("invalid identifier pattern «%s»: %v", identifier, err)
		}
		if ok {
			matched = append(matched, nodePath{id: id, name: name})
		}
	}
	r.mu.RUnlock()

	return r.sorted(matched), nil
}

func (r *Registry) sorted(nodes []nodePath) []Node {
	sort.Slice(nodes, func(i, j int) bool {
		return naming.CompareName(nodes[i].name, nodes[j].name) < 0
	})
	out := make([]Node, len(nodes))
	for i, np := range nodes {
		out[i] = Node{id: np.id, reg: r}
	}
	return out
}

// pattern translates a node identifier into a doublestar pattern over the
// slash form of rooted paths. Relative identifiers match on any segment
// boundary, so they get a «**/» prefix.
func pattern(identifier string) (string, error) {
	name, err := naming.ParseName(identifier)
	if err != nil {
		return "", err
	}
	if name.IsRooted() {
		return slashed(name.String()), nil
	}
	return "**/" + slashed(name.String()), nil
}

// slashed maps the path separator to «/» so doublestar segment semantics
// line up with path segments. Rooted paths keep their leading slash.
func slashed(path string) string {
	if path == naming.WorldToken {
		return "/"
	}
	return strings.ReplaceAll(path, naming.PathSeparator, "/")
}

func rootedName(name *naming.Name) (*naming.Name, error) {
	if name.IsRooted() {
		return name, nil
	}
	return naming.JoinNames(naming.World, name)
}
