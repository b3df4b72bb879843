/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Used as delimiter between slots of a slot-based name
const SlotDelimiter = "_"

// Component names defined by SlotConvention, in slot order.
const (
	ComponentSide        = "side"
	ComponentModule      = "module"
	ComponentBasename    = "basename"
	ComponentDescription = "description"
	ComponentType        = "type"
)

var slotOrder = []string{
	ComponentSide, ComponentModule, ComponentBasename, ComponentDescription, ComponentType,
}

// # SlotConvention
//
// SlotConvention denotes the naming scheme
//
//	<side>_<module>_<basename>[_<description>]_<type>
//
// The side, module, basename, and type slots are required for a name to be
// valid. side, module, and type each draw from a known value set; basename
// is one free word and description is optional free text that may itself
// contain the delimiter.
//
// When a name holds fewer slots than the scheme expects, decomposition
// labels what it can: known values are matched case-insensitively against
// the value sets (side and module from the front, type greedily from the
// back, longest value first, so that type values containing the delimiter
// win over a description split), and leftover words become basename and
// description as a best-effort guess. Decomposition never fails; validity
// is reported by the composition instead.
type SlotConvention struct {
	name    string
	sides   valueSet
	modules valueSet
	types   valueSet
	// known type values ordered longest first, for greedy suffix matching
	typesByLen []string
}

// Slots is the built-in slot convention instance.
var Slots = NewSlotConvention(
	[]string{"L", "R", "C"},
	[]string{"arm", "leg", "spine"},
	[]string{"ctrl", "geo", "Grp", "JNT", "FK", "IK", "IK_ctrl", "FK_ctrl"},
)

// Returns a slot convention with the given value sets for the side,
// module, and type slots. Validity requires exact membership; heuristic
// decomposition matches the sets case-insensitively.
func NewSlotConvention(sides, modules, types []string) *SlotConvention {
	sc := &SlotConvention{
		name:    "<slot convention>",
		sides:   newValueSet(sides),
		modules: newValueSet(modules),
		types:   newValueSet(types),
	}
	sc.typesByLen = append(sc.typesByLen, types...)
	sort.Slice(sc.typesByLen, func(i, j int) bool {
		a, b := sc.typesByLen[i], sc.typesByLen[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return sc
}

func (sc *SlotConvention) String() string { return sc.name }

func (sc *SlotConvention) Decompose(name string) (Composition, error) {
	if name == "" {
		return nil, ErrInvalid("name «»: empty string forbidden")
	}
	c := &SlotComposition{conv: sc}
	c.name.Store(&name)
	return c, nil
}

func (sc *SlotConvention) Compose(components map[string]string) (Composition, error) {
	if unknown := sc.unknownComponents(components); len(unknown) > 0 {
		return nil, ErrUnknownComponents(sc, unknown...)
	}
	for _, required := range []string{ComponentSide, ComponentModule, ComponentBasename, ComponentType} {
		if _, ok := components[required]; !ok {
			return nil, ErrMissedComponent(required)
		}
	}
	c := &SlotComposition{conv: sc}
	c.vals.Store(slotValuesFrom(components))
	return c, nil
}

func (sc *SlotConvention) unknownComponents(components map[string]string) []string {
	var unknown []string
	for k := range components {
		known := false
		for _, s := range slotOrder {
			if k == s {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// # SlotComposition
//
// The slot-based decomposition of a base name. Built either from a name
// (slots derived on first access) or from slot values (name derived on
// first access); both derivations are cached with compute-once-publish
// semantics.
type SlotComposition struct {
	conv *SlotConvention
	name atomic.Pointer[string]
	vals atomic.Pointer[slotValues]
}

// Slot values; nil pointers mark absent slots.
type slotValues struct {
	side, module, basename, description, typ *string
}

func slotValuesFrom(components map[string]string) *slotValues {
	v := &slotValues{}
	for k, val := range components {
		v.set(k, val)
	}
	return v
}

func (v *slotValues) set(component, value string) {
	s := value
	switch component {
	case ComponentSide:
		v.side = &s
	case ComponentModule:
		v.module = &s
	case ComponentBasename:
		v.basename = &s
	case ComponentDescription:
		v.description = &s
	case ComponentType:
		v.typ = &s
	}
}

func (v *slotValues) get(component string) *string {
	switch component {
	case ComponentSide:
		return v.side
	case ComponentModule:
		return v.module
	case ComponentBasename:
		return v.basename
	case ComponentDescription:
		return v.description
	case ComponentType:
		return v.typ
	}
	return nil
}

func (c *SlotComposition) Name() string {
	if p := c.name.Load(); p != nil {
		return *p
	}
	v := c.vals.Load() // set whenever name is not
	parts := make([]string, 0, len(slotOrder))
	for _, slot := range slotOrder {
		if val := v.get(slot); val != nil {
			parts = append(parts, *val)
		}
	}
	name := strings.Join(parts, SlotDelimiter)
	if c.name.CompareAndSwap(nil, &name) {
		return name
	}
	return *c.name.Load()
}

func (c *SlotComposition) IsValid() bool {
	if ok, _ := ValidNodeName(c.Name()); !ok {
		return false
	}
	v := c.values()
	if v.side == nil || !c.conv.sides.contains(*v.side) {
		return false
	}
	if v.module == nil || !c.conv.modules.contains(*v.module) {
		return false
	}
	if v.typ == nil || !c.conv.types.contains(*v.typ) {
		return false
	}
	if v.basename == nil || *v.basename == "" || strings.Contains(*v.basename, SlotDelimiter) {
		return false
	}
	if d := v.description; d != nil {
		if *d == "" {
			return false // should be absent instead
		}
		if strings.HasPrefix(*d, SlotDelimiter) || strings.HasSuffix(*d, SlotDelimiter) {
			return false
		}
	}
	return true
}

func (c *SlotComposition) Component(component string) (string, bool, error) {
	if c.conv.unknownComponents(map[string]string{component: ""}) != nil {
		return "", false, ErrUnknownComponents(c.conv, component)
	}
	if val := c.values().get(component); val != nil {
		return *val, true, nil
	}
	return "", false, nil
}

func (c *SlotComposition) Components() map[string]string {
	v := c.values()
	m := map[string]string{}
	for _, slot := range slotOrder {
		if val := v.get(slot); val != nil {
			m[slot] = *val
		}
	}
	return m
}

func (c *SlotComposition) Replace(components map[string]string) (Composition, error) {
	if unknown := c.conv.unknownComponents(components); len(unknown) > 0 {
		return nil, ErrUnknownComponents(c.conv, unknown...)
	}
	v := c.values()
	replaced := &slotValues{
		side:        v.side,
		module:      v.module,
		basename:    v.basename,
		description: v.description,
		typ:         v.typ,
	}
	for k, val := range components {
		replaced.set(k, val)
	}
	r := &SlotComposition{conv: c.conv}
	r.vals.Store(replaced)
	return r, nil
}

func (c *SlotComposition) values() *slotValues {
	if v := c.vals.Load(); v != nil {
		return v
	}
	v := c.conv.decompose(c.Name())
	if c.vals.CompareAndSwap(nil, v) {
		return v
	}
	return c.vals.Load()
}

// decompose parses a base name into slot values. It never fails; missing
// or unrecognizable slots are left absent.
func (sc *SlotConvention) decompose(name string) *slotValues {
	v := &slotValues{}

	parts := strings.SplitN(name, SlotDelimiter, 4)
	if len(parts) == 4 {
		// Fast path: assign positionally, then split the tail into
		// description and type.
		v.side, v.module, v.basename = &parts[0], &parts[1], &parts[2]
		v.description, v.typ = sc.splitTail(parts[3])
		return v
	}

	// Slots are missing; label on a best-effort basis from the known
	// value sets.

	segs := parts
	if sc.sides.matches(segs[0]) {
		v.side = &segs[0]
		if segs = segs[1:]; len(segs) == 0 {
			return v
		}
	}

	if sc.modules.matches(segs[0]) {
		v.module = &segs[0]
		if segs = segs[1:]; len(segs) == 0 {
			return v
		}
	}

	if typ, remainder, ok := sc.matchTerminal(strings.Join(segs, SlotDelimiter)); ok {
		v.typ = &typ
		if remainder == "" {
			return v
		}
		segs = strings.Split(remainder, SlotDelimiter)
	}

	// basename and description are pure guesses
	v.basename = &segs[0]
	if rest := segs[1:]; len(rest) > 0 {
		d := strings.Join(rest, SlotDelimiter)
		v.description = &d
	}
	return v
}

// splitTail splits the fast-path tail (everything past the basename slot)
// into description and type. A known type value matching the tail's suffix
// wins; otherwise the last delimited word is the type.
func (sc *SlotConvention) splitTail(tail string) (description, typ *string) {
	if t, remainder, ok := sc.matchTerminal(tail); ok {
		if remainder == "" {
			return nil, &t
		}
		return &remainder, &t
	}
	if i := strings.LastIndex(tail, SlotDelimiter); i >= 0 {
		d, t := tail[:i], tail[i+1:]
		return &d, &t
	}
	t := tail
	return nil, &t
}

// matchTerminal greedily matches the longest known type value against the
// suffix of s, case-insensitively and only at a delimiter boundary. It
// returns the matched text as written in s and the remainder before the
// boundary.
func (sc *SlotConvention) matchTerminal(s string) (typ, remainder string, ok bool) {
	for _, val := range sc.typesByLen {
		if len(s) == len(val) && strings.EqualFold(s, val) {
			return s, "", true
		}
		if cut := len(s) - len(val); cut > 0 &&
			s[cut-1] == SlotDelimiter[0] && strings.EqualFold(s[cut:], val) {
			return s[cut:], s[:cut-1], true
		}
	}
	return "", "", false
}

// valueSet holds the known values of one slot: exact membership decides
// validity, folded membership drives the decomposition heuristics.
type valueSet struct {
	exact  map[string]bool
	folded map[string]bool
}

func newValueSet(values []string) valueSet {
	s := valueSet{
		exact:  make(map[string]bool, len(values)),
		folded: make(map[string]bool, len(values)),
	}
	for _, v := range values {
		s.exact[v] = true
		s.folded[strings.ToUpper(v)] = true
	}
	return s
}

func (s valueSet) contains(v string) bool { return s.exact[v] }

func (s valueSet) matches(v string) bool { return s.folded[strings.ToUpper(v)] }
