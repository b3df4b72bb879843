/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

// None is the default naming convention, that is none. It defines no name
// components: a base name is one opaque value, valid when it is a legal
// node name.
var None Convention = noConvention{}

type noConvention struct{}

func (noConvention) String() string { return "<no convention>" }

func (noConvention) Decompose(name string) (Composition, error) {
	if name == "" {
		return nil, ErrInvalid("name «»: empty string forbidden")
	}
	return noComposition(name), nil
}

func (noConvention) Compose(components map[string]string) (Composition, error) {
	if len(components) == 0 {
		return nil, ErrMissed("components: the composition of zero components is undefined")
	}
	return nil, ErrUnknownComponents(None, mapKeys(components)...)
}

type noComposition string

func (c noComposition) Name() string { return string(c) }

func (c noComposition) IsValid() bool {
	ok, _ := ValidNodeName(string(c))
	return ok
}

func (c noComposition) Component(component string) (string, bool, error) {
	return "", false, ErrUnknownComponents(None, component)
}

func (c noComposition) Components() map[string]string { return nil }

func (c noComposition) Replace(components map[string]string) (Composition, error) {
	if len(components) == 0 {
		return c, nil
	}
	return nil, ErrUnknownComponents(None, mapKeys(components)...)
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
