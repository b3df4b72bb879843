/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import "strings"

// Returns is string a valid namespace name and error if not.
//
// A valid namespace name is a letter a-z or A-Z followed by any number of
// letters a-z, A-Z, digits 0-9, and/or underscores.
func ValidNamespaceName(name string) (bool, error) {
	if len(name) < 1 {
		return false, ErrMissed("namespace name")
	}

	letter := func(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
	digit := func(r rune) bool { return '0' <= r && r <= '9' }

	for p, c := range name {
		if letter(c) {
			continue
		}
		if p > 0 && (digit(c) || c == '_') {
			continue
		}
		return false, ErrInvalid("namespace name «%s» has invalid char «%c» at pos %d", name, c, p)
	}

	return true, nil
}

// checkNamespacePath validates separator rules of a namespace path: no path
// separator and no empty names. Character classes are not checked here;
// they are the concern of Namespace.IsValid.
func checkNamespacePath(path string) error {
	if strings.Contains(path, PathSeparator) {
		return ErrSyntax("invalid namespace path «%s»: path separator «%s» found", path, PathSeparator)
	}
	if len(path) > 1 {
		if strings.HasSuffix(path, NamespaceSeparator) ||
			strings.Contains(path, NamespaceSeparator+NamespaceSeparator) {
			return ErrSyntax("invalid namespace path «%s»: empty names forbidden", path)
		}
	}
	return nil
}

// checkSegment validates one path segment of a name and returns its
// canonical form: a superfluous root-namespace marker is collapsed, so
// «:ns:obj» canonicalizes to «ns:obj».
func checkSegment(seg string) (string, error) {
	if seg == "" {
		return "", ErrSyntax("empty path segment forbidden")
	}
	s := strings.TrimPrefix(seg, NamespaceSeparator)
	if s == "" {
		return "", ErrSyntax("invalid path segment «%s»: empty name forbidden", seg)
	}
	if strings.HasSuffix(s, NamespaceSeparator) ||
		strings.Contains(s, NamespaceSeparator+NamespaceSeparator) {
		return "", ErrSyntax("invalid path segment «%s»: empty names forbidden", seg)
	}
	return s, nil
}
