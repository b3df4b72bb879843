/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

const (
	// Used as delimiter between namespace names and between a namespace
	// qualifier and the base name it qualifies
	NamespaceSeparator = ":"

	// Used as delimiter between path segments
	PathSeparator = "|"

	// Reserved token for the implicit graph root node.
	//
	// The host environment identifies that node by the empty string; the
	// algebra accepts and emits this token in its place.
	WorldToken = "<world>"
)
