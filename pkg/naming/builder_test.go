/*
 * Copyright (c) 2026-present NameKit project
 */

package naming

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/namekit/namekit/pkg/naming/convention"
)

func TestBasicUsage_BuildName(t *testing.T) {

	require := require.New(t)

	n, err := BuildName(WithBase("body"))
	require.NoError(err)
	require.Equal("body", n.String())

	n, err = BuildName(
		WithParent(MustParseName("|group")),
		WithNamespace(MustParseNamespace("char")),
		WithBase("body"),
	)
	require.NoError(err)
	require.Equal("|group|char:body", n.String())

	t.Run("an absolute leaf namespace collapses to the canonical form", func(t *testing.T) {
		n, err := BuildName(
			WithParent(MustParseName("|grp")),
			WithNamespace(MustParseNamespace(":char")),
			WithBase("obj"),
		)
		require.NoError(err)
		require.Equal("|grp|char:obj", n.String())

		// built values survive their own text round-trip
		reparsed, err := ParseName(n.String())
		require.NoError(err)
		require.True(n.Equal(reparsed))
		require.Equal("char", reparsed.Namespace().String())
	})

	t.Run("WithShort sets namespace and base at once", func(t *testing.T) {
		n, err := BuildName(WithParent(World), WithShort("char:body"))
		require.NoError(err)
		require.Equal("|char:body", n.String())
	})

	t.Run("components compose the base under a convention", func(t *testing.T) {
		n, err := BuildName(
			WithConvention(convention.Slots),
			WithComponent("side", "R"),
			WithComponent("module", "arm"),
			WithComponent("basename", "elbow"),
			WithComponent("type", "ctrl"),
		)
		require.NoError(err)
		require.Equal("R_arm_elbow_ctrl", n.String())
	})

	t.Run("the active convention applies when none is given", func(t *testing.T) {
		scope := convention.Enter(convention.Slots)
		defer scope.Exit()

		n, err := BuildName(
			WithComponent("side", "L"),
			WithComponent("module", "leg"),
			WithComponent("basename", "knee"),
			WithComponent("type", "IK_ctrl"),
		)
		require.NoError(err)
		require.Equal("L_leg_knee_IK_ctrl", n.String())
	})
}

func TestBuildName_Errors(t *testing.T) {

	require := require.New(t)

	t.Run("a base is required", func(t *testing.T) {
		_, err := BuildName(WithParent(World))
		require.ErrorIs(err, ErrMissedError)

		_, err = BuildName(WithBase(""))
		require.ErrorIs(err, ErrMissedError)
	})

	t.Run("a short leaf excludes piecewise leaf parts", func(t *testing.T) {
		_, err := BuildName(WithShort("char:body"), WithBase("body"))
		require.ErrorIs(err, ErrExclusiveError)

		_, err = BuildName(WithShort("char:body"), WithNamespace(RootNamespace))
		require.ErrorIs(err, ErrExclusiveError)

		_, err = BuildName(WithShort("char:body"), WithComponent("side", "R"))
		require.ErrorIs(err, ErrExclusiveError)
	})

	t.Run("separators are forbidden in bases and shorts", func(t *testing.T) {
		_, err := BuildName(WithBase("a|b"))
		require.ErrorIs(err, ErrInvalidError)

		_, err = BuildName(WithBase("a:b"))
		require.ErrorIs(err, ErrInvalidError)

		_, err = BuildName(WithShort("a|b"))
		require.ErrorIs(err, ErrInvalidError)
	})

	t.Run("nil parts are rejected", func(t *testing.T) {
		_, err := BuildName(WithParent(nil))
		require.ErrorIs(err, ErrMissedError)

		_, err = BuildName(WithNamespace(nil))
		require.ErrorIs(err, ErrMissedError)

		_, err = BuildName(WithConvention(nil))
		require.ErrorIs(err, ErrMissedError)
	})

	t.Run("unknown components fail composition", func(t *testing.T) {
		_, err := BuildName(
			WithConvention(convention.Slots),
			WithComponent("flavor", "salty"),
		)
		require.ErrorIs(err, convention.ErrUnknownComponentError)
	})
}

func TestBasicUsage_Replace(t *testing.T) {

	require := require.New(t)

	n := MustParseName("|group|char:body")

	t.Run("unmentioned parts carry over", func(t *testing.T) {
		r, err := n.Replace(WithBase("head"))
		require.NoError(err)
		require.Equal("|group|char:head", r.String())
	})

	t.Run("NoNamespace strips the qualifier", func(t *testing.T) {
		r, err := n.Replace(NoNamespace())
		require.NoError(err)
		require.Equal("|group|body", r.String())
	})

	t.Run("NoParent makes the name relative", func(t *testing.T) {
		r, err := n.Replace(NoParent())
		require.NoError(err)
		require.Equal("char:body", r.String())
	})

	t.Run("WithParent reparents", func(t *testing.T) {
		r, err := n.Replace(WithParent(MustParseName("|other")))
		require.NoError(err)
		require.Equal("|other|char:body", r.String())
	})

	t.Run("WithShort replaces the whole leaf", func(t *testing.T) {
		r, err := MustParseName("|group|body").Replace(WithShort("prop:crate"))
		require.NoError(err)
		require.Equal("|group|prop:crate", r.String())
	})

	t.Run("components recompose within the current base", func(t *testing.T) {
		n := MustParseName("|rig|R_arm_elbow_ctrl")
		r, err := n.Replace(
			WithConvention(convention.Slots),
			WithComponent("side", "L"),
			WithComponent("description", "bendy"),
		)
		require.NoError(err)
		require.Equal("|rig|L_arm_elbow_bendy_ctrl", r.String())
	})
}
