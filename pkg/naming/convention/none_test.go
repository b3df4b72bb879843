/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_None(t *testing.T) {

	require := require.New(t)

	require.Equal("<no convention>", None.String())

	comp, err := None.Decompose("body")
	require.NoError(err)
	require.Equal("body", comp.Name())
	require.True(comp.IsValid())
	require.Nil(comp.Components())

	t.Run("names are opaque: no components exist", func(t *testing.T) {
		_, ok, err := comp.Component("side")
		require.False(ok)
		require.ErrorIs(err, ErrUnknownComponentError)

		_, err = comp.Replace(map[string]string{"side": "R"})
		require.ErrorIs(err, ErrUnknownComponentError)

		same, err := comp.Replace(nil)
		require.NoError(err)
		require.Equal(comp, same)
	})

	t.Run("validity is the node name rule", func(t *testing.T) {
		for _, name := range []string{"body", "_body", "body_01"} {
			comp, err := None.Decompose(name)
			require.NoError(err)
			require.True(comp.IsValid(), name)
		}
		for _, name := range []string{"1body", "bo dy", "bo|dy"} {
			comp, err := None.Decompose(name)
			require.NoError(err)
			require.False(comp.IsValid(), name)
		}
	})
}

func TestNone_Errors(t *testing.T) {

	require := require.New(t)

	_, err := None.Decompose("")
	require.ErrorIs(err, ErrInvalidError)

	_, err = None.Compose(nil)
	require.ErrorIs(err, ErrMissedError)

	_, err = None.Compose(map[string]string{"side": "R", "type": "ctrl"})
	require.ErrorIs(err, ErrUnknownComponentError)

	t.Run("unknown component errors carry details", func(t *testing.T) {
		err := ErrUnknownComponents(None, "type", "side")
		var unknown *UnknownComponentError
		require.ErrorAs(err, &unknown)
		require.Equal("<no convention>", unknown.Convention)
		require.Equal([]string{"side", "type"}, unknown.Components)
		require.Equal("unknown components 'side', 'type': not defined by convention <no convention>", err.Error())
	})
}
