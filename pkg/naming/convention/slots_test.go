/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Slots(t *testing.T) {

	require := require.New(t)

	require.Equal("<slot convention>", Slots.String())

	comp, err := Slots.Decompose("R_arm_elbow_ctrl")
	require.NoError(err)
	require.Equal("R_arm_elbow_ctrl", comp.Name())
	require.True(comp.IsValid())
	require.Equal(map[string]string{
		"side":     "R",
		"module":   "arm",
		"basename": "elbow",
		"type":     "ctrl",
	}, comp.Components())

	side, ok, err := comp.Component("side")
	require.NoError(err)
	require.True(ok)
	require.Equal("R", side)

	desc, ok, err := comp.Component("description")
	require.NoError(err)
	require.False(ok)
	require.Empty(desc)

	t.Run("composing from components", func(t *testing.T) {
		comp, err := Slots.Compose(map[string]string{
			"side":        "L",
			"module":      "leg",
			"basename":    "knee",
			"description": "bendy",
			"type":        "IK_ctrl",
		})
		require.NoError(err)
		require.Equal("L_leg_knee_bendy_IK_ctrl", comp.Name())
		require.True(comp.IsValid())
	})

	t.Run("unambiguous compositions round-trip through their name", func(t *testing.T) {
		for _, components := range []map[string]string{
			{"side": "R", "module": "arm", "basename": "shoulder", "type": "geo"},
			{"side": "L", "module": "leg", "basename": "knee", "description": "bendy", "type": "IK_ctrl"},
		} {
			composed, err := Slots.Compose(components)
			require.NoError(err)

			decomposed, err := Slots.Decompose(composed.Name())
			require.NoError(err)
			require.Equal(components, decomposed.Components(), composed.Name())
		}
	})

	t.Run("replacing components", func(t *testing.T) {
		replaced, err := comp.Replace(map[string]string{"side": "L", "description": "upper"})
		require.NoError(err)
		require.Equal("L_arm_elbow_upper_ctrl", replaced.Name())

		// the source composition is untouched
		require.Equal("R_arm_elbow_ctrl", comp.Name())
	})
}

func TestSlots_Decompose(t *testing.T) {

	require := require.New(t)

	// expected slot values; nil marks an absent slot
	str := func(s string) *string { return &s }
	tests := []struct {
		name                                     string
		side, module, basename, description, typ *string
	}{
		// all slots present
		{"R_leg_knee_ctrl", str("R"), str("leg"), str("knee"), nil, str("ctrl")},
		{"R_leg_knee_bendy_ctrl", str("R"), str("leg"), str("knee"), str("bendy"), str("ctrl")},
		{"R_leg_knee_very_bendy_ctrl", str("R"), str("leg"), str("knee"), str("very_bendy"), str("ctrl")},

		// a known multi-word type wins over a description split
		{"R_leg_knee_IK_ctrl", str("R"), str("leg"), str("knee"), nil, str("IK_ctrl")},
		{"R_leg_knee_b_IK_ctrl", str("R"), str("leg"), str("knee"), str("b"), str("IK_ctrl")},

		// an unknown suffix falls back to the last word as type
		{"R_leg_knee_FIK_ctrl", str("R"), str("leg"), str("knee"), str("FIK"), str("ctrl")},

		// known values match case-insensitively
		{"r_LEG_knee_CTRL", str("r"), str("LEG"), str("knee"), nil, str("CTRL")},

		// partial names are labeled on a best-effort basis
		{"R", str("R"), nil, nil, nil, nil},
		{"R_leg", str("R"), str("leg"), nil, nil, nil},
		{"R_leg_knee", str("R"), str("leg"), str("knee"), nil, nil},
		{"R_knee_ctrl", str("R"), nil, str("knee"), nil, str("ctrl")},
		{"leg_knee", nil, str("leg"), str("knee"), nil, nil},
		{"knee_ctrl", nil, nil, str("knee"), nil, str("ctrl")},
		{"IK_ctrl", nil, nil, nil, nil, str("IK_ctrl")},
		{"ctrl", nil, nil, nil, nil, str("ctrl")},
		{"knee", nil, nil, str("knee"), nil, nil},
		{"knee_thing", nil, nil, str("knee"), str("thing"), nil},

		// degenerate delimiter runs keep their empty slots
		{"____", str(""), str(""), str(""), str(""), str("")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			comp, err := Slots.Decompose(test.name)
			require.NoError(err)

			expect := map[string]*string{
				ComponentSide:        test.side,
				ComponentModule:      test.module,
				ComponentBasename:    test.basename,
				ComponentDescription: test.description,
				ComponentType:        test.typ,
			}
			got := comp.Components()
			for slot, want := range expect {
				val, ok, err := comp.Component(slot)
				require.NoError(err)
				if want == nil {
					require.False(ok, slot)
					_, present := got[slot]
					require.False(present, slot)
				} else {
					require.True(ok, slot)
					require.Equal(*want, val, slot)
					require.Equal(*want, got[slot], slot)
				}
			}
		})
	}
}

func TestSlots_DecomposeErrors(t *testing.T) {

	require := require.New(t)

	_, err := Slots.Decompose("")
	require.ErrorIs(err, ErrInvalidError)
}

func TestSlots_ComposeErrors(t *testing.T) {

	require := require.New(t)

	t.Run("side, module, basename and type are required", func(t *testing.T) {
		_, err := Slots.Compose(map[string]string{
			"side": "R", "module": "arm", "basename": "elbow",
		})
		require.ErrorIs(err, ErrMissedError)
	})

	t.Run("unknown components are rejected", func(t *testing.T) {
		_, err := Slots.Compose(map[string]string{
			"side": "R", "module": "arm", "basename": "elbow", "type": "ctrl",
			"flavor": "salty",
		})
		require.ErrorIs(err, ErrUnknownComponentError)

		comp, err := Slots.Decompose("R_arm_elbow_ctrl")
		require.NoError(err)
		_, err = comp.Replace(map[string]string{"flavor": "salty"})
		require.ErrorIs(err, ErrUnknownComponentError)

		_, _, err = comp.Component("flavor")
		require.ErrorIs(err, ErrUnknownComponentError)
	})
}

func TestSlots_IsValid(t *testing.T) {

	require := require.New(t)

	valid := func(name string) bool {
		comp, err := Slots.Decompose(name)
		require.NoError(err)
		return comp.IsValid()
	}

	require.True(valid("R_arm_elbow_ctrl"))
	require.True(valid("L_leg_knee_IK_ctrl"))
	require.True(valid("C_spine_chest_very_round_geo"))

	// missing slots
	require.False(valid("R_arm_elbow"))
	require.False(valid("arm_elbow_ctrl"))
	require.False(valid("R"))

	// validity needs exact value-set membership, unlike decomposition
	require.False(valid("r_arm_elbow_ctrl"))
	require.False(valid("R_ARM_elbow_ctrl"))
	require.False(valid("R_arm_elbow_CTRL"))

	// unknown side, module or type
	require.False(valid("X_arm_elbow_ctrl"))
	require.False(valid("R_tail_elbow_ctrl"))

	// the name itself must be a legal node name
	require.False(valid("R_arm_el bow_ctrl"))

	t.Run("composed values are checked the same way", func(t *testing.T) {
		comp, err := Slots.Compose(map[string]string{
			"side": "R", "module": "arm", "basename": "el_bow", "type": "ctrl",
		})
		require.NoError(err)
		require.False(comp.IsValid()) // basename holds a delimiter

		comp, err = Slots.Compose(map[string]string{
			"side": "R", "module": "arm", "basename": "elbow", "type": "ctrl",
			"description": "_pad",
		})
		require.NoError(err)
		require.False(comp.IsValid()) // description bracketed by delimiters
	})
}

func TestNewSlotConvention(t *testing.T) {

	require := require.New(t)

	conv := NewSlotConvention(
		[]string{"up", "dn"},
		[]string{"wing"},
		[]string{"bone", "bind_bone"},
	)

	comp, err := conv.Decompose("up_wing_tip_bind_bone")
	require.NoError(err)
	require.True(comp.IsValid())

	typ, ok, err := comp.Component("type")
	require.NoError(err)
	require.True(ok)
	require.Equal("bind_bone", typ)

	// the built-in sets do not apply here
	comp, err = conv.Decompose("R_arm_elbow_ctrl")
	require.NoError(err)
	require.False(comp.IsValid())
}

func TestValidNodeName(t *testing.T) {

	require := require.New(t)

	ok, err := ValidNodeName("_node_01")
	require.True(ok)
	require.NoError(err)

	ok, err = ValidNodeName("")
	require.False(ok)
	require.ErrorIs(err, ErrMissedError)

	for _, name := range []string{"1node", "no de", "no:de", "no|de"} {
		ok, err := ValidNodeName(name)
		require.False(ok, name)
		require.ErrorIs(err, ErrInvalidError, name)
	}
}
