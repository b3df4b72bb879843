/*
 * Copyright (c) 2026-present NameKit project
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

var testVersion string = "0.0.1-dummy"

func execute(t *testing.T, args ...string) error {
	t.Helper()
	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	slotsFile = ""
	conventionName = "slots"
	return execRootCmd(append([]string{"nameq"}, args...), testVersion)
}

func TestBasicUsage_CLI(t *testing.T) {

	require := require.New(t)

	require.NoError(execute(t, "version"))
	require.NoError(execute(t, "decompose", "rig|R_arm_elbow_ctrl"))
	require.NoError(execute(t, "compose", "side=R", "module=arm", "basename=elbow", "type=ctrl"))
	require.NoError(execute(t, "valid", "|rig|R_arm_elbow_ctrl"))
	require.NoError(execute(t, "join", "<world>", "group", "char:body"))
	require.NoError(execute(t, "sort", "b", "|a", "a"))
	require.NoError(execute(t, "parent", "|group|char:body"))
	require.NoError(execute(t, "parent", "--all", "|group|char:body"))
}

func TestCLI_Errors(t *testing.T) {

	require := require.New(t)

	require.Error(execute(t, "decompose", "a||b"))
	require.Error(execute(t, "compose", "side=R"))
	require.Error(execute(t, "compose", "side"))
	require.Error(execute(t, "valid", "|rig|R_arm_elbow"))
	require.Error(execute(t, "parent", "body"))
}

func TestCLI_SlotsConfig(t *testing.T) {

	require := require.New(t)

	doc := "sides: [up, dn]\nmodules: [wing]\ntypes: [bone, bind_bone]\n"
	path := filepath.Join(t.TempDir(), "slots.yaml")
	require.NoError(os.WriteFile(path, []byte(doc), 0o644))

	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	conventionName = "slots"
	slotsFile = path
	require.NoError(execRootCmd([]string{"nameq", "valid", "up_wing_tip_bind_bone"}, testVersion))

	slotsFile = filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(execRootCmd([]string{"nameq", "valid", "up_wing_tip_bind_bone"}, testVersion))

	slotsFile = ""
	conventionName = "nosuch"
	require.Error(execRootCmd([]string{"nameq", "valid", "name"}, testVersion))
	conventionName = "slots"
}
