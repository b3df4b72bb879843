/*
 * Copyright (c) 2026-present NameKit project
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

// path to a slot convention YAML config (flag --slots)
var slotsFile string

// built-in convention to apply when no config is given (flag --convention)
var conventionName = "slots"

var verbose bool

var red func(a ...interface{}) string
var green func(a ...interface{}) string

func main() {
	red = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	err := execRootCmd(os.Args, version)
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func execRootCmd(args []string, ver string) error {
	version = ver
	rootCmd = cobrau.PrepareRootCmd(
		"nameq",
		"Scene node name utility",
		args,
		version,
		newVersionCmd(),
		newDecomposeCmd(),
		newComposeCmd(),
		newValidCmd(),
		newJoinCmd(),
		newSortCmd(),
		newParentCmd(),
	)

	// Current variable values act as the flag defaults so that values set
	// before execRootCmd survive registration (StringVar resets *p to the
	// default it is given).
	rootCmd.PersistentFlags().StringVar(&slotsFile, "slots", slotsFile, "Path to a slot convention YAML config")
	rootCmd.PersistentFlags().StringVar(&conventionName, "convention", conventionName, "Naming convention to apply: none | slots")
	// --verbose/-v is already registered by cobrau.PrepareRootCmd;
	// re-registering it makes pflag panic with "flag redefined".
	logger.SetLogLevel(getLoggerLevel())

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

func getLoggerLevel() logger.TLogLevel {
	if verbose {
		return logger.LogLevelVerbose
	}
	return logger.LogLevelInfo
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the nameq utility",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("nameq version ", version)
		},
	}
	return cmd
}
