/*
 * Copyright (c) 2026-present NameKit project
 */

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/namekit/namekit/pkg/naming"
	"github.com/namekit/namekit/pkg/naming/convention"
)

// effectiveConvention resolves the convention the command runs under:
// a YAML config takes precedence over the built-in choices.
func effectiveConvention() (convention.Convention, error) {
	if slotsFile != "" {
		f, err := os.Open(slotsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		logger.Verbose("loading slot convention from", slotsFile)
		return convention.LoadSlots(f)
	}
	switch conventionName {
	case "none":
		return convention.None, nil
	case "slots":
		return convention.Slots, nil
	default:
		return nil, naming.ErrInvalid("unknown convention «%s»", conventionName)
	}
}

func newDecomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <name>...",
		Short: "Splits node names into their convention components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := effectiveConvention()
			if err != nil {
				return err
			}
			for _, arg := range args {
				name, err := naming.ParseName(arg)
				if err != nil {
					return err
				}
				comp, err := name.Decompose(conv)
				if err != nil {
					return err
				}
				fmt.Println(name.Base())
				components := comp.Components()
				keys := make([]string, 0, len(components))
				for k := range components {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Printf("  %s: %s\n", k, components[k])
				}
			}
			return nil
		},
	}
}

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <component>=<value>...",
		Short: "Builds a node name from convention components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := effectiveConvention()
			if err != nil {
				return err
			}
			components := make(map[string]string, len(args))
			for _, arg := range args {
				k, v, found := strings.Cut(arg, "=")
				if !found {
					return naming.ErrSyntax("invalid component «%s»: <component>=<value> expected", arg)
				}
				components[k] = v
			}
			comp, err := conv.Compose(components)
			if err != nil {
				return err
			}
			fmt.Println(comp.Name())
			return nil
		},
	}
}

func newValidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid <name>...",
		Short: "Checks node names against the convention",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := effectiveConvention()
			if err != nil {
				return err
			}
			invalid := 0
			for _, arg := range args {
				name, err := naming.ParseName(arg)
				if err != nil {
					fmt.Println(red(arg), err)
					invalid++
					continue
				}
				if name.IsValid(conv) {
					fmt.Println(green(arg))
				} else {
					fmt.Println(red(arg))
					invalid++
				}
			}
			if invalid > 0 {
				return naming.ErrInvalid("%d of %d names", invalid, len(args))
			}
			return nil
		},
	}
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <part>...",
		Short: "Joins path parts into one node name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := make([]*naming.Name, len(args))
			for i, arg := range args {
				name, err := naming.ParseName(arg)
				if err != nil {
					return err
				}
				parts[i] = name
			}
			joined, err := naming.JoinNames(parts...)
			if err != nil {
				return err
			}
			fmt.Println(joined)
			return nil
		},
	}
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <name>...",
		Short: "Prints node names in hierarchical order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]*naming.Name, len(args))
			for i, arg := range args {
				name, err := naming.ParseName(arg)
				if err != nil {
					return err
				}
				names[i] = name
			}
			sort.Slice(names, func(i, j int) bool {
				return naming.CompareName(names[i], names[j]) < 0
			})
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newParentCmd() *cobra.Command {
	all := false
	cmd := &cobra.Command{
		Use:   "parent <name>",
		Short: "Prints the parent of a node name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := naming.ParseName(args[0])
			if err != nil {
				return err
			}
			if all {
				for _, n := range name.Hierarchy() {
					fmt.Println(n)
				}
				return nil
			}
			parent := name.Parent()
			if parent == nil {
				return naming.ErrMissed("parent of «%s»", args[0])
			}
			fmt.Println(parent)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Print the whole hierarchy, root first")
	return cmd
}
