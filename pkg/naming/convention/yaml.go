/*
 * Copyright (c) 2026-present NameKit project
 */

package convention

import (
	"io"

	"gopkg.in/yaml.v3"
)

// SlotConfig is the YAML shape of a slot convention's value sets:
//
//	sides:   [L, R, C]
//	modules: [arm, leg]
//	types:   [ctrl, geo, Grp, IK_ctrl]
type SlotConfig struct {
	Sides   []string `yaml:"sides"`
	Modules []string `yaml:"modules"`
	Types   []string `yaml:"types"`
}

// LoadSlots reads a SlotConfig document and returns the slot convention it
// describes. All three value sets must be non-empty.
func LoadSlots(r io.Reader) (*SlotConvention, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := SlotConfig{}
	if err := dec.Decode(&cfg); err != nil {
		return nil, ErrInvalid("slot convention config: %v", err)
	}

	if len(cfg.Sides) == 0 {
		return nil, ErrMissed("sides value set")
	}
	if len(cfg.Modules) == 0 {
		return nil, ErrMissed("modules value set")
	}
	if len(cfg.Types) == 0 {
		return nil, ErrMissed("types value set")
	}

	return NewSlotConvention(cfg.Sides, cfg.Modules, cfg.Types), nil
}
