// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironmoor/tactics/condition"
	"github.com/ironmoor/tactics/creature"
	"github.com/ironmoor/tactics/id"
)

// ClassSpec is the YAML shape of one creature.Class: the abilities it
// grants (by name, resolved against an already-loaded AbilityTable)
// and the conditions every instance inherits permanently.
type ClassSpec struct {
	Name                string          `yaml:"name"`
	Abilities           []string        `yaml:"abilities"`
	InheritedConditions []ConditionSpec `yaml:"inherited_conditions"`
}

type classListFile struct {
	Classes []ClassSpec `yaml:"classes"`
}

// ClassTable holds every class loaded from one YAML file, indexed by
// name (Class.Key() is its Name, so this mirrors game.Game.Classes).
type ClassTable struct {
	byName *id.Indexed[string, creature.Class]
}

// ByName returns the compiled class registered under name.
func (t *ClassTable) ByName(name string) (creature.Class, bool) {
	return t.byName.Get(name)
}

// All returns every compiled class.
func (t *ClassTable) All() []creature.Class {
	return t.byName.Values()
}

// LoadClassTable reads path, resolving each class's ability list and
// inherited conditions against abilities (itself loaded separately,
// since classes and abilities are authored in distinct files).
func LoadClassTable(path string, abilities *AbilityTable) (*ClassTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read classes %s: %w", path, err)
	}
	var f classListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("content: parse classes %s: %w", path, err)
	}

	t := &ClassTable{byName: id.NewIndexed[string, creature.Class]()}
	for _, spec := range f.Classes {
		abIDs := make([]id.AbilityID, 0, len(spec.Abilities))
		for _, name := range spec.Abilities {
			ab, ok := abilities.ByName(name)
			if !ok {
				return nil, fmt.Errorf("content: class %q references unknown ability %q", spec.Name, name)
			}
			abIDs = append(abIDs, ab.ID)
		}

		conditions := make([]condition.Condition, 0, len(spec.InheritedConditions))
		for _, cs := range spec.InheritedConditions {
			c, err := cs.compile(abilities)
			if err != nil {
				return nil, fmt.Errorf("content: class %q: %w", spec.Name, err)
			}
			conditions = append(conditions, c)
		}

		t.byName.Insert(creature.Class{
			Name:                spec.Name,
			Abilities:           abIDs,
			InheritedConditions: conditions,
		})
	}
	return t, nil
}
