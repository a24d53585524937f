// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package id_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironmoor/tactics/id"
)

func TestIDsAreFreshAndDistinctlyTyped(t *testing.T) {
	a := id.NewCreatureID()
	b := id.NewCreatureID()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a.String())

	scene := id.NewSceneID()
	assert.NotEqual(t, string(a), string(scene))
}
