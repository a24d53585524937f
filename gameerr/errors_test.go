// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package gameerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironmoor/tactics/gameerr"
	"github.com/ironmoor/tactics/id"
)

func TestDomainConstructorsCarryCode(t *testing.T) {
	cid := id.NewCreatureID()
	err := gameerr.CreatureNotFound(cid)

	assert.Equal(t, gameerr.CodeCreatureNotFound, err.Code)
	assert.Contains(t, err.Error(), cid.String())
	assert.True(t, gameerr.Is(err, gameerr.CodeCreatureNotFound))
}

func TestGetCodeOnNonGameError(t *testing.T) {
	assert.Equal(t, gameerr.Code("unknown"), gameerr.GetCode(errors.New("boom")))
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("underlying")
	err := gameerr.New(gameerr.CodeBuggyProgram, "invariant violated", gameerr.WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, fmt.Sprintf("invariant violated: %v", cause), err.Error())
}

func TestHistoryNotFoundMeta(t *testing.T) {
	err := gameerr.HistoryNotFound(2, 5)
	assert.Equal(t, 2, err.Meta["snapshot_idx"])
	assert.Equal(t, 5, err.Meta["log_idx"])
}
