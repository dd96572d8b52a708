// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package noopcommand

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/conductor/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommander_Create(t *testing.T) {
	cmd, err := (&Commander{}).Create(context.Background(), nil, nil, []byte("type: noop\n"))
	require.NoError(t, err)
	assert.True(t, command.IsNoCommand(cmd))
	assert.Equal(t, "NoCommand", command.Label(cmd))
}
