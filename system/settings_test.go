// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestOpenSettingsTOML(t *testing.T) {
	path := writeFile(t, "settings.toml", `
double-click-msec = 250
compress-events = true

[ime]
prefer-raw-on-equal-commit = true
`)
	s, err := OpenSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 250, s.DoubleClickMSec)
	assert.Equal(t, 250*time.Millisecond, s.DoubleClickInterval())
	assert.True(t, s.CompressEvents)
	assert.True(t, s.IME.PreferRawOnEqualCommit)
	// unset fields keep defaults
	assert.Equal(t, float32(1), s.ScrollWheelSpeed)
}

func TestOpenSettingsYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
double-click-msec: 300
scroll-wheel-speed: 2.5
`)
	s, err := OpenSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 300, s.DoubleClickMSec)
	assert.Equal(t, float32(2.5), s.ScrollWheelSpeed)
	assert.False(t, s.CompressEvents)
}

func TestOpenSettingsBad(t *testing.T) {
	_, err := OpenSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeFile(t, "settings.json", `{}`)
	_, err = OpenSettings(path)
	assert.Error(t, err)

	path = writeFile(t, "settings.toml", `double-click-msec = "nope"`)
	s, err := OpenSettings(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestControlFlowDefaults(t *testing.T) {
	var cf ControlFlow
	assert.Equal(t, FlowWait, cf.Mode)
	assert.Equal(t, "Wait", cf.String())
	assert.Equal(t, FlowExit, Exit(3).Mode)
	assert.Equal(t, 3, Exit(3).Code)

	wu := WaitDuration(time.Minute)
	assert.Equal(t, FlowWaitUntil, wu.Mode)
	assert.WithinDuration(t, time.Now().Add(time.Minute), wu.Deadline, time.Second)
}
