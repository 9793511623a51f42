// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the tunable input-handling knobs shared by all drivers.
// Apps normally run on [DefaultSettings]; deployments that need to
// match platform conventions can load overrides from a TOML or YAML
// file via [OpenSettings].
type Settings struct {

	// DoubleClickMSec is the maximum interval between two presses of
	// the same button to count as a double click, in milliseconds.
	DoubleClickMSec int `toml:"double-click-msec" yaml:"double-click-msec"`

	// ScrollWheelSpeed scales scroll deltas, in pixels per wheel step.
	ScrollWheelSpeed float32 `toml:"scroll-wheel-speed" yaml:"scroll-wheel-speed"`

	// CompressEvents enables in-queue compression of non-unique events
	// (mouse moves, scrolls, interactive resizes): a new event replaces
	// a queued undelivered event of the same type for the same window.
	// Off by default, preserving strict 1:1 delivery.
	CompressEvents bool `toml:"compress-events" yaml:"compress-events"`

	// IME holds the input-method policy knobs.
	IME IMESettings `toml:"ime" yaml:"ime"`
}

// IMESettings are the input-method policy knobs.
type IMESettings struct {

	// PreferRawOnEqualCommit selects which of a raw character and an
	// IME commit with identical text is delivered for one key cycle.
	// The default (false) suppresses the raw character and delivers
	// the commit, which matches observed input-method behavior across
	// backends; either way exactly one of the two is delivered.
	PreferRawOnEqualCommit bool `toml:"prefer-raw-on-equal-commit" yaml:"prefer-raw-on-equal-commit"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		DoubleClickMSec:  500,
		ScrollWheelSpeed: 1,
	}
}

// DoubleClickInterval returns DoubleClickMSec as a [time.Duration].
func (s *Settings) DoubleClickInterval() time.Duration {
	return time.Duration(s.DoubleClickMSec) * time.Millisecond
}

// OpenSettings loads settings from the given TOML or YAML file,
// selected by extension, on top of [DefaultSettings]. Unset fields keep
// their defaults.
func OpenSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(filename)
	if err != nil {
		return s, err
	}
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(b, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &s)
	default:
		err = fmt.Errorf("settings: unsupported file extension %q", ext)
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("settings: loading %s: %w", filename, err)
	}
	return s, nil
}
