// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dpi

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestPositionRoundTrip(t *testing.T) {
	lp := LogicalPosition{X: 100, Y: 50}
	pp := lp.ToPhysical(2)
	assert.Equal(t, PhysicalPos(200, 100), pp)
	assert.Equal(t, lp, pp.ToLogical(2))
}

func TestSizeRounding(t *testing.T) {
	ls := LogicalSize{W: 100, H: 100}
	ps := ls.ToPhysical(1.5)
	assert.Equal(t, PhysicalSz(150, 150), ps)

	// fractional results round to nearest device pixel
	ps = LogicalSize{W: 33, H: 33}.ToPhysical(1.25)
	assert.Equal(t, PhysicalSz(41, 41), ps)
}

func TestValidScaleFactor(t *testing.T) {
	assert.True(t, ValidScaleFactor(1))
	assert.True(t, ValidScaleFactor(2.5))
	assert.False(t, ValidScaleFactor(0))
	assert.False(t, ValidScaleFactor(-1))
	assert.False(t, ValidScaleFactor(math32.NaN()))
	assert.False(t, ValidScaleFactor(math32.Inf(1)))
}

func TestVector(t *testing.T) {
	v := Vec(1, 2).Add(Vec(3, 4)).MulScalar(2)
	assert.Equal(t, Vec(8, 12), v)
}
