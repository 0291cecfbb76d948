// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (arm64 || gcarm64) && !gcamd64
// +build arm64 gcarm64
// +build !gcamd64

package arm64

import (
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

const (
	X0  = reg.R(0)
	X1  = reg.R(1)
	X9  = reg.R(9)
	X19 = reg.R(19)
	X21 = reg.R(21)
	X23 = reg.R(23)
	X25 = reg.R(25)
	X27 = reg.R(27)
	FP  = reg.R(29) // x29
	LR  = reg.R(30) // x30
	SP  = reg.R(31) // in register-number position 31 for loads, stores and ADD
)

const (
	RegScratch = X9 // holds the argument block address, then the scanner entry
	RegCtxArg  = X0 // scanner argument 1: pass-through context
	RegSPArg   = X1 // scanner argument 2: handoff pointer
)

// SpillPairs lists the callee-saved register pairs in frame order.  The
// frame record (x29, x30) is stored lowest; x30 must be saved because
// BLR clobbers it.
var SpillPairs = [...][2]reg.R{
	{FP, LR},
	{X19, X19 + 1},
	{X21, X21 + 1},
	{X23, X23 + 1},
	{X25, X25 + 1},
	{X27, X27 + 1},
}
