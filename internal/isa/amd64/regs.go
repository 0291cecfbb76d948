// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || gcamd64) && !gcarm64
// +build amd64 gcamd64
// +build !gcarm64

package amd64

import (
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

const (
	RAX = reg.R(0)
	RCX = reg.R(1)
	RDX = reg.R(2)
	RBX = reg.R(3)
	RSP = reg.R(4)
	RBP = reg.R(5)
	RSI = reg.R(6)
	RDI = reg.R(7)
	R8  = reg.R(8)
	R9  = reg.R(9)
	R10 = reg.R(10)
	R11 = reg.R(11)
	R12 = reg.R(12)
	R13 = reg.R(13)
	R14 = reg.R(14)
	R15 = reg.R(15)
)

const (
	RegScratch = RAX // holds the scanner entry address at the call
	RegCtxArg  = RDI // scanner argument 1: pass-through context
	RegSPArg   = RSI // scanner argument 2: handoff pointer
)

// SpillRegs is the System V AMD64 callee-saved set in push order.  The
// last register pushed ends up at the handoff pointer; see
// abi.FrameSlots for the resulting layout.
var SpillRegs = [...]reg.R{RBP, RBX, R12, R13, R14, R15}
