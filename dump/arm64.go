// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && ((arm64 && !gcamd64) || gcarm64)
// +build cgo
// +build arm64,!gcamd64 gcarm64

package dump

import (
	"strings"

	"github.com/bnagy/gapstone"
)

const (
	csArch   = gapstone.CS_ARCH_ARM64
	csMode   = gapstone.CS_MODE_ARM
	csSyntax = 0
)

func rewriteOperands(s string) string {
	// "x1" alone would also hit x19 etc.
	s = strings.Replace(s, "x0", "ctx", -1)
	s = strings.Replace(s, "x1, sp", "handoff, sp", -1)
	return strings.Replace(s, "x9", "scratch", -1)
}
