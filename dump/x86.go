// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && ((amd64 && !gcarm64) || gcamd64)
// +build cgo
// +build amd64,!gcarm64 gcamd64

package dump

import (
	"strings"

	"github.com/bnagy/gapstone"
)

const (
	csArch   = gapstone.CS_ARCH_X86
	csMode   = gapstone.CS_MODE_64
	csSyntax = gapstone.CS_OPT_SYNTAX_ATT
)

func rewriteOperands(s string) string {
	s = strings.Replace(s, "%rdi", "ctx", -1)
	s = strings.Replace(s, "%rsi", "handoff", -1)
	s = strings.Replace(s, "%rax", "scratch", -1)
	s = strings.Replace(s, "%rsp", "sp", -1)
	return strings.Replace(s, "%", "", -1)
}
