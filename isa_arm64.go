// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (arm64 || gcarm64) && !gcamd64
// +build arm64 gcarm64
// +build !gcamd64

package gcmalloc

import (
	"github.com/jacob-hughes/gcmalloc/internal/code"
	isa "github.com/jacob-hughes/gcmalloc/internal/isa/arm64"
)

const (
	argScanner = isa.ArgScanner
	argContext = isa.ArgContext
	argsSize   = 16
)

func assembleSpill(text *code.Buf, argsAddr int32) {
	isa.AssembleSpill(text, argsAddr)
}
