// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || gcamd64) && !gcarm64
// +build amd64 gcamd64
// +build !gcarm64

package gcmalloc

import (
	"github.com/jacob-hughes/gcmalloc/internal/code"
	isa "github.com/jacob-hughes/gcmalloc/internal/isa/amd64"
)

const (
	argScanner = isa.ArgScanner
	argContext = isa.ArgContext
	argsSize   = 16
)

func assembleSpill(text *code.Buf, argsAddr int32) {
	isa.AssembleSpill(text, argsAddr)
}
