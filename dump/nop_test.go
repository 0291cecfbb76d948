// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo
// +build !cgo

package dump

import (
	"io"
	"testing"
)

func TestTextUnavailable(t *testing.T) {
	if err := Text(io.Discard, []byte{0xc3}, 0); err == nil {
		t.Error("no error without cgo")
	}
}
