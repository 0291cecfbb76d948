// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo
// +build !cgo

package dump

import (
	"errors"
	"io"
)

func Text(w io.Writer, text []byte, textAddr uintptr) error {
	return errors.New("dump.Text requires cgo")
}
