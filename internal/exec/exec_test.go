// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && ((amd64 && !gcarm64) || (arm64 && !gcamd64))
// +build linux
// +build amd64,!gcarm64 arm64,!gcamd64

package exec

import (
	"encoding/binary"
	"runtime"
	"testing"

	"golang.org/x/sys/unix"
)

func TestMappingLayout(t *testing.T) {
	m, err := NewMapping(64, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	page := uintptr(unix.Getpagesize())
	if m.TextAddr()%page != 0 {
		t.Errorf("text address %#x not page-aligned", m.TextAddr())
	}
	if m.DataAddr()%page != 0 {
		t.Errorf("data address %#x not page-aligned", m.DataAddr())
	}
	if m.DataAddr() != m.TextAddr()+uintptr(len(m.Text())) {
		t.Errorf("data at %#x, text at %#x with %d bytes", m.DataAddr(), m.TextAddr(), len(m.Text()))
	}
	if len(m.Data()) < 16 {
		t.Errorf("data region is %d bytes", len(m.Data()))
	}
}

func TestMappingExecute(t *testing.T) {
	m, err := NewMapping(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	switch runtime.GOARCH {
	case "amd64":
		m.Text()[0] = 0xc3 // ret
	case "arm64":
		binary.LittleEndian.PutUint32(m.Text(), 0xd65f03c0) // ret
	default:
		t.Skip(runtime.GOARCH)
	}

	if err := m.Seal(); err != nil {
		t.Fatal(err)
	}

	Entry(m.TextAddr())()
}

func TestMappingClose(t *testing.T) {
	m, err := NewMapping(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.Close(); err != nil {
		t.Error(err)
	}
	if err := m.Close(); err != nil {
		t.Error(err)
	}
}
