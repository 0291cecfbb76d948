// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abi

import (
	"testing"
)

func TestFrameSize(t *testing.T) {
	if FrameSize != (SpillSlots+PadSlots)*WordSize {
		t.Errorf("frame size %d does not cover %d slots", FrameSize, SpillSlots+PadSlots)
	}
	if FrameSize%StackAlign != 0 {
		t.Errorf("frame size %d breaks the stack alignment unit %d", FrameSize, StackAlign)
	}
}

func TestFrameSlots(t *testing.T) {
	slots := FrameSlots()
	if len(slots) != SpillSlots {
		t.Fatalf("%d slots, expected %d", len(slots), SpillSlots)
	}

	seen := make(map[string]bool)

	for i, slot := range slots {
		if slot.Reg == "" {
			t.Errorf("slot %d has no register name", i)
		}
		if seen[slot.Reg] {
			t.Errorf("register %s appears twice", slot.Reg)
		}
		seen[slot.Reg] = true

		if slot.Offset != int32(i)*WordSize {
			t.Errorf("slot %s has offset %d, expected %d", slot.Reg, slot.Offset, i*WordSize)
		}
	}
}
