// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reg indexes machine registers.  The numbering is the
// architecture's own encoding order.
package reg

import (
	"fmt"
)

type R byte

func (r R) String() string {
	return fmt.Sprintf("r%d", r)
}
