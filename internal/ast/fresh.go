package ast

import (
	"strconv"
	"sync/atomic"
)

// freshCounter is the process-wide monotonic supply backing Fresh. It is
// confined to this package: callers never see or reset it directly, which is
// what makes alpha-renaming hygienic without a free-variable scan.
var freshCounter uint64

// Fresh returns a new identifier disjoint from any name a user can write.
// Surface identifiers start with a lowercase letter (see the parser's
// grammar); generated names always start with an uppercase 'Var', so the two
// lexical classes never collide. Two calls never return the same name.
func Fresh() string {
	n := atomic.AddUint64(&freshCounter, 1)
	return "Var" + strconv.FormatUint(n, 10)
}
