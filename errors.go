// SPDX-License-Identifier: MIT

package octree

import "fmt"

// preconditions that are programmer errors abort rather than return an
// error, matching spec.md §7: these can never legitimately happen in
// correct calling code, so there is nothing a caller could do with an
// error value that it couldn't do by not violating the precondition.

func mustNotBeEmpty(op string) {
	panic(fmt.Sprintf("octree: %s on an empty IndexPath", op))
}

func mustNotBeFull(op string) {
	panic(fmt.Sprintf("octree: %s on a full IndexPath", op))
}
