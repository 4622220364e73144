// SPDX-License-Identifier: MIT
package types

// Source is an injected random number source.
//
// *rand.Rand satisfies this interface; tests substitute deterministic sources.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}
