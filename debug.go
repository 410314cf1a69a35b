//go:build vectordebug

package vector

// debugChecks enables precondition assertions.
const debugChecks = true
