package vector

import "fmt"

// failf reports a precondition violation. Call sites guard it with
// debugChecks so the checks compile away without the vectordebug tag.
func failf(format string, args ...any) {
	panic("vector: " + fmt.Sprintf(format, args...))
}
