package enumset

import (
	"fmt"
	"strings"
)

// Compare reports the lexicographic order of two keys: -1 when a sorts
// before b, 0 when equal, 1 when a sorts after b.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Unreachable signals that a case analysis over enumeration members reached
// a value it should have handled. It always returns a non-nil error wrapping
// ErrNonExhaustive, carrying the custom message when one is given and the
// unhandled value otherwise. Hitting it at runtime indicates a defect in the
// caller's switch, never a normal-path condition:
//
//	switch color {
//	case colors.Values()["RED"]:
//		...
//	default:
//		return enumset.Unreachable(color)
//	}
func Unreachable(value any, msg ...string) error {
	if len(msg) > 0 && msg[0] != "" {
		return fmt.Errorf("%w: %s", ErrNonExhaustive, msg[0])
	}
	return fmt.Errorf("%w: unhandled value %v", ErrNonExhaustive, value)
}
