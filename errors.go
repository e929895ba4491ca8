package bft

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLineTooLong is returned, wrapped, when a line exceeds the limit set
// with MaxLineSize.
var ErrLineTooLong = errors.New("line too long")

// maxExpectedInMessage bounds how many candidates Error lists.
const maxExpectedInMessage = 5

// A MismatchError is returned when a label line names a value that does not
// match any node still waiting for its children line.
type MismatchError struct {
	Line     int     // 1-based line number of the label line
	Value    Value   // the unmatched label
	Expected []Value // the labels that were waiting, in queue order
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("bft: line %d: unexpected parent %q according to breadth-first order", e.Line, e.Value.String())
	if len(e.Expected) == 0 {
		return msg + " (no nodes awaiting children)"
	}
	names := make([]string, 0, min(len(e.Expected), maxExpectedInMessage))
	for i, v := range e.Expected {
		if i == maxExpectedInMessage {
			names = append(names, "...")
			break
		}
		names = append(names, fmt.Sprintf("%q", v.String()))
	}
	return msg + " (expected one of " + strings.Join(names, ", ") + ")"
}
