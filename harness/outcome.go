package harness

import "fmt"

// Outcome is the result of one handshake transaction.
type Outcome struct {
	// Completed is false if the transaction timed out.
	Completed bool
	// Result is the value read from the device. Only valid if Completed.
	Result uint8
	// Cycles is the number of edges the done poll consumed, or the number
	// elapsed when it gave up.
	Cycles uint64
}

// Completed returns a successful outcome.
func Completed(result uint8, cycles uint64) Outcome {
	return Outcome{Completed: true, Result: result, Cycles: cycles}
}

// TimedOut returns a timed-out outcome.
func TimedOut(cycles uint64) Outcome {
	return Outcome{Cycles: cycles}
}

func (o Outcome) String() string {
	if o.Completed {
		return fmt.Sprintf("Completed(%d, %d)", o.Result, o.Cycles)
	}
	return fmt.Sprintf("TimedOut(%d)", o.Cycles)
}
