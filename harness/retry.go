package harness

// Advancer advances a clock by a number of rising edges.
type Advancer interface {
	Advance(n uint64)
}

// RetryResult is the outcome of Retry.
type RetryResult struct {
	// Succeeded is true if the predicate held within the attempt budget.
	Succeeded bool
	// Attempts is the number of times the predicate was evaluated.
	Attempts uint64
	// Edges is the number of edges advanced.
	Edges uint64
}

// Retry evaluates pred up to maxAttempts times, advancing clk by
// perAttemptAdvance edges before each evaluation. It stops at the first
// attempt for which pred holds.
func Retry(clk Advancer, pred func() bool, maxAttempts, perAttemptAdvance uint64) RetryResult {
	var r RetryResult
	for r.Attempts < maxAttempts {
		clk.Advance(perAttemptAdvance)
		r.Attempts++
		r.Edges += perAttemptAdvance
		if pred() {
			r.Succeeded = true
			return r
		}
	}
	return r
}
