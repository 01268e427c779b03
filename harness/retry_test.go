package harness_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mulcheck/harness"
)

type fakeAdvancer struct {
	edges uint64
}

func (a *fakeAdvancer) Advance(n uint64) { a.edges += n }

var _ = Describe("Retry", func() {
	var clk *fakeAdvancer

	BeforeEach(func() {
		clk = &fakeAdvancer{}
	})

	It("should stop at the first attempt that holds", func() {
		r := harness.Retry(clk, func() bool { return clk.edges >= 3 }, 10, 1)

		Expect(r.Succeeded).To(BeTrue())
		Expect(r.Attempts).To(Equal(uint64(3)))
		Expect(r.Edges).To(Equal(uint64(3)))
		Expect(clk.edges).To(Equal(uint64(3)))
	})

	It("should advance before the first evaluation", func() {
		var seen []uint64
		harness.Retry(clk, func() bool {
			seen = append(seen, clk.edges)
			return false
		}, 3, 2)

		Expect(seen).To(Equal([]uint64{2, 4, 6}))
	})

	It("should give up after exactly the attempt budget", func() {
		calls := 0
		r := harness.Retry(clk, func() bool {
			calls++
			return false
		}, 20, 1)

		Expect(r.Succeeded).To(BeFalse())
		Expect(r.Attempts).To(Equal(uint64(20)))
		Expect(r.Edges).To(Equal(uint64(20)))
		Expect(calls).To(Equal(20))
		Expect(clk.edges).To(Equal(uint64(20)))
	})

	It("should not advance with a zero budget", func() {
		r := harness.Retry(clk, func() bool { return true }, 0, 1)

		Expect(r.Succeeded).To(BeFalse())
		Expect(r.Attempts).To(BeZero())
		Expect(clk.edges).To(BeZero())
	})
})

var _ = Describe("Outcome", func() {
	It("should format completed and timed-out outcomes", func() {
		Expect(harness.Completed(6, 3).String()).To(Equal("Completed(6, 3)"))
		Expect(harness.TimedOut(20).String()).To(Equal("TimedOut(20)"))
	})
})

var _ = Describe("Failure", func() {
	It("should describe a timeout", func() {
		f := &harness.Failure{Kind: harness.Timeout, Index: 2, A: 5, B: 0, Cycles: 20}
		Expect(f.Error()).To(Equal("scenario 2: 5 x 0: done not raised within 20 cycles"))
		Expect(f.Kind.String()).To(Equal("timeout"))
	})

	It("should describe a mismatch", func() {
		f := &harness.Failure{Kind: harness.ResultMismatch, Index: 1, A: 15, B: 15, Expected: 15, Actual: 1}
		Expect(f.Error()).To(Equal("scenario 1: 15 x 15: expected 15, got 1"))
		Expect(f.Kind.String()).To(Equal("result mismatch"))
	})

	It("should describe a protocol misuse", func() {
		f := &harness.Failure{Kind: harness.ProtocolMisuse, Index: 4, A: 1, B: 1}
		Expect(f.Error()).To(Equal("scenario 4: 1 x 1: protocol misuse"))
	})

	It("should map kinds onto report statuses", func() {
		Expect(harness.Timeout.Status()).To(BeEquivalentTo("timeout"))
		Expect(harness.ResultMismatch.Status()).To(BeEquivalentTo("mismatch"))
		Expect(harness.ProtocolMisuse.Status()).To(BeEquivalentTo("protocol_misuse"))
	})
})
