package report_test

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mulcheck/report"
	"github.com/sarchlab/mulcheck/timing/protocol"
)

func sampleReport() *report.Report {
	r := report.New("sample", protocol.DefaultTimingConfig())
	r.Add(report.Result{Index: 0, A: 2, B: 3, Expected: 6, Reference: 6, Actual: 6, Cycles: 3, Status: report.StatusPass})
	r.Add(report.Result{Index: 1, A: 9, B: 9, Expected: 15, Reference: 15, Actual: 1, Cycles: 3,
		Status: report.StatusMismatch, Message: "scenario 1: 9 x 9: expected 15, got 1"})
	r.Add(report.Result{Index: 2, A: 5, B: 0, Expected: 0, Reference: 0, Cycles: 20,
		Status: report.StatusTimeout, Message: "scenario 2: 5 x 0: done not raised within 20 cycles"})
	r.Finish(100, 1e-3)
	return r
}

var _ = Describe("Report", func() {
	It("should assign a run id and keep the timing", func() {
		a := report.New("a", protocol.DefaultTimingConfig())
		b := report.New("b", nil)
		Expect(a.Metadata.RunID).NotTo(BeEmpty())
		Expect(a.Metadata.RunID).NotTo(Equal(b.Metadata.RunID))
		Expect(a.Metadata.Timing.PollBudget).To(Equal(uint64(20)))
		Expect(a.Metadata.Timestamp).NotTo(BeEmpty())
	})

	It("should count outcomes by kind", func() {
		r := sampleReport()
		Expect(r.Summary.Total).To(Equal(3))
		Expect(r.Summary.Passed).To(Equal(1))
		Expect(r.Summary.Mismatches).To(Equal(1))
		Expect(r.Summary.Timeouts).To(Equal(1))
		Expect(r.Summary.AllPassed).To(BeFalse())
		Expect(r.Summary.TotalEdges).To(Equal(uint64(100)))
		Expect(r.Passed()).To(BeFalse())
		Expect(r.Failures()).To(HaveLen(2))
	})

	It("should count protocol misuse apart from mismatches", func() {
		r := report.New("", nil)
		r.Add(report.Result{Index: 0, A: 1, B: 1, Status: report.StatusMisuse,
			Message: "scenario 0: 1 x 1: protocol misuse"})
		r.Finish(10, 0)

		Expect(r.Summary.Misuses).To(Equal(1))
		Expect(r.Summary.Mismatches).To(BeZero())
		Expect(r.Passed()).To(BeFalse())

		var buf bytes.Buffer
		report.NewPrinter(&buf).PrintText(r)
		Expect(buf.String()).To(ContainSubstring("[PROT] #0    1 x  1: scenario 0: 1 x 1: protocol misuse"))
		Expect(buf.String()).To(ContainSubstring("Misuses:    1"))
	})

	It("should list every failure in Err", func() {
		err := sampleReport().Err()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("2 of 3 scenarios failed"))
		Expect(err.Error()).To(ContainSubstring("expected 15, got 1"))
		Expect(err.Error()).To(ContainSubstring("within 20 cycles"))
	})

	It("should pass an empty or all-pass run", func() {
		r := report.New("", nil)
		r.Finish(0, 0)
		Expect(r.Passed()).To(BeTrue())
		Expect(r.Err()).To(Succeed())
		Expect(r.String()).To(HavePrefix("PASS 0/0"))
	})

	Describe("Printer", func() {
		var (
			buf *bytes.Buffer
			p   *report.Printer
		)

		BeforeEach(func() {
			buf = &bytes.Buffer{}
			p = report.NewPrinter(buf)
		})

		It("should print text with one line per scenario", func() {
			p.PrintText(sampleReport())
			out := buf.String()
			Expect(out).To(ContainSubstring("[PASS] #0    2 x  3 =  6 (3 cycles)"))
			Expect(out).To(ContainSubstring("[FAIL] #1    9 x  9: expected 15, got 1"))
			Expect(out).To(ContainSubstring("[TIME] #2    5 x  0: no done after 20 cycles"))
			Expect(out).To(ContainSubstring("FAIL 1/3 passed"))
		})

		It("should print CSV with a header", func() {
			p.PrintCSV(sampleReport())
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(HavePrefix("index,a,b,expected"))
			Expect(lines[2]).To(HavePrefix("1,9,9,15,15,1,3,mismatch"))
		})

		It("should print JSON that decodes back", func() {
			Expect(p.PrintJSON(sampleReport())).To(Succeed())
			var decoded report.Report
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			Expect(decoded.Results).To(HaveLen(3))
			Expect(decoded.Results[2].Status).To(Equal(report.StatusTimeout))
			Expect(decoded.Metadata.Name).To(Equal("sample"))
		})

		It("should default to stdout", func() {
			Expect(report.NewPrinter(nil).Output).NotTo(BeNil())
		})
	})
})
