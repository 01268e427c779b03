package protocol_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/mulcheck/timing/protocol"
)

var _ = Describe("TimingConfig", func() {
	var tempDir string

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
	})

	Describe("Default values", func() {
		It("should match the observed harness", func() {
			config := protocol.DefaultTimingConfig()
			Expect(config.ClockFreqHz).To(Equal(100e3))
			Expect(config.ResetHoldEdges).To(Equal(uint64(10)))
			Expect(config.SettleEdges).To(Equal(uint64(5)))
			Expect(config.OperandSetupEdges).To(Equal(uint64(2)))
			Expect(config.FirstSampleGap).To(Equal(uint64(1)))
			Expect(config.PollBudget).To(Equal(uint64(20)))
			Expect(config.ResultSettleEdges).To(Equal(uint64(1)))
			Expect(config.InterOpGapEdges).To(Equal(uint64(2)))
		})

		It("should be valid", func() {
			Expect(protocol.DefaultTimingConfig().Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects unusable values",
			func(mutate func(*protocol.TimingConfig), msg string) {
				config := protocol.DefaultTimingConfig()
				mutate(config)
				Expect(config.Validate()).To(MatchError(ContainSubstring(msg)))
			},
			Entry("zero frequency", func(c *protocol.TimingConfig) { c.ClockFreqHz = 0 }, "clock_freq_hz"),
			Entry("zero reset hold", func(c *protocol.TimingConfig) { c.ResetHoldEdges = 0 }, "reset_hold_edges"),
			Entry("zero settle", func(c *protocol.TimingConfig) { c.SettleEdges = 0 }, "settle_edges"),
			Entry("zero operand setup", func(c *protocol.TimingConfig) { c.OperandSetupEdges = 0 }, "operand_setup_edges"),
			Entry("zero result settle", func(c *protocol.TimingConfig) { c.ResultSettleEdges = 0 }, "result_settle_edges"),
			Entry("zero budget", func(c *protocol.TimingConfig) { c.PollBudget = 0 }, "poll_budget"),
			Entry("zero sample gap", func(c *protocol.TimingConfig) { c.FirstSampleGap = 0 }, "first_sample_gap must be > 0"),
			Entry("gap beyond budget", func(c *protocol.TimingConfig) { c.FirstSampleGap = 21 }, "first_sample_gap must be <= poll_budget"),
		)
	})

	Describe("Save and load", func() {
		It("should round-trip through a file", func() {
			config := protocol.DefaultTimingConfig()
			config.SettleEdges = 8
			config.FirstSampleGap = 3
			path := filepath.Join(tempDir, "timing.json")
			Expect(config.SaveConfig(path)).To(Succeed())

			loaded, err := protocol.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(config))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			Expect(os.WriteFile(path, []byte(`{"poll_budget": 40}`), 0644)).To(Succeed())

			loaded, err := protocol.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.PollBudget).To(Equal(uint64(40)))
			Expect(loaded.ResetHoldEdges).To(Equal(uint64(10)))
		})

		It("should fail on a missing file", func() {
			_, err := protocol.LoadConfig(filepath.Join(tempDir, "nope.json"))
			Expect(err).To(MatchError(ContainSubstring("failed to read timing config file")))
		})

		It("should fail on malformed JSON", func() {
			path := filepath.Join(tempDir, "bad.json")
			Expect(os.WriteFile(path, []byte(`{`), 0644)).To(Succeed())
			_, err := protocol.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("failed to parse timing config")))
		})

		It("should fail on an invalid config", func() {
			path := filepath.Join(tempDir, "invalid.json")
			Expect(os.WriteFile(path, []byte(`{"settle_edges": 0}`), 0644)).To(Succeed())
			_, err := protocol.LoadConfig(path)
			Expect(err).To(MatchError(ContainSubstring("settle_edges must be > 0")))
		})
	})

	Describe("Clone", func() {
		It("should not share state", func() {
			config := protocol.DefaultTimingConfig()
			clone := config.Clone()
			clone.PollBudget = 99
			Expect(config.PollBudget).To(Equal(uint64(20)))
		})
	})

	Describe("OperationEdges", func() {
		It("should add setup, strobe, poll and result settle", func() {
			Expect(protocol.DefaultTimingConfig().OperationEdges(3)).To(Equal(uint64(2 + 1 + 3 + 1)))
		})
	})
})
