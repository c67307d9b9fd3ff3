package reports_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/megacare-dev/mega-care-api/customers"
	"github.com/megacare-dev/mega-care-api/reports"
)

func floatp(f float64) *float64 {
	return &f
}

var _ = Describe("Analyzer", func() {
	var analyzer *reports.Analyzer
	var report *customers.DailyReport

	BeforeEach(func() {
		analyzer = reports.NewAnalyzer()
		report = &customers.DailyReport{
			Id:         "2024-06-01",
			UsageHours: floatp(7.5),
			Leak: &customers.Distribution{
				Median:       floatp(3.2),
				Percentile95: floatp(14.8),
			},
			EventsPerHour: &customers.EventsPerHour{
				Ahi: floatp(1.4),
			},
		}
	})

	It("reports a compliant night as on track", func() {
		detail := analyzer.Analyze(report)
		Expect(detail.Analysis.Usage.Status).To(Equal(reports.StatusNormal))
		Expect(detail.Analysis.Leak.Status).To(Equal(reports.StatusNormal))
		Expect(detail.Analysis.Ahi.Status).To(Equal(reports.StatusNormal))
		Expect(detail.OverallRecommendation).To(Equal("Therapy is on track, no changes needed."))
	})

	It("flags short usage first", func() {
		report.UsageHours = floatp(2.5)
		report.Leak.Median = floatp(30.0)

		detail := analyzer.Analyze(report)
		Expect(detail.Analysis.Usage.Status).To(Equal(reports.StatusLow))
		Expect(detail.OverallRecommendation).To(HavePrefix("Usage is below"))
	})

	It("flags a high median leak", func() {
		report.Leak.Median = floatp(30.0)

		detail := analyzer.Analyze(report)
		Expect(detail.Analysis.Leak.Status).To(Equal(reports.StatusHigh))
		Expect(detail.OverallRecommendation).To(HavePrefix("Mask leak is high."))
	})

	It("flags an elevated AHI", func() {
		report.EventsPerHour.Ahi = floatp(9.1)

		detail := analyzer.Analyze(report)
		Expect(detail.Analysis.Ahi.Status).To(Equal(reports.StatusElevated))
		Expect(detail.OverallRecommendation).To(HavePrefix("Event rate is elevated."))
	})

	It("treats a usage of exactly four hours as normal", func() {
		report.UsageHours = floatp(4.0)

		detail := analyzer.Analyze(report)
		Expect(detail.Analysis.Usage.Status).To(Equal(reports.StatusNormal))
	})

	It("reports missing data as unknown", func() {
		detail := analyzer.Analyze(&customers.DailyReport{Id: "2024-06-01"})
		Expect(detail.Analysis.Usage.Status).To(Equal(reports.StatusUnknown))
		Expect(detail.Analysis.Leak.Status).To(Equal(reports.StatusUnknown))
		Expect(detail.Analysis.Ahi.Status).To(Equal(reports.StatusUnknown))
		Expect(detail.OverallRecommendation).To(Equal("Therapy is on track, no changes needed."))
	})
})
