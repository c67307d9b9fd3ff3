package reports

import (
	"fmt"

	"github.com/megacare-dev/mega-care-api/customers"
)

const (
	StatusNormal   = "normal"
	StatusLow      = "low"
	StatusHigh     = "high"
	StatusElevated = "elevated"
	StatusUnknown  = "unknown"

	// Compliance thresholds used across CPAP follow-up programs.
	minUsageHours = 4.0
	maxMedianLeak = 24.0
	maxNormalAhi  = 5.0
)

type Analysis struct {
	Usage AnalysisItem `json:"usage"`
	Leak  AnalysisItem `json:"leak"`
	Ahi   AnalysisItem `json:"ahi"`
}

type AnalysisItem struct {
	Status         string `json:"status"`
	Text           string `json:"text"`
	Recommendation string `json:"recommendation"`
}

type ReportDetail struct {
	Report                *customers.DailyReport `json:"report"`
	Analysis              Analysis               `json:"analysis"`
	OverallRecommendation string                 `json:"overallRecommendation"`
}

type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Analyze(report *customers.DailyReport) *ReportDetail {
	analysis := Analysis{
		Usage: a.analyzeUsage(report.UsageHours),
		Leak:  a.analyzeLeak(report.Leak),
		Ahi:   a.analyzeAhi(report.EventsPerHour),
	}

	return &ReportDetail{
		Report:                report,
		Analysis:              analysis,
		OverallRecommendation: overallRecommendation(analysis),
	}
}

func (a *Analyzer) analyzeUsage(usageHours *float64) AnalysisItem {
	if usageHours == nil {
		return unknownItem("No usage data was recorded for this night.")
	}
	if *usageHours >= minUsageHours {
		return AnalysisItem{
			Status:         StatusNormal,
			Text:           fmt.Sprintf("The device was used for %.1f hours.", *usageHours),
			Recommendation: "Good usage, keep it up.",
		}
	}
	return AnalysisItem{
		Status:         StatusLow,
		Text:           fmt.Sprintf("The device was used for only %.1f hours.", *usageHours),
		Recommendation: "Try to use the device for at least 4 hours every night.",
	}
}

func (a *Analyzer) analyzeLeak(leak *customers.Distribution) AnalysisItem {
	if leak == nil || leak.Median == nil {
		return unknownItem("No leak data was recorded for this night.")
	}
	if *leak.Median <= maxMedianLeak {
		return AnalysisItem{
			Status:         StatusNormal,
			Text:           fmt.Sprintf("Median leak was %.1f L/min.", *leak.Median),
			Recommendation: "Mask seal looks good.",
		}
	}
	return AnalysisItem{
		Status:         StatusHigh,
		Text:           fmt.Sprintf("Median leak was %.1f L/min.", *leak.Median),
		Recommendation: "Check the mask fit and refit the headgear before sleeping.",
	}
}

func (a *Analyzer) analyzeAhi(events *customers.EventsPerHour) AnalysisItem {
	if events == nil || events.Ahi == nil {
		return unknownItem("No event data was recorded for this night.")
	}
	if *events.Ahi < maxNormalAhi {
		return AnalysisItem{
			Status:         StatusNormal,
			Text:           fmt.Sprintf("AHI was %.1f events per hour.", *events.Ahi),
			Recommendation: "Therapy is controlling events well.",
		}
	}
	return AnalysisItem{
		Status:         StatusElevated,
		Text:           fmt.Sprintf("AHI was %.1f events per hour.", *events.Ahi),
		Recommendation: "Elevated event rate, contact your clinician if this persists.",
	}
}

func unknownItem(text string) AnalysisItem {
	return AnalysisItem{
		Status:         StatusUnknown,
		Text:           text,
		Recommendation: "No recommendation without data.",
	}
}

func overallRecommendation(analysis Analysis) string {
	switch {
	case analysis.Usage.Status == StatusLow:
		return "Usage is below the recommended 4 hours. " + analysis.Usage.Recommendation
	case analysis.Leak.Status == StatusHigh:
		return "Mask leak is high. " + analysis.Leak.Recommendation
	case analysis.Ahi.Status == StatusElevated:
		return "Event rate is elevated. " + analysis.Ahi.Recommendation
	default:
		return "Therapy is on track, no changes needed."
	}
}
