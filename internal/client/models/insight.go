package models

// Insight periods accepted by the trends endpoint.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

type TrendAnalysis struct {
	Period           string    `json:"period"`
	Trend            Direction `json:"trend"`
	MoodTrend        float64   `json:"moodTrend"`
	StressTrend      float64   `json:"stressTrend"`
	SleepTrend       float64   `json:"sleepTrend"`
	MostStressfulDay string    `json:"mostStressfulDay,omitempty"`
	Correlation      struct {
		SleepMood  float64 `json:"sleepMood"`
		StressMood float64 `json:"stressMood"`
	} `json:"correlation"`
	Alerts []string `json:"alerts"`
}

type Recommendation struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	BasedOn     string `json:"basedOn"`
}

type PeriodSummary struct {
	Label    string   `json:"label"`
	Averages Averages `json:"averages"`
}

type ComparisonResult struct {
	Period1     *PeriodSummary `json:"period1"`
	Period2     *PeriodSummary `json:"period2"`
	Differences Averages       `json:"differences"`
	Improvement bool           `json:"improvement"`
}

type Streak struct {
	Current         int     `json:"current"`
	Longest         int     `json:"longest"`
	LastCheckinDate *string `json:"lastCheckinDate"`
}
