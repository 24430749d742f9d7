package models

// Direction is the trend of a metric over a period.
type Direction string

const (
	Improving Direction = "improving"
	Declining Direction = "declining"
	Stable    Direction = "stable"
)

type Averages struct {
	Mood   float64 `json:"mood"`
	Stress float64 `json:"stress"`
	Sleep  float64 `json:"sleep"`
}

type DailyData struct {
	Date   string  `json:"date"`
	Mood   float64 `json:"mood"`
	Stress float64 `json:"stress"`
	Sleep  float64 `json:"sleep"`
}

type MetricTrends struct {
	Mood   Direction `json:"mood"`
	Stress Direction `json:"stress"`
	Sleep  Direction `json:"sleep"`
}

type WeeklyReport struct {
	UserID    string      `json:"userId"`
	WeekStart string      `json:"weekStart"`
	WeekEnd   string      `json:"weekEnd"`
	Averages  Averages    `json:"averages"`
	DailyData []DailyData `json:"dailyData"`
}

type MonthlyReport struct {
	UserID                      string       `json:"userId"`
	Month                       string       `json:"month"`
	Averages                    Averages     `json:"averages"`
	BestDay                     DailyData    `json:"bestDay"`
	WorstDay                    DailyData    `json:"worstDay"`
	Trends                      MetricTrends `json:"trends"`
	ComparisonWithPreviousMonth Averages     `json:"comparisonWithPreviousMonth"`
	DailyData                   []DailyData  `json:"dailyData"`
}

type CustomReportRequest struct {
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	IncludeAverages    bool   `json:"includeAverages"`
	IncludeTrends      bool   `json:"includeTrends"`
	IncludeComparisons bool   `json:"includeComparisons"`
}

type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type CustomReport struct {
	Period      *ReportPeriod `json:"period"`
	Averages    *Averages     `json:"averages,omitempty"`
	Trends      *MetricTrends `json:"trends,omitempty"`
	Comparisons *struct {
		PreviousPeriod Averages `json:"previousPeriod"`
	} `json:"comparisons,omitempty"`
	DailyData []DailyData `json:"dailyData"`
}
