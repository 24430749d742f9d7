package models

type Goal struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	TargetValue  float64 `json:"targetValue"`
	CurrentValue float64 `json:"currentValue"`
	Deadline     *string `json:"deadline"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    *string `json:"updatedAt"`
}

type CreateGoalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	TargetValue float64 `json:"targetValue"`
	Deadline    string  `json:"deadline,omitempty"`
}

type UpdateGoalRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	TargetValue *float64 `json:"targetValue,omitempty"`
	Deadline    *string  `json:"deadline,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type GoalProgress struct {
	GoalID        string  `json:"goalId"`
	CurrentValue  float64 `json:"currentValue"`
	TargetValue   float64 `json:"targetValue"`
	Percentage    float64 `json:"percentage"`
	DaysRemaining *int    `json:"daysRemaining"`
	OnTrack       bool    `json:"onTrack"`
}
