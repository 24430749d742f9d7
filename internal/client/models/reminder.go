package models

type Reminder struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	Title      string  `json:"title"`
	Time       string  `json:"time"`
	DaysOfWeek []int   `json:"daysOfWeek"`
	Enabled    bool    `json:"enabled"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
}

type CreateReminderRequest struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	DaysOfWeek []int  `json:"daysOfWeek"`
}

type UpdateReminderRequest struct {
	Title      *string `json:"title,omitempty"`
	Time       *string `json:"time,omitempty"`
	DaysOfWeek []int   `json:"daysOfWeek,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}
