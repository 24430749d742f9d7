package models

// MoodLevel filters recommended tips.
type MoodLevel string

const (
	MoodLow    MoodLevel = "low"
	MoodMedium MoodLevel = "medium"
	MoodHigh   MoodLevel = "high"
)

func (m MoodLevel) Valid() bool {
	switch m {
	case MoodLow, MoodMedium, MoodHigh:
		return true
	}
	return false
}

type Tip struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Category    *string `json:"category"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

type CreateTipRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Category    string `json:"category,omitempty"`
}

type UpdateTipRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Category    *string `json:"category,omitempty"`
}
