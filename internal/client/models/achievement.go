package models

type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Category    string  `json:"category"`
	UnlockedAt  *string `json:"unlockedAt"`
	Progress    float64 `json:"progress"`
	Requirement string  `json:"requirement"`
}

func (a Achievement) Unlocked() bool { return a.UnlockedAt != nil }
