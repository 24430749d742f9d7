package models

import (
	"errors"
	"fmt"
	"strings"
)

// Scores are on a 1..5 scale.
const (
	MinScore = 1
	MaxScore = 5
)

var ErrScoreOutOfRange = errors.New("score must be between 1 and 5")

type Checkin struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Mood      int      `json:"mood"`
	Stress    int      `json:"stress"`
	Sleep     int      `json:"sleep"`
	Notes     *string  `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt *string  `json:"updatedAt"`
}

// CreateCheckinRequest omits notes and tags from the body when they are empty.
type CreateCheckinRequest struct {
	Mood   int      `json:"mood"`
	Stress int      `json:"stress"`
	Sleep  int      `json:"sleep"`
	Notes  string   `json:"notes,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// Normalized trims notes so that blank notes are dropped from the body.
func (r CreateCheckinRequest) Normalized() CreateCheckinRequest {
	r.Notes = strings.TrimSpace(r.Notes)
	if len(r.Tags) == 0 {
		r.Tags = nil
	}
	return r
}

func (r CreateCheckinRequest) Validate() error {
	for _, s := range []struct {
		name  string
		value int
	}{{"mood", r.Mood}, {"stress", r.Stress}, {"sleep", r.Sleep}} {
		if err := ValidateScore(s.name, s.value); err != nil {
			return err
		}
	}
	return nil
}

type UpdateCheckinRequest struct {
	Mood   *int     `json:"mood,omitempty"`
	Stress *int     `json:"stress,omitempty"`
	Sleep  *int     `json:"sleep,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// QuickCheckinRequest carries the mood only; the server fills the rest.
type QuickCheckinRequest struct {
	Mood int `json:"mood"`
}

func ValidateScore(name string, v int) error {
	if v < MinScore || v > MaxScore {
		return fmt.Errorf("%s=%d: %w", name, v, ErrScoreOutOfRange)
	}
	return nil
}

// ParseTags splits a comma separated list, dropping blanks and duplicates.
func ParseTags(s string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
