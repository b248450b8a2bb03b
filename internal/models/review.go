package models

import "time"

// MaxReviewChars is the stored length limit for review text. Longer input is
// truncated, not rejected.
const MaxReviewChars = 500

// Review is keyed by (UserID, AgentID): one row per pair, a later submission
// by the same user for the same agent overwrites the earlier one.
type Review struct {
	UserID    string    `json:"user_id"`
	AgentID   string    `json:"agent_id"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
