package models

import "time"

// Post represents a single social media post tracked by the analytics
// dashboard, together with its engagement counters and derived scores.
// A post is owned by one user and mutable only by its owner.
type Post struct {
	// ID is the internal unique identifier of the post record.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// AccountID is the identifier of the social account the post was
	// published on.
	AccountID int64 `json:"account_id"`

	// Content is the text body of the post.
	Content string `json:"content"`

	// PostDate is when the post was published. Listings order newest-first
	// by this field.
	PostDate time.Time `json:"post_date"`

	// Engagement counters. Always non-negative.
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Impressions int64 `json:"impressions"`

	// Sentiment is the derived sentiment label
	// ("positive", "negative" or "neutral"). New posts start "neutral".
	Sentiment string `json:"sentiment"`

	// AIScore is the derived content score in [0, 1]. New posts start at 0.5.
	AIScore float64 `json:"ai_score"`
}

// Engagement returns the total engagement of the post:
// the sum of likes, comments, and shares.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments + p.Shares
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostPatch describes a partial update to a post. Only non-nil fields are
// applied; numeric counters are clamped to be non-negative.
type PostPatch struct {
	Content     *string `json:"content,omitempty"`
	Likes       *int64  `json:"likes,omitempty"`
	Comments    *int64  `json:"comments,omitempty"`
	Shares      *int64  `json:"shares,omitempty"`
	Impressions *int64  `json:"impressions,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p PostPatch) Empty() bool {
	return p.Content == nil && p.Likes == nil && p.Comments == nil &&
		p.Shares == nil && p.Impressions == nil
}
