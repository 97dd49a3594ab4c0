package models

import "time"

// ErrorResponse is the structured error payload returned for every failed
// request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse is the body of a successful login: the signed session token
// plus the public view of the user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AccountsResponse is the body of GET /api/accounts.
//
// FromCache reports whether the account list was served from the lookup cache
// rather than the underlying store.
type AccountsResponse struct {
	Accounts  []SocialAccount `json:"accounts"`
	Total     int             `json:"total"`
	FromCache bool            `json:"from_cache"`
	Timestamp time.Time       `json:"timestamp"`
}

// AccountResponse is the body of a successful account connect.
type AccountResponse struct {
	Message string        `json:"message"`
	Account SocialAccount `json:"account"`
}

// PostsResponse is the body of GET /api/posts. Total counts every post
// matching the filter, ignoring pagination.
type PostsResponse struct {
	Posts     []Post    `json:"posts"`
	Total     int       `json:"total"`
	Limit     int       `json:"limit"`
	Offset    int       `json:"offset"`
	Timestamp time.Time `json:"timestamp"`
}

// PostResponse is the body of a successful post create or update.
type PostResponse struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

// TrendingPostsResponse is the body of GET /api/posts/trending.
type TrendingPostsResponse struct {
	TrendingPosts []Post    `json:"trending_posts"`
	Total         int       `json:"total"`
	Timestamp     time.Time `json:"timestamp"`
}

// UserStats is the body of GET /api/stats: profile data plus lifetime
// engagement aggregates.
type UserStats struct {
	UserID           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"created_at"`
	AccountsCount    int       `json:"accounts_count"`
	PostsCount       int       `json:"posts_count"`
	TotalLikes       int64     `json:"total_likes"`
	TotalComments    int64     `json:"total_comments"`
	TotalShares      int64     `json:"total_shares"`
	TotalImpressions int64     `json:"total_impressions"`
	TotalEngagement  int64     `json:"total_engagement"`
}
