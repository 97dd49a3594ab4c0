package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConnectAccountRequest is the payload of POST /api/accounts.
type ConnectAccountRequest struct {
	Platform    Platform `json:"platform"`
	AccountName string   `json:"account_name"`
}

// AddPostRequest is the payload of POST /api/posts. Absent counters default
// to zero.
type AddPostRequest struct {
	AccountID   int64  `json:"account_id"`
	Content     string `json:"content"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
	Impressions int64  `json:"impressions"`
}

// AnalyzeRequest is the payload of POST /api/analyze.
type AnalyzeRequest struct {
	Content string `json:"content"`
}

// PredictEngagementRequest is the payload of
// POST /api/analytics/predict-engagement.
type PredictEngagementRequest struct {
	Content  string   `json:"content"`
	Platform Platform `json:"platform"`
}
