package service

import (
	"context"

	"github.com/socialpulse/socialpulse/internal/analytics"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AccountService interface {
	ConnectAccount(ctx context.Context, userID int64, req models.ConnectAccountRequest) (models.SocialAccount, error)
	// ListAccounts returns the user's accounts newest-first and reports
	// whether the result came from the lookup cache.
	ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, bool, error)
	DeleteAccount(ctx context.Context, userID, accountID int64) error
}

type PostService interface {
	AddPost(ctx context.Context, userID int64, req models.AddPostRequest) (models.Post, error)
	ListPosts(ctx context.Context, filter store.PostFilter) ([]models.Post, int, error)
	UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error)
	TrendingPosts(ctx context.Context, userID int64, limit int) ([]models.Post, error)
}

type AnalyticsService interface {
	AnalyzeContent(ctx context.Context, content string) (analytics.SentimentResult, error)
	Insights(ctx context.Context, userID int64) (analytics.InsightsReport, error)
	Summary(ctx context.Context, userID int64) (analytics.SummaryStats, error)
	Hashtags(ctx context.Context, userID int64) ([]analytics.HashtagMetric, int, error)
	PredictEngagement(ctx context.Context, req models.PredictEngagementRequest) (analytics.EngagementPrediction, error)
	AudienceInsights(ctx context.Context, userID int64) (analytics.AudienceReport, error)
	CompetitorAnalysis(ctx context.Context, userID int64, industry string) (analytics.CompetitorReport, error)
	Anomalies(ctx context.Context, userID int64) (analytics.AnomalyReport, error)
	Forecast(ctx context.Context, userID int64, months int) (analytics.GrowthForecast, error)
	Recommendations(ctx context.Context) analytics.Recommendations
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
	Export(ctx context.Context, userID int64, format string) ([]byte, string, error)
}
