package http

import (
	"context"
	"net/http"

	"github.com/socialpulse/socialpulse/internal/analytics"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/service"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/models"
)

// ─────────────────────────────────────────────
// Hand-written service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	connectFn func(ctx context.Context, userID int64, req models.ConnectAccountRequest) (models.SocialAccount, error)
	listFn    func(ctx context.Context, userID int64) ([]models.SocialAccount, bool, error)
	deleteFn  func(ctx context.Context, userID, accountID int64) error
}

func (m *mockAccountService) ConnectAccount(ctx context.Context, userID int64, req models.ConnectAccountRequest) (models.SocialAccount, error) {
	return m.connectFn(ctx, userID, req)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, bool, error) {
	return m.listFn(ctx, userID)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	return m.deleteFn(ctx, userID, accountID)
}

// mockPostService implements service.PostService for unit tests.
type mockPostService struct {
	addFn      func(ctx context.Context, userID int64, req models.AddPostRequest) (models.Post, error)
	listFn     func(ctx context.Context, filter store.PostFilter) ([]models.Post, int, error)
	updateFn   func(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error)
	trendingFn func(ctx context.Context, userID int64, limit int) ([]models.Post, error)
}

func (m *mockPostService) AddPost(ctx context.Context, userID int64, req models.AddPostRequest) (models.Post, error) {
	return m.addFn(ctx, userID, req)
}

func (m *mockPostService) ListPosts(ctx context.Context, filter store.PostFilter) ([]models.Post, int, error) {
	return m.listFn(ctx, filter)
}

func (m *mockPostService) UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error) {
	return m.updateFn(ctx, userID, postID, patch)
}

func (m *mockPostService) TrendingPosts(ctx context.Context, userID int64, limit int) ([]models.Post, error) {
	return m.trendingFn(ctx, userID, limit)
}

// mockAnalyticsService implements service.AnalyticsService for unit tests.
// Unset method fields panic on use, which surfaces unexpected calls.
type mockAnalyticsService struct {
	analyzeContentFn func(ctx context.Context, content string) (analytics.SentimentResult, error)
	insightsFn       func(ctx context.Context, userID int64) (analytics.InsightsReport, error)
	summaryFn        func(ctx context.Context, userID int64) (analytics.SummaryStats, error)
	hashtagsFn       func(ctx context.Context, userID int64) ([]analytics.HashtagMetric, int, error)
	predictFn        func(ctx context.Context, req models.PredictEngagementRequest) (analytics.EngagementPrediction, error)
	audienceFn       func(ctx context.Context, userID int64) (analytics.AudienceReport, error)
	competitorFn     func(ctx context.Context, userID int64, industry string) (analytics.CompetitorReport, error)
	anomaliesFn      func(ctx context.Context, userID int64) (analytics.AnomalyReport, error)
	forecastFn       func(ctx context.Context, userID int64, months int) (analytics.GrowthForecast, error)
	userStatsFn      func(ctx context.Context, userID int64) (models.UserStats, error)
	exportFn         func(ctx context.Context, userID int64, format string) ([]byte, string, error)
}

func (m *mockAnalyticsService) AnalyzeContent(ctx context.Context, content string) (analytics.SentimentResult, error) {
	return m.analyzeContentFn(ctx, content)
}

func (m *mockAnalyticsService) Insights(ctx context.Context, userID int64) (analytics.InsightsReport, error) {
	return m.insightsFn(ctx, userID)
}

func (m *mockAnalyticsService) Summary(ctx context.Context, userID int64) (analytics.SummaryStats, error) {
	return m.summaryFn(ctx, userID)
}

func (m *mockAnalyticsService) Hashtags(ctx context.Context, userID int64) ([]analytics.HashtagMetric, int, error) {
	return m.hashtagsFn(ctx, userID)
}

func (m *mockAnalyticsService) PredictEngagement(ctx context.Context, req models.PredictEngagementRequest) (analytics.EngagementPrediction, error) {
	return m.predictFn(ctx, req)
}

func (m *mockAnalyticsService) AudienceInsights(ctx context.Context, userID int64) (analytics.AudienceReport, error) {
	return m.audienceFn(ctx, userID)
}

func (m *mockAnalyticsService) CompetitorAnalysis(ctx context.Context, userID int64, industry string) (analytics.CompetitorReport, error) {
	return m.competitorFn(ctx, userID, industry)
}

func (m *mockAnalyticsService) Anomalies(ctx context.Context, userID int64) (analytics.AnomalyReport, error) {
	return m.anomaliesFn(ctx, userID)
}

func (m *mockAnalyticsService) Forecast(ctx context.Context, userID int64, months int) (analytics.GrowthForecast, error) {
	return m.forecastFn(ctx, userID, months)
}

func (m *mockAnalyticsService) Recommendations(ctx context.Context) analytics.Recommendations {
	return analytics.BuildRecommendations()
}

func (m *mockAnalyticsService) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	return m.userStatsFn(ctx, userID)
}

func (m *mockAnalyticsService) Export(ctx context.Context, userID int64, format string) ([]byte, string, error) {
	return m.exportFn(ctx, userID, format)
}

// ─────────────────────────────────────────────
// Handler construction helpers
// ─────────────────────────────────────────────

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, "test", logger.Nop())
}

// withUserID stamps the authenticated user ID on the request context the way
// the auth middleware would.
func withUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}
