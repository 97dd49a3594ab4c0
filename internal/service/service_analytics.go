package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/socialpulse/socialpulse/internal/analytics"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/validators"
	"github.com/socialpulse/socialpulse/models"
)

// analyticsService is the concrete implementation of AnalyticsService.
// It loads the caller's posts and accounts from the repositories and feeds
// them through the pure functions of the analytics package.
type analyticsService struct {
	userRepository    store.UserRepository
	accountRepository store.AccountRepository
	postRepository    store.PostRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAnalyticsService constructs a new AnalyticsService wired to the given
// repositories.
func NewAnalyticsService(
	userRepository store.UserRepository,
	accountRepository store.AccountRepository,
	postRepository store.PostRepository,
	logger *logger.Logger,
) AnalyticsService {
	return &analyticsService{
		userRepository:    userRepository,
		accountRepository: accountRepository,
		postRepository:    postRepository,
		logger:            logger,
	}
}

// loadPosts fetches the caller's full post series for the analytics
// functions, which operate on the whole history rather than a page.
func (s *analyticsService) loadPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, err := s.postRepository.ListAllPosts(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("post listing ended with error")
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}
	return posts, nil
}

// AnalyzeContent runs ad-hoc sentiment analysis and keyword extraction over
// a piece of draft content without persisting anything.
//
// Returns validators.ErrEmptyContent on blank content.
func (s *analyticsService) AnalyzeContent(ctx context.Context, content string) (analytics.SentimentResult, error) {
	if err := validators.ValidateContent(content); err != nil {
		logger.FromContext(ctx).Error().Msg("empty content submitted for analysis")
		return analytics.SentimentResult{}, err
	}

	sentiment, score := analytics.AnalyzeSentiment(content)

	return analytics.SentimentResult{
		Content:   content,
		Sentiment: sentiment,
		AIScore:   score,
		Keywords:  analytics.ExtractKeywords(content, 5),
	}, nil
}

// Insights returns engagement aggregates over the user's posts paired with
// the fixed guidance list.
func (s *analyticsService) Insights(ctx context.Context, userID int64) (analytics.InsightsReport, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.InsightsReport{}, err
	}
	return analytics.Insights(posts), nil
}

// Summary returns totals and averages over the user's posts.
func (s *analyticsService) Summary(ctx context.Context, userID int64) (analytics.SummaryStats, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.SummaryStats{}, err
	}
	return analytics.Summarize(posts), nil
}

// Hashtags returns the user's top hashtags ranked by total engagement plus
// the number of distinct hashtags seen.
func (s *analyticsService) Hashtags(ctx context.Context, userID int64) ([]analytics.HashtagMetric, int, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	top, unique := analytics.AnalyzeHashtags(posts)
	return top, unique, nil
}

// PredictEngagement scores draft content for the given platform.
//
// Returns validators.ErrEmptyContent on blank content and
// validators.ErrInvalidPlatform on an unsupported platform.
func (s *analyticsService) PredictEngagement(ctx context.Context, req models.PredictEngagementRequest) (analytics.EngagementPrediction, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateContent(req.Content); err != nil {
		log.Error().Msg("empty content submitted for prediction")
		return analytics.EngagementPrediction{}, err
	}
	if err := validators.ValidatePlatform(req.Platform); err != nil {
		log.Error().Str("platform", string(req.Platform)).Msg("invalid platform provided")
		return analytics.EngagementPrediction{}, err
	}

	return analytics.PredictEngagement(req.Content, req.Platform), nil
}

// AudienceInsights returns the mocked audience demographics report scaled by
// the user's post history and account count.
func (s *analyticsService) AudienceInsights(ctx context.Context, userID int64) (analytics.AudienceReport, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.AudienceReport{}, err
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("account listing ended with error")
		return analytics.AudienceReport{}, fmt.Errorf("account listing ended with error: %w", err)
	}

	return analytics.AudienceInsights(posts, len(accounts)), nil
}

// CompetitorAnalysis returns the mocked peer comparison for the given
// industry. An empty industry defaults inside the analytics package.
func (s *analyticsService) CompetitorAnalysis(ctx context.Context, userID int64, industry string) (analytics.CompetitorReport, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.CompetitorReport{}, err
	}
	return analytics.CompetitorAnalysis(posts, industry), nil
}

// Anomalies scans the user's post series in chronological order for
// engagement spikes and dips.
func (s *analyticsService) Anomalies(ctx context.Context, userID int64) (analytics.AnomalyReport, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.AnomalyReport{}, err
	}
	return analytics.DetectAnomalies(posts), nil
}

// Forecast projects follower and engagement growth over the requested
// horizon. Months outside [1, 24] fall back to a three-month projection.
func (s *analyticsService) Forecast(ctx context.Context, userID int64, months int) (analytics.GrowthForecast, error) {
	log := logger.FromContext(ctx)

	accounts, err := s.accountRepository.ListAccounts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account listing ended with error")
		return analytics.GrowthForecast{}, fmt.Errorf("account listing ended with error: %w", err)
	}

	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return analytics.GrowthForecast{}, err
	}

	return analytics.ForecastGrowth(len(accounts), len(posts), months), nil
}

// Recommendations returns the canned posting-strategy recommendation payload.
func (s *analyticsService) Recommendations(ctx context.Context) analytics.Recommendations {
	return analytics.BuildRecommendations()
}

// UserStats aggregates profile information with account and engagement
// totals for the dashboard header.
//
// Returns store.ErrUserNotFound when the user does not exist.
func (s *analyticsService) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.UserStats{}, fmt.Errorf("user search by id failed: %w", err)
	}

	accounts, err := s.accountRepository.ListAccounts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account listing ended with error")
		return models.UserStats{}, fmt.Errorf("account listing ended with error: %w", err)
	}

	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	stats := models.UserStats{
		UserID:        user.ID,
		Username:      user.Username,
		Email:         user.Email,
		CreatedAt:     user.CreatedAt,
		AccountsCount: len(accounts),
		PostsCount:    len(posts),
	}
	for _, p := range posts {
		stats.TotalLikes += p.Likes
		stats.TotalComments += p.Comments
		stats.TotalShares += p.Shares
		stats.TotalImpressions += p.Impressions
		stats.TotalEngagement += p.Engagement()
	}

	return stats, nil
}

// Export serializes the user's full post history in the requested format.
//
// Supported formats are "json" and "csv"; the second return value is the
// matching Content-Type. Returns ErrExportFormat for anything else.
func (s *analyticsService) Export(ctx context.Context, userID int64, format string) ([]byte, string, error) {
	posts, err := s.loadPosts(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "json":
		payload, err := json.MarshalIndent(struct {
			Posts      []models.Post `json:"posts"`
			Total      int           `json:"total"`
			ExportedAt time.Time     `json:"exported_at"`
		}{Posts: posts, Total: len(posts), ExportedAt: time.Now()}, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("export serialization ended with error: %w", err)
		}
		return payload, "application/json", nil

	case "csv":
		payload, err := exportCSV(posts)
		if err != nil {
			return nil, "", fmt.Errorf("export serialization ended with error: %w", err)
		}
		return payload, "text/csv", nil

	default:
		logger.FromContext(ctx).Error().Str("format", format).Msg("unsupported export format requested")
		return nil, "", ErrExportFormat
	}
}

// exportCSV renders posts as a CSV document with a fixed header row.
func exportCSV(posts []models.Post) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "user_id", "account_id", "content", "post_date",
		"likes", "comments", "shares", "impressions", "sentiment", "ai_score",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, p := range posts {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.UserID, 10),
			strconv.FormatInt(p.AccountID, 10),
			p.Content,
			p.PostDate.Format(time.RFC3339),
			strconv.FormatInt(p.Likes, 10),
			strconv.FormatInt(p.Comments, 10),
			strconv.FormatInt(p.Shares, 10),
			strconv.FormatInt(p.Impressions, 10),
			p.Sentiment,
			strconv.FormatFloat(p.AIScore, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
