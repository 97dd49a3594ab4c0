package analytics

import (
	"testing"
	"time"

	"github.com/socialpulse/socialpulse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(id int64, likes, comments, shares int64) models.Post {
	return models.Post{
		ID:       id,
		Likes:    likes,
		Comments: comments,
		Shares:   shares,
		PostDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
}

func TestAnalyzeSentiment_Classes(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		sentiment string
		minScore  float64
		maxScore  float64
	}{
		{"positive keyword", "This product is amazing and I love it", SentimentPositive, 0.7, 1.0},
		{"positive uppercase", "GREAT work everyone", SentimentPositive, 0.7, 1.0},
		{"negative keyword", "I hate this terrible update", SentimentNegative, 0.0, 0.3},
		{"neutral", "Posting a routine update today", SentimentNeutral, 0.4, 0.6},
		{"empty", "", SentimentNeutral, 0.4, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Scores are randomized; only the class and band are stable.
			for i := 0; i < 20; i++ {
				sentiment, score := AnalyzeSentiment(tt.content)
				assert.Equal(t, tt.sentiment, sentiment)
				assert.GreaterOrEqual(t, score, tt.minScore)
				assert.LessOrEqual(t, score, tt.maxScore)
			}
		})
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords("The launch of the analytics dashboard was smooth, smooth indeed!", 5)

	assert.Contains(t, keywords, "launch")
	assert.Contains(t, keywords, "analytics")
	assert.Contains(t, keywords, "dashboard")
	assert.NotContains(t, keywords, "the", "stop words are excluded")
	assert.NotContains(t, keywords, "was", "short words are excluded")

	// Duplicates collapse to one entry.
	count := 0
	for _, k := range keywords {
		if k == "smooth" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.LessOrEqual(t, len(keywords), 5)
}

func TestAnalyzePost(t *testing.T) {
	p := models.Post{ID: 7, Content: "Amazing launch of the analytics dashboard"}

	result := AnalyzePost(p)

	assert.EqualValues(t, 7, result.PostID)
	assert.Equal(t, p.Content, result.Content)
	assert.Equal(t, SentimentPositive, result.Sentiment)
	assert.GreaterOrEqual(t, result.AIScore, 0.7)
	assert.LessOrEqual(t, result.AIScore, 1.0)
	assert.Contains(t, result.Keywords, "dashboard")
}

func TestCountSentiments(t *testing.T) {
	results := []SentimentResult{
		{Sentiment: SentimentPositive},
		{Sentiment: SentimentPositive},
		{Sentiment: SentimentNegative},
		{Sentiment: SentimentNeutral},
	}

	dist := CountSentiments(results)
	assert.Equal(t, SentimentDistribution{Positive: 2, Neutral: 1, Negative: 1}, dist)
}

func TestSummarize(t *testing.T) {
	posts := []models.Post{
		{Likes: 10, Comments: 5, Shares: 1, Impressions: 100},
		{Likes: 20, Comments: 5, Shares: 3, Impressions: 300},
	}

	stats := Summarize(posts)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.EqualValues(t, 30, stats.TotalLikes)
	assert.EqualValues(t, 10, stats.TotalComments)
	assert.EqualValues(t, 4, stats.TotalShares)
	assert.EqualValues(t, 400, stats.TotalImpressions)
	assert.InDelta(t, 15.0, stats.AverageLikes, 0.001)
	assert.InDelta(t, 5.0, stats.AverageComments, 0.001)
	assert.InDelta(t, 22.0, stats.AverageEngagementRate, 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	assert.Equal(t, SummaryStats{}, stats)
}

func TestTrending(t *testing.T) {
	posts := []models.Post{
		post(1, 5, 0, 0),
		post(2, 100, 20, 10),
		post(3, 50, 5, 5),
	}

	top := Trending(posts, 2)
	require.Len(t, top, 2)
	assert.EqualValues(t, 2, top[0].ID)
	assert.EqualValues(t, 3, top[1].ID)

	// The input slice keeps its original order.
	assert.EqualValues(t, 1, posts[0].ID)
}

func TestAnalyzeHashtags(t *testing.T) {
	posts := []models.Post{
		{Content: "Launch day! #ai #tech", Likes: 200},
		{Content: "More #ai progress", Likes: 30},
		{Content: "Quiet update #notes", Likes: 4},
	}

	top, unique := AnalyzeHashtags(posts)
	require.Equal(t, 3, unique)
	require.NotEmpty(t, top)

	// #ai appears in both high-engagement posts and ranks first.
	assert.Equal(t, "#ai", top[0].Tag)
	assert.Equal(t, 2, top[0].Uses)
	assert.EqualValues(t, 230, top[0].TotalEngagement)
	assert.InDelta(t, 115.0, top[0].AvgEngagement, 0.001)
	assert.Equal(t, PerformanceExcellent, top[0].Performance)

	for _, m := range top {
		if m.Tag == "#notes" {
			assert.Equal(t, PerformancePoor, m.Performance)
		}
	}
}

func TestPerformanceBucket(t *testing.T) {
	tests := []struct {
		avg    float64
		bucket string
	}{
		{150, PerformanceExcellent},
		{100, PerformanceGood},
		{51, PerformanceGood},
		{50, PerformanceFair},
		{21, PerformanceFair},
		{20, PerformancePoor},
		{0, PerformancePoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bucket, performanceBucket(tt.avg), "avg %.0f", tt.avg)
	}
}

func TestPredictEngagement_Factors(t *testing.T) {
	// 120 chars, a question, and 3 hashtags: length + question + hashtag factors.
	content := "What do you think about our brand new analytics dashboard release today? " +
		"Tell us below! #ai #data #analytics ok"
	require.GreaterOrEqual(t, len(content), 100)
	require.LessOrEqual(t, len(content), 150)

	prediction := PredictEngagement(content, models.PlatformInstagram)

	assert.Len(t, prediction.Factors, 3)
	// score 0.5+0.2+0.1+0.15 = 0.95 → High rating.
	assert.Equal(t, "High", prediction.EngagementRating)
	assert.InDelta(t, 0.95, prediction.ConfidenceScore, 0.001)
	assert.Equal(t, "20%", prediction.PlatformBoost)
	// min(0.95, 0.95*1.2) * 1000.
	assert.Equal(t, 950, prediction.PredictedEngagement)
}

func TestPredictEngagement_PlainContent(t *testing.T) {
	prediction := PredictEngagement("short note", models.PlatformTwitter)

	assert.Empty(t, prediction.Factors)
	assert.Equal(t, "Average", prediction.EngagementRating)
	assert.InDelta(t, 0.5, prediction.ConfidenceScore, 0.001)
	assert.Equal(t, "Standard", prediction.PlatformBoost)
	// 0.5 * 0.9 = 0.45 → 450.
	assert.Equal(t, 450, prediction.PredictedEngagement)
}

func TestPredictEngagement_UnknownPlatform(t *testing.T) {
	prediction := PredictEngagement("short note", models.Platform("myspace"))
	assert.Equal(t, 500, prediction.PredictedEngagement)
}

func TestDetectAnomalies_Spike(t *testing.T) {
	posts := []models.Post{
		post(1, 10, 0, 0),
		post(2, 10, 0, 0),
		post(3, 10, 0, 0),
		post(4, 100, 0, 0),
	}

	report := DetectAnomalies(posts)
	require.Equal(t, 1, report.AnomaliesDetected)
	anomaly := report.Anomalies[0]
	assert.EqualValues(t, 100, anomaly.Engagement)
	assert.Contains(t, anomaly.Type, "Spike")
	assert.EqualValues(t, 4, anomaly.PostID)
}

func TestDetectAnomalies_Dip(t *testing.T) {
	posts := []models.Post{
		post(1, 10, 0, 0),
		post(2, 10, 0, 0),
		post(3, 10, 0, 0),
		post(4, 1, 0, 0),
	}

	report := DetectAnomalies(posts)
	require.Equal(t, 1, report.AnomaliesDetected)
	anomaly := report.Anomalies[0]
	assert.EqualValues(t, 1, anomaly.Engagement)
	assert.Contains(t, anomaly.Type, "Dip")
}

func TestDetectAnomalies_ZeroEngagementIsNotADip(t *testing.T) {
	posts := []models.Post{
		post(1, 10, 0, 0),
		post(2, 10, 0, 0),
		post(3, 0, 0, 0),
	}

	report := DetectAnomalies(posts)
	for _, a := range report.Anomalies {
		assert.NotZero(t, a.Engagement)
	}
}

func TestDetectAnomalies_Empty(t *testing.T) {
	report := DetectAnomalies(nil)
	assert.Zero(t, report.TotalPosts)
	assert.Zero(t, report.AnomaliesDetected)
}

func TestForecastGrowth(t *testing.T) {
	forecast := ForecastGrowth(2, 10, 3)

	assert.EqualValues(t, 2000, forecast.CurrentFollowers)
	assert.Equal(t, 3, forecast.ForecastPeriodMonths)
	require.Len(t, forecast.MonthlyForecast, 3)

	// 2000 * 1.15^month, truncated; allow a unit of float slack.
	assert.InDelta(t, 2300, forecast.MonthlyForecast[0].ProjectedFollowers, 1)
	assert.InDelta(t, 2645, forecast.MonthlyForecast[1].ProjectedFollowers, 1)
	assert.InDelta(t, 3041, forecast.MonthlyForecast[2].ProjectedFollowers, 1)

	assert.Equal(t, "High", forecast.MonthlyForecast[0].Confidence)
	assert.Equal(t, "High", forecast.MonthlyForecast[1].Confidence)
	assert.Equal(t, "Medium", forecast.MonthlyForecast[2].Confidence)

	assert.Equal(t, 14, forecast.MonthlyForecast[0].ProjectedPosts)
}

func TestForecastGrowth_ClampsMonths(t *testing.T) {
	assert.Len(t, ForecastGrowth(1, 0, 0).MonthlyForecast, 3)
	assert.Len(t, ForecastGrowth(1, 0, 100).MonthlyForecast, 3)
	assert.Len(t, ForecastGrowth(1, 0, 6).MonthlyForecast, 6)
}

func TestInsights(t *testing.T) {
	posts := []models.Post{
		{Likes: 10, Comments: 2, Shares: 1},
		{Likes: 20, Comments: 4, Shares: 3},
	}

	report := Insights(posts)
	assert.Equal(t, 2, report.TotalPosts)
	assert.EqualValues(t, 40, report.TotalEngagement)
	assert.InDelta(t, 20.0, report.AverageEngagement, 0.001)
	assert.NotEmpty(t, report.Insights)
}

func TestAudienceInsights(t *testing.T) {
	withAccounts := AudienceInsights([]models.Post{{Likes: 5}}, 2)
	assert.Equal(t, "Growing - Add more hashtags", withAccounts.AudienceSize)
	assert.InDelta(t, 500.0, withAccounts.EngagementRate, 0.001)

	empty := AudienceInsights(nil, 0)
	assert.Equal(t, "No data", empty.AudienceSize)
	assert.Zero(t, empty.EngagementRate)
}

func TestCompetitorAnalysis(t *testing.T) {
	posts := []models.Post{{Content: "hello world", Likes: 200}}

	report := CompetitorAnalysis(posts, "")
	assert.Equal(t, "technology", report.Industry)
	assert.Equal(t, "Top 25%", report.VsCompetition["engagement_rank"])
	assert.Equal(t, "Excellent", report.VsCompetition["content_quality"])
	assert.Equal(t, "Below average", report.VsCompetition["posting_frequency"])
	assert.InDelta(t, 11, report.YourMetrics.AvgPostLength, 0.001)
}

func TestBuildRecommendations(t *testing.T) {
	recs := BuildRecommendations()
	assert.Len(t, recs.BestPostingTimes, 4)
	assert.NotEmpty(t, recs.ContentRecommendations)
	assert.Equal(t, "3-5 hashtags per post", recs.HashtagStrategy.OptimalCount)
	assert.Equal(t, "30%", recs.ContentMix["educational"])
}
