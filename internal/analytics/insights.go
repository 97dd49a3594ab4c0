package analytics

import (
	"fmt"

	"github.com/socialpulse/socialpulse/models"
)

// InsightsReport summarizes engagement and pairs it with canned AI guidance.
type InsightsReport struct {
	TotalPosts        int      `json:"total_posts"`
	TotalEngagement   int64    `json:"total_engagement"`
	AverageEngagement float64  `json:"average_engagement"`
	Insights          []string `json:"insights"`
}

// Insights computes engagement aggregates plus the fixed guidance list.
// Callers should handle the no-posts case before calling.
func Insights(posts []models.Post) InsightsReport {
	var total int64
	for _, p := range posts {
		total += p.Engagement()
	}

	avg := 0.0
	if len(posts) > 0 {
		avg = roundTo(float64(total)/float64(len(posts)), 2)
	}

	return InsightsReport{
		TotalPosts:        len(posts),
		TotalEngagement:   total,
		AverageEngagement: avg,
		Insights: []string{
			"Your content performs best on weekdays between 6-9 PM",
			"Posts with visual content get 3x more engagement",
			"Hashtags increase reach by 40%",
			"Shorter captions (under 100 chars) perform better",
		},
	}
}

// PostingTime is one recommended posting window.
type PostingTime struct {
	Day        string `json:"day"`
	Time       string `json:"time"`
	Engagement string `json:"engagement"`
	Reason     string `json:"reason"`
}

// HashtagStrategy is canned hashtag guidance.
type HashtagStrategy struct {
	OptimalCount       string   `json:"optimal_count"`
	Distribution       []string `json:"distribution"`
	TrendingCategories []string `json:"trending_categories"`
	BestPerforming     []string `json:"best_performing"`
}

// Recommendations is the full posting-strategy recommendation payload.
type Recommendations struct {
	BestPostingTimes       []PostingTime     `json:"best_posting_times"`
	ContentRecommendations []string          `json:"content_recommendations"`
	HashtagStrategy        HashtagStrategy   `json:"hashtag_strategy"`
	ContentMix             map[string]string `json:"content_mix"`
	EngagementTips         []string          `json:"engagement_tips"`
}

// BuildRecommendations returns the fixed posting-strategy guidance.
func BuildRecommendations() Recommendations {
	return Recommendations{
		BestPostingTimes: []PostingTime{
			{Day: "Monday-Friday", Time: "6:00 PM - 9:00 PM", Engagement: "45%", Reason: "Post-work engagement peak"},
			{Day: "Tuesday-Thursday", Time: "9:00 AM - 10:00 AM", Engagement: "35%", Reason: "Morning commute"},
			{Day: "Saturday", Time: "10:00 AM - 12:00 PM", Engagement: "35%", Reason: "Weekend morning scroll"},
			{Day: "Sunday", Time: "7:00 PM - 9:00 PM", Engagement: "38%", Reason: "Sunday evening"},
		},
		ContentRecommendations: []string{
			"Increase use of carousel posts - 2.3x more engagement",
			"Include 3-5 relevant hashtags per post for maximum reach",
			"Post videos 2-3 times per week for 5x better reach",
			"Use call-to-action buttons to boost clicks by 65%",
			"Share user-generated content to build community (15% boost)",
			"Post educational content on weekdays, entertainment on weekends",
			"Use trending audio in video content for 40% more reach",
		},
		HashtagStrategy: HashtagStrategy{
			OptimalCount:       "3-5 hashtags per post",
			Distribution:       []string{"1 branded hashtag", "2-3 niche hashtags", "1 trending hashtag"},
			TrendingCategories: []string{"#AI", "#Analytics", "#SocialMedia", "#Marketing", "#Tech", "#Data"},
			BestPerforming:     []string{"#AI", "#DigitalMarketing", "#DataAnalytics"},
		},
		ContentMix: map[string]string{
			"educational":    "30%",
			"promotional":    "20%",
			"entertainment":  "35%",
			"user_generated": "15%",
		},
		EngagementTips: []string{
			"Reply to comments within first hour for 60% more engagement",
			"Use questions in captions to boost comments by 50%",
			"Post consistently at same times for algorithm favor",
			"Collaborate with 5-10 accounts weekly for cross-promotion",
			"Use stories/reels for 2-3x reach vs regular posts",
		},
	}
}

// AudienceReport mixes computed engagement rate with canned demographic and
// behavioral segments.
type AudienceReport struct {
	AudienceSize       string            `json:"audience_size"`
	EngagementRate     float64           `json:"engagement_rate"`
	Demographics       Demographics      `json:"demographics"`
	BehaviorPatterns   BehaviorPatterns  `json:"behavior_patterns"`
	AudienceSentiment  AudienceSentiment `json:"audience_sentiment"`
	ContentPreferences []string          `json:"content_preferences"`
}

type Demographics struct {
	PrimaryAge   string         `json:"primary_age"`
	GenderSplit  map[string]int `json:"gender_split"`
	TopLocations []string       `json:"top_locations"`
	Interests    []string       `json:"interests"`
}

type BehaviorPatterns struct {
	MostActiveDay      string `json:"most_active_day"`
	PeakEngagementTime string `json:"peak_engagement_time"`
	AvgSessionDuration string `json:"avg_session_duration"`
	FollowerGrowthRate string `json:"follower_growth_rate"`
}

type AudienceSentiment struct {
	Positive       int    `json:"positive"`
	Neutral        int    `json:"neutral"`
	Negative       int    `json:"negative"`
	SentimentTrend string `json:"sentiment_trend"`
}

// AudienceInsights builds the audience report over the user's posts and
// connected-account count.
func AudienceInsights(posts []models.Post, accountCount int) AudienceReport {
	size := "No data"
	if accountCount > 0 {
		size = "Growing - Add more hashtags"
	}

	rate := 0.0
	if len(posts) > 0 {
		var total int64
		for _, p := range posts {
			total += p.Engagement()
		}
		rate = roundTo(float64(total)/float64(len(posts))*100, 2)
	}

	return AudienceReport{
		AudienceSize:   size,
		EngagementRate: rate,
		Demographics: Demographics{
			PrimaryAge:   "18-34",
			GenderSplit:  map[string]int{"male": 45, "female": 55},
			TopLocations: []string{"USA", "India", "UK", "Canada", "Australia"},
			Interests:    []string{"Technology", "Marketing", "Business", "Lifestyle"},
		},
		BehaviorPatterns: BehaviorPatterns{
			MostActiveDay:      "Saturday",
			PeakEngagementTime: "7:00 PM - 9:00 PM",
			AvgSessionDuration: "8 minutes",
			FollowerGrowthRate: "+15% this month",
		},
		AudienceSentiment: AudienceSentiment{
			Positive:       68,
			Neutral:        25,
			Negative:       7,
			SentimentTrend: "Improving",
		},
		ContentPreferences: []string{
			"Educational content (42%)",
			"Inspirational posts (38%)",
			"Behind-the-scenes (35%)",
			"Tutorial videos (28%)",
		},
	}
}

// CompetitorReport benchmarks the user's engagement against fixed industry
// reference numbers.
type CompetitorReport struct {
	Industry            string            `json:"industry"`
	YourMetrics         CompetitorMetrics `json:"your_metrics"`
	IndustryBenchmarks  CompetitorMetrics `json:"industry_benchmarks"`
	VsCompetition       map[string]string `json:"vs_competition"`
	GrowthOpportunities []string          `json:"growth_opportunities"`
}

type CompetitorMetrics struct {
	AvgEngagement    float64 `json:"avg_engagement"`
	ContentFrequency string  `json:"content_frequency"`
	AvgPostLength    float64 `json:"avg_post_length"`
	HashtagStrategy  string  `json:"hashtag_strategy,omitempty"`
	HashtagAvg       float64 `json:"hashtag_avg,omitempty"`
}

// CompetitorAnalysis compares the user's aggregates to mock industry
// benchmarks for the given industry label.
func CompetitorAnalysis(posts []models.Post, industry string) CompetitorReport {
	if industry == "" {
		industry = "technology"
	}

	avgEngagement := AverageEngagement(posts)

	var totalLength int
	for _, p := range posts {
		totalLength += len(p.Content)
	}
	avgLength := 0.0
	if len(posts) > 0 {
		avgLength = roundTo(float64(totalLength)/float64(len(posts)), 0)
	}

	engagementRank := "Top 50%"
	if avgEngagement > 100 {
		engagementRank = "Top 25%"
	}
	postingFrequency := "Below average"
	if len(posts) >= 20 {
		postingFrequency = "On par"
	}
	contentQuality := "Good"
	if avgEngagement > 150 {
		contentQuality = "Excellent"
	}

	return CompetitorReport{
		Industry: industry,
		YourMetrics: CompetitorMetrics{
			AvgEngagement:    roundTo(avgEngagement, 2),
			ContentFrequency: fmt.Sprintf("%d posts", len(posts)),
			AvgPostLength:    avgLength,
			HashtagStrategy:  "Advanced",
		},
		IndustryBenchmarks: CompetitorMetrics{
			AvgEngagement:    150.50,
			ContentFrequency: "25 posts",
			AvgPostLength:    120,
			HashtagAvg:       4.2,
		},
		VsCompetition: map[string]string{
			"engagement_rank":      engagementRank,
			"posting_frequency":    postingFrequency,
			"content_quality":      contentQuality,
			"hashtag_optimization": "Well-optimized",
		},
		GrowthOpportunities: []string{
			"Increase posting frequency to 5 posts/week",
			"Use trending hashtags in your niche",
			"Leverage video content (3x engagement)",
			"Cross-promote on multiple platforms",
			"Engage with audience comments within 1 hour",
		},
	}
}
