package analytics

import (
	"sort"

	"github.com/socialpulse/socialpulse/models"
)

// SummaryStats aggregates engagement counters over a set of posts.
type SummaryStats struct {
	TotalPosts            int     `json:"total_posts"`
	TotalLikes            int64   `json:"total_likes"`
	TotalComments         int64   `json:"total_comments"`
	TotalShares           int64   `json:"total_shares"`
	TotalImpressions      int64   `json:"total_impressions"`
	AverageLikes          float64 `json:"average_likes"`
	AverageComments       float64 `json:"average_comments"`
	AverageEngagementRate float64 `json:"average_engagement_rate"`
}

// Summarize computes totals and per-post averages for the given posts.
// An empty slice yields the zero value.
func Summarize(posts []models.Post) SummaryStats {
	stats := SummaryStats{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return stats
	}

	var totalEngagement int64
	for _, p := range posts {
		stats.TotalLikes += p.Likes
		stats.TotalComments += p.Comments
		stats.TotalShares += p.Shares
		stats.TotalImpressions += p.Impressions
		totalEngagement += p.Engagement()
	}

	n := float64(len(posts))
	stats.AverageLikes = roundTo(float64(stats.TotalLikes)/n, 2)
	stats.AverageComments = roundTo(float64(stats.TotalComments)/n, 2)
	stats.AverageEngagementRate = roundTo(float64(totalEngagement)/n, 2)

	return stats
}

// Trending returns the limit highest-engagement posts, engagement being
// likes+comments+shares. Input order is not modified.
func Trending(posts []models.Post, limit int) []models.Post {
	if limit <= 0 {
		limit = 10
	}

	trending := make([]models.Post, len(posts))
	copy(trending, posts)

	sort.Slice(trending, func(i, j int) bool {
		return trending[i].Engagement() > trending[j].Engagement()
	})

	if limit < len(trending) {
		trending = trending[:limit]
	}
	return trending
}

// AverageEngagement returns the mean engagement per post, 0 for no posts.
func AverageEngagement(posts []models.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	var total int64
	for _, p := range posts {
		total += p.Engagement()
	}
	return float64(total) / float64(len(posts))
}
