package analytics

import (
	"sort"
	"strings"

	"github.com/socialpulse/socialpulse/models"
)

// Hashtag performance buckets, keyed off average engagement per use.
const (
	PerformanceExcellent = "excellent"
	PerformanceGood      = "good"
	PerformanceFair      = "fair"
	PerformancePoor      = "poor"
)

// HashtagMetric describes one hashtag's usage and performance across posts.
type HashtagMetric struct {
	Tag             string  `json:"tag"`
	Uses            int     `json:"uses"`
	TotalEngagement int64   `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
	Performance     string  `json:"performance"`
}

// AnalyzeHashtags scans post content for #tags and ranks them by total
// engagement, keeping the top 15. Ties are broken alphabetically so the
// ordering is stable.
func AnalyzeHashtags(posts []models.Post) (top []HashtagMetric, uniqueCount int) {
	metrics := make(map[string]*HashtagMetric)

	for _, post := range posts {
		engagement := post.Engagement()
		for _, word := range strings.Fields(strings.ToLower(post.Content)) {
			if !strings.HasPrefix(word, "#") || len(word) < 2 {
				continue
			}
			m, ok := metrics[word]
			if !ok {
				m = &HashtagMetric{Tag: word}
				metrics[word] = m
			}
			m.Uses++
			m.TotalEngagement += engagement
		}
	}

	ranked := make([]HashtagMetric, 0, len(metrics))
	for _, m := range metrics {
		m.AvgEngagement = roundTo(float64(m.TotalEngagement)/float64(m.Uses), 2)
		m.Performance = performanceBucket(m.AvgEngagement)
		ranked = append(ranked, *m)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalEngagement != ranked[j].TotalEngagement {
			return ranked[i].TotalEngagement > ranked[j].TotalEngagement
		}
		return ranked[i].Tag < ranked[j].Tag
	})

	uniqueCount = len(ranked)
	if len(ranked) > 15 {
		ranked = ranked[:15]
	}
	return ranked, uniqueCount
}

func performanceBucket(avg float64) string {
	switch {
	case avg > 100:
		return PerformanceExcellent
	case avg > 50:
		return PerformanceGood
	case avg > 20:
		return PerformanceFair
	default:
		return PerformancePoor
	}
}
