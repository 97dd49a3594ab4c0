package analytics

import (
	"fmt"
	"sort"

	"github.com/socialpulse/socialpulse/models"
)

// Anomaly flags a post whose engagement deviates sharply from the mean.
type Anomaly struct {
	PostIndex  int    `json:"post_index"`
	PostID     int64  `json:"post_id"`
	Engagement int64  `json:"engagement"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
	Analysis   string `json:"analysis"`
}

// AnomalyReport is the outcome of scanning a user's posting history.
type AnomalyReport struct {
	TotalPosts        int       `json:"total_posts"`
	AverageEngagement float64   `json:"average_engagement"`
	AnomaliesDetected int       `json:"anomalies_detected"`
	Anomalies         []Anomaly `json:"anomalies"`
	Trend             string    `json:"trend"`
	Insights          []string  `json:"insights"`
}

// DetectAnomalies walks posts in chronological order and flags engagement
// spikes (more than twice the mean) and dips (non-zero but under 30% of the
// mean). At most ten anomalies are reported.
func DetectAnomalies(posts []models.Post) AnomalyReport {
	ordered := make([]models.Post, len(posts))
	copy(ordered, posts)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].PostDate.Equal(ordered[j].PostDate) {
			return ordered[i].PostDate.Before(ordered[j].PostDate)
		}
		return ordered[i].ID < ordered[j].ID
	})

	engagements := make([]int64, len(ordered))
	var total int64
	for i, p := range ordered {
		engagements[i] = p.Engagement()
		total += engagements[i]
	}

	mean := float64(total) / float64(max(1, len(engagements)))

	anomalies := make([]Anomaly, 0)
	for i, engagement := range engagements {
		switch {
		case float64(engagement) > mean*2:
			anomalies = append(anomalies, Anomaly{
				PostIndex:  i,
				PostID:     ordered[i].ID,
				Engagement: engagement,
				Type:       "Spike - Viral content",
				Reason:     "Exceptional performance",
				Analysis:   "This post resonated with your audience",
			})
		case engagement > 0 && float64(engagement) < mean*0.3:
			anomalies = append(anomalies, Anomaly{
				PostIndex:  i,
				PostID:     ordered[i].ID,
				Engagement: engagement,
				Type:       "Dip - Below average",
				Reason:     "Lower engagement than usual",
				Analysis:   "Consider analyzing what made this post different",
			})
		}
	}

	report := AnomalyReport{
		TotalPosts:        len(ordered),
		AverageEngagement: roundTo(mean, 2),
		AnomaliesDetected: len(anomalies),
		Anomalies:         anomalies,
		Trend:             "Stable",
	}
	if len(report.Anomalies) > 10 {
		report.Anomalies = report.Anomalies[:10]
	}

	if len(engagements) >= 3 {
		var recent int64
		for _, e := range engagements[len(engagements)-3:] {
			recent += e
		}
		if float64(recent) > mean*3 {
			report.Trend = "Upward"
		}
	}

	if len(engagements) > 0 {
		best := engagements[0]
		for _, e := range engagements[1:] {
			if e > best {
				best = e
			}
		}
		report.Insights = []string{
			fmt.Sprintf("Your best post got %d engagements", best),
			fmt.Sprintf("Consistency: posts get %.0f engagements on average", mean),
		}
	}

	return report
}
