// Package analytics implements the mocked AI analysis layer: sentiment
// scoring, engagement aggregates, hashtag metrics, anomaly detection, and
// growth forecasting. All functions are pure computations over post data;
// orchestration and persistence live in the service layer.
package analytics

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/socialpulse/socialpulse/models"
)

// Sentiment classes assigned by the keyword analyzer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

var (
	positiveKeywords = []string{"amazing", "great", "love", "awesome", "excellent"}
	negativeKeywords = []string{"hate", "bad", "terrible", "awful"}

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
		"is": {}, "was": {}, "are": {},
	}
)

// SentimentResult is the per-post outcome of sentiment analysis.
type SentimentResult struct {
	PostID    int64    `json:"post_id,omitempty"`
	Content   string   `json:"content"`
	Sentiment string   `json:"sentiment"`
	AIScore   float64  `json:"ai_score"`
	Keywords  []string `json:"keywords"`
}

// SentimentDistribution counts results per sentiment class.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// AnalyzeSentiment classifies content by keyword matching and assigns a
// score drawn uniformly from the class band: positive [0.7,1.0],
// negative [0.0,0.3], neutral [0.4,0.6]. The score is mock AI output; only
// its band is contractual.
func AnalyzeSentiment(content string) (sentiment string, score float64) {
	lower := strings.ToLower(content)

	switch {
	case containsAny(lower, positiveKeywords):
		return SentimentPositive, roundTo(0.7+rand.Float64()*0.3, 2)
	case containsAny(lower, negativeKeywords):
		return SentimentNegative, roundTo(rand.Float64()*0.3, 2)
	default:
		return SentimentNeutral, roundTo(0.4+rand.Float64()*0.2, 2)
	}
}

// AnalyzePost runs sentiment analysis and keyword extraction over one post.
func AnalyzePost(post models.Post) SentimentResult {
	sentiment, score := AnalyzeSentiment(post.Content)
	return SentimentResult{
		PostID:    post.ID,
		Content:   post.Content,
		Sentiment: sentiment,
		AIScore:   score,
		Keywords:  ExtractKeywords(post.Content, 5),
	}
}

// ExtractKeywords returns up to limit distinct words longer than three
// characters, stop words excluded, in order of first occurrence.
func ExtractKeywords(text string, limit int) []string {
	keywords := make([]string, 0, limit)
	seen := make(map[string]struct{})

	for _, word := range strings.Fields(strings.ToLower(text)) {
		clean := strings.Trim(word, `.,!?;:"'`)
		if len(clean) <= 3 {
			continue
		}
		if _, stop := stopWords[clean]; stop {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		keywords = append(keywords, clean)
		if len(keywords) == limit {
			break
		}
	}

	return keywords
}

// CountSentiments tallies the sentiment distribution of analysis results.
func CountSentiments(results []SentimentResult) SentimentDistribution {
	var dist SentimentDistribution
	for _, r := range results {
		switch r.Sentiment {
		case SentimentPositive:
			dist.Positive++
		case SentimentNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}
	return dist
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
