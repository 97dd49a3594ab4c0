package analytics

import "math"

// Assumptions behind the mock growth model.
const (
	followersPerAccount = 1000
	monthlyGrowthRate   = 0.15
)

// MonthForecast projects one month of follower and posting growth.
type MonthForecast struct {
	Month                   int     `json:"month"`
	ProjectedFollowers      int64   `json:"projected_followers"`
	ProjectedEngagementRate float64 `json:"projected_engagement_rate"`
	ProjectedPosts          int     `json:"projected_posts"`
	Confidence              string  `json:"confidence"`
}

// GrowthForecast projects follower growth over a forecast window, compounding
// a fixed monthly rate over a mock follower base derived from connected
// accounts.
type GrowthForecast struct {
	CurrentFollowers     int64           `json:"current_followers"`
	ForecastPeriodMonths int             `json:"forecast_period_months"`
	MonthlyForecast      []MonthForecast `json:"monthly_forecast"`
	GrowthRate           string          `json:"growth_rate"`
	GrowthDrivers        []string        `json:"growth_drivers"`
	Recommendations      []string        `json:"recommendations_for_growth"`
}

// ForecastGrowth builds a months-long projection from the number of connected
// accounts and existing posts. Months outside [1,24] are clamped to 3.
func ForecastGrowth(accountCount, postCount, months int) GrowthForecast {
	if months < 1 || months > 24 {
		months = 3
	}

	current := int64(accountCount) * followersPerAccount

	forecast := make([]MonthForecast, 0, months)
	for month := 1; month <= months; month++ {
		confidence := "Medium"
		if month <= 2 {
			confidence = "High"
		}
		forecast = append(forecast, MonthForecast{
			Month:                   month,
			ProjectedFollowers:      int64(float64(current) * math.Pow(1+monthlyGrowthRate, float64(month))),
			ProjectedEngagementRate: roundTo(8.5+float64(month)*0.5, 2),
			ProjectedPosts:          postCount + month*4,
			Confidence:              confidence,
		})
	}

	return GrowthForecast{
		CurrentFollowers:     current,
		ForecastPeriodMonths: months,
		MonthlyForecast:      forecast,
		GrowthRate:           "15%",
		GrowthDrivers: []string{
			"Consistent posting schedule",
			"High-quality content",
			"Engagement with audience",
			"Strategic hashtag usage",
		},
		Recommendations: []string{
			"Collaborate with influencers in your niche",
			"Run contests and giveaways",
			"Create viral-worthy content",
			"Cross-promote on all platforms",
			"Engage authentically with followers",
		},
	}
}
