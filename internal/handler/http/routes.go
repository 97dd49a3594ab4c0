package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// throttleLimit bounds the number of in-flight requests; excess requests
// wait and are eventually rejected with 503.
const throttleLimit = 1000

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(middleware.Throttle(throttleLimit))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/accounts", h.listAccounts)
		r.Post("/api/accounts", h.connectAccount)
		r.Delete("/api/accounts/{accountID}", h.deleteAccount)

		r.Get("/api/posts", h.listPosts)
		r.Post("/api/posts", h.addPost)
		r.Put("/api/posts/{postID}", h.updatePost)
		r.Get("/api/posts/trending", h.trendingPosts)

		r.Post("/api/analyze", h.analyzeContent)
		r.Get("/api/insights", h.insights)
		r.Get("/api/analytics/summary", h.analyticsSummary)
		r.Get("/api/analytics/hashtags", h.analyticsHashtags)
		r.Post("/api/analytics/predict-engagement", h.predictEngagement)
		r.Get("/api/analytics/audience-insights", h.audienceInsights)
		r.Get("/api/analytics/competitor-analysis", h.competitorAnalysis)
		r.Get("/api/analytics/anomalies", h.anomalies)
		r.Get("/api/analytics/forecast", h.forecast)
		r.Get("/api/recommendations", h.recommendations)
		r.Get("/api/stats", h.userStats)
		r.Get("/api/export", h.export)
	})

	return router
}
