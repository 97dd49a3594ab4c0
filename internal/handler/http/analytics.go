package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/models"
)

// authedUserID extracts the authenticated user's ID or writes a 401 response
// and reports false.
func authedUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) analyzeContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, ok := authedUserID(w, r); !ok {
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AnalyticsService.AnalyzeContent(r.Context(), req.Content)
	if err != nil {
		log.Err(err).Msg("content analysis failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	report, err := h.services.AnalyticsService.Insights(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("insights computation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.services.AnalyticsService.Summary(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("summary computation failed")
		writeError(w, err)
		return
	}

	// The period is echoed for the dashboard; aggregates always cover all
	// stored posts.
	period := intQueryParam(r, "period", 7)

	utils.WriteJSON(w, map[string]any{
		"period":    fmt.Sprintf("%d days", period),
		"stats":     stats,
		"timestamp": time.Now(),
	}, http.StatusOK)
}

func (h *Handler) analyticsHashtags(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	top, unique, err := h.services.AnalyticsService.Hashtags(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("hashtag analysis failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]any{
		"top_hashtags":    top,
		"unique_hashtags": unique,
	}, http.StatusOK)
}

func (h *Handler) predictEngagement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, ok := authedUserID(w, r); !ok {
		return
	}

	var req models.PredictEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	prediction, err := h.services.AnalyticsService.PredictEngagement(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("engagement prediction failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, prediction, http.StatusOK)
}

func (h *Handler) audienceInsights(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	report, err := h.services.AnalyticsService.AudienceInsights(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("audience insights computation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) competitorAnalysis(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	industry := r.URL.Query().Get("industry")

	report, err := h.services.AnalyticsService.CompetitorAnalysis(r.Context(), userID, industry)
	if err != nil {
		log.Err(err).Msg("competitor analysis failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) anomalies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	report, err := h.services.AnalyticsService.Anomalies(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("anomaly detection failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	months := intQueryParam(r, "months", 3)

	forecast, err := h.services.AnalyticsService.Forecast(r.Context(), userID, months)
	if err != nil {
		log.Err(err).Msg("growth forecast failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, forecast, http.StatusOK)
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedUserID(w, r); !ok {
		return
	}

	utils.WriteJSON(w, h.services.AnalyticsService.Recommendations(r.Context()), http.StatusOK)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := authedUserID(w, r)
	if !ok {
		return
	}

	stats, err := h.services.AnalyticsService.UserStats(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("user stats computation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
