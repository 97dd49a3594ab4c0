package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/service"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// Defaults are resolved here so the response echoes the page size and
	// offset that were actually applied.
	limit := intQueryParam(r, "limit", 0)
	if limit <= 0 {
		limit = service.DefaultListLimit
	}
	offset := intQueryParam(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	filter := store.PostFilter{
		UserID:    userID,
		AccountID: int64QueryParam(r, "account_id", 0),
		Limit:     limit,
		Offset:    offset,
	}

	posts, total, err := h.services.PostService.ListPosts(r.Context(), filter)
	if err != nil {
		log.Err(err).Msg("post listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.PostsResponse{
		Posts:     posts,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
		Timestamp: time.Now(),
	}, http.StatusOK)
}

func (h *Handler) addPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AddPostRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.AddPost(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Int64("account_id", req.AccountID).Msg("post creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.PostResponse{
		Message: "Post added successfully",
		Post:    post,
	}, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, err := int64URLParam(r, "postID")
	if err != nil {
		log.Err(err).Msg("invalid post id in url")
		writeJSONError(w, "invalid post id", http.StatusBadRequest)
		return
	}

	var patch models.PostPatch
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), userID, postID, patch)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.PostResponse{
		Message: "Post updated successfully",
		Post:    post,
	}, http.StatusOK)
}

func (h *Handler) trendingPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("request reached handler without authentication")
		writeJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	limit := intQueryParam(r, "limit", 0)

	posts, err := h.services.PostService.TrendingPosts(r.Context(), userID, limit)
	if err != nil {
		log.Err(err).Msg("trending post listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TrendingPostsResponse{
		TrendingPosts: posts,
		Total:         len(posts),
		Timestamp:     time.Now(),
	}, http.StatusOK)
}
