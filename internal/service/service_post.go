package service

import (
	"context"
	"fmt"
	"time"

	"github.com/socialpulse/socialpulse/internal/analytics"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/validators"
	"github.com/socialpulse/socialpulse/models"
)

// DefaultListLimit is applied when a post listing is requested without an
// explicit page size. Exported so the HTTP layer can report the page size it
// actually asked for.
const DefaultListLimit = 50

// postService is the concrete implementation of PostService.
type postService struct {
	// postRepository is the data-access layer for tracked posts.
	postRepository store.PostRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPostService constructs a new PostService wired to the given
// PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// AddPost records a new post for the given user.
//
// Content must be non-empty after trimming. Negative engagement counters are
// clamped to zero. New posts start with a neutral sentiment and a 0.5 AI
// score; the derived values are refreshed by the analytics endpoints.
//
// Returns the persisted post (with a server-assigned ID and post date) or:
//   - validators.ErrEmptyContent on blank content.
//   - store.ErrAccountNotFound when the target account does not exist.
//   - store.ErrNotOwner when the account belongs to a different user.
func (p *postService) AddPost(ctx context.Context, userID int64, req models.AddPostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateContent(req.Content); err != nil {
		log.Error().Int64("account_id", req.AccountID).Msg("invalid post data provided")
		return models.Post{}, err
	}

	post := models.Post{
		UserID:      userID,
		AccountID:   req.AccountID,
		Content:     req.Content,
		PostDate:    time.Now(),
		Likes:       clampCounter(req.Likes),
		Comments:    clampCounter(req.Comments),
		Shares:      clampCounter(req.Shares),
		Impressions: clampCounter(req.Impressions),
		Sentiment:   analytics.SentimentNeutral,
		AIScore:     0.5,
	}

	created, err := p.postRepository.AddPost(ctx, post)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("account_id", req.AccountID).
			Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// ListPosts returns one page of the user's posts newest-first, together with
// the total number of posts matching the filter. A non-positive limit falls
// back to the default page size; a negative offset is treated as zero.
func (p *postService) ListPosts(ctx context.Context, filter store.PostFilter) ([]models.Post, int, error) {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	posts, total, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", filter.UserID).Msg("post listing ended with error")
		return nil, 0, fmt.Errorf("post listing ended with error: %w", err)
	}

	return posts, total, nil
}

// UpdatePost applies the non-nil fields of patch to the given post after an
// ownership check and returns the updated record.
//
// Returns store.ErrPostNotFound when the post does not exist and
// store.ErrNotOwner (before any mutation) when it belongs to a different
// user.
func (p *postService) UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	updated, err := p.postRepository.UpdatePost(ctx, userID, postID, patch)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("post_id", postID).
			Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updated, nil
}

// TrendingPosts returns the user's posts ranked by total engagement,
// highest first. A non-positive limit falls back to the top ten.
func (p *postService) TrendingPosts(ctx context.Context, userID int64, limit int) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListAllPosts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("post listing ended with error")
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	return analytics.Trending(posts, limit), nil
}

// clampCounter coerces a negative engagement counter to zero.
func clampCounter(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
