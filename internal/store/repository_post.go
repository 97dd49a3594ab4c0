package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Listing and partial updates build their SQL dynamically with squirrel.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// AddPost persists a new post after verifying inside a transaction that the
// target account exists and belongs to the posting user.
func (r *postRepository) AddPost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}
	defer tx.Rollback()

	var accountOwner int64
	if err = tx.QueryRowContext(ctx, findAccountOwner, post.AccountID).Scan(&accountOwner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrAccountNotFound
		}
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}
	if accountOwner != post.UserID {
		return models.Post{}, ErrNotOwner
	}

	row := tx.QueryRowContext(ctx, createPost,
		post.UserID, post.AccountID, post.Content, post.PostDate,
		post.Likes, post.Comments, post.Shares, post.Impressions,
		post.Sentiment, post.AIScore,
	)

	var created models.Post
	if err = scanPost(row, &created); err != nil {
		log.Err(err).Str("func", "*postRepository.AddPost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}

	return created, nil
}

// ListPosts returns the filtered, newest-first page of posts together with
// the unpaginated total count.
func (r *postRepository) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, r.db.unexpectedDBError(log, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err = scanPost(rows, &post); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, r.db.unexpectedDBError(log, err)
	}

	countQuery, countArgs, err := buildCountPostsQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, r.db.unexpectedDBError(log, err)
	}

	return posts, total, nil
}

// ListAllPosts returns every post owned by userID, newest-first.
func (r *postRepository) ListAllPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, _, err := r.ListPosts(ctx, PostFilter{UserID: userID})
	return posts, err
}

// UpdatePost applies the non-nil fields of patch after verifying ownership
// inside the same transaction as the update itself. An empty patch mutates
// nothing and returns the current row, like the snapshot backend.
func (r *postRepository) UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}
	defer tx.Rollback()

	var ownerID int64
	if err = tx.QueryRowContext(ctx, findPostOwner, postID).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}
	if ownerID != userID {
		return models.Post{}, ErrNotOwner
	}

	if patch.Empty() {
		var current models.Post
		if err = scanPost(tx.QueryRowContext(ctx, findPostByID, postID), &current); err != nil {
			log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: scanning error")
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = tx.Commit(); err != nil {
			return models.Post{}, r.db.unexpectedDBError(log, err)
		}
		return current, nil
	}

	query, args, err := buildUpdatePostQuery(postID, patch)
	if err != nil {
		return models.Post{}, err
	}

	var updated models.Post
	if err = scanPost(tx.QueryRowContext(ctx, query, args...), &updated); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Post{}, r.db.unexpectedDBError(log, err)
	}

	return updated, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, post *models.Post) error {
	return row.Scan(
		&post.ID, &post.UserID, &post.AccountID, &post.Content, &post.PostDate,
		&post.Likes, &post.Comments, &post.Shares, &post.Impressions,
		&post.Sentiment, &post.AIScore,
	)
}
