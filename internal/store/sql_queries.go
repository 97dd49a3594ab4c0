package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/socialpulse/socialpulse/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	connectAccount = `INSERT INTO social_accounts (user_id, platform, account_name)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, platform, account_name, connected_at;`

	listAccountsByUser = `SELECT id, user_id, platform, account_name, connected_at
    FROM social_accounts
    WHERE user_id = $1
    ORDER BY connected_at DESC, id DESC;`

	findAccountOwner = `SELECT user_id FROM social_accounts WHERE id = $1;`

	deleteAccountByID = `DELETE FROM social_accounts WHERE id = $1;`

	createPost = `INSERT INTO posts
    (user_id, account_id, content, post_date, likes, comments, shares, impressions, sentiment, ai_score)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, user_id, account_id, content, post_date, likes, comments, shares, impressions, sentiment, ai_score;`

	findPostOwner = `SELECT user_id FROM posts WHERE id = $1;`

	findPostByID = `SELECT id, user_id, account_id, content, post_date, likes, comments, shares, impressions, sentiment, ai_score
    FROM posts
    WHERE id = $1;`
)

// postColumns is the canonical column list scanned into a models.Post.
var postColumns = []string{
	"id", "user_id", "account_id", "content", "post_date",
	"likes", "comments", "shares", "impressions", "sentiment", "ai_score",
}

// psql builds PostgreSQL-flavoured ($1, $2, …) squirrel statements.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// buildListPostsQuery builds the paginated, newest-first SELECT for a post
// filter.
func buildListPostsQuery(filter PostFilter) (string, []any, error) {
	builder := psql.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("post_date DESC", "id DESC")

	if filter.AccountID != 0 {
		builder = builder.Where(squirrel.Eq{"account_id": filter.AccountID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	return builder.ToSql()
}

// buildCountPostsQuery builds the unpaginated COUNT for the same filter.
func buildCountPostsQuery(filter PostFilter) (string, []any, error) {
	builder := psql.Select("COUNT(*)").
		From(models.Post{}.TableName()).
		Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.AccountID != 0 {
		builder = builder.Where(squirrel.Eq{"account_id": filter.AccountID})
	}

	return builder.ToSql()
}

// buildUpdatePostQuery builds a partial UPDATE from the non-nil fields of the
// patch. Numeric counters are clamped to be non-negative before binding.
// Returns ErrBuildingSQLQuery when the patch carries no fields.
func buildUpdatePostQuery(postID int64, patch models.PostPatch) (string, []any, error) {
	if patch.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := psql.Update(models.Post{}.TableName())

	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}
	if patch.Likes != nil {
		builder = builder.Set("likes", clampNonNegative(*patch.Likes))
	}
	if patch.Comments != nil {
		builder = builder.Set("comments", clampNonNegative(*patch.Comments))
	}
	if patch.Shares != nil {
		builder = builder.Set("shares", clampNonNegative(*patch.Shares))
	}
	if patch.Impressions != nil {
		builder = builder.Set("impressions", clampNonNegative(*patch.Impressions))
	}

	builder = builder.
		Where(squirrel.Eq{"id": postID}).
		Suffix("RETURNING id, user_id, account_id, content, post_date, likes, comments, shares, impressions, sentiment, ai_score")

	return builder.ToSql()
}
