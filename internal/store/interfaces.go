package store

import (
	"context"

	"github.com/socialpulse/socialpulse/models"
)

// UserRepository is the persistence contract for user accounts. Both the
// PostgreSQL backend and the JSON-snapshot backend implement it; callers
// depend only on this interface.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (ID, CreatedAt). Fails with ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists on uniqueness violations.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by exact, case-sensitive email match.
	// Fails with ErrUserNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by internal identifier.
	// Fails with ErrUserNotFound when no user matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// AccountRepository is the persistence contract for linked social accounts.
type AccountRepository interface {
	// ConnectAccount persists a new social account link for account.UserID
	// and returns it with server-assigned fields (ID, ConnectedAt).
	// Fails with ErrUserNotFound when the owning user does not exist.
	ConnectAccount(ctx context.Context, account models.SocialAccount) (models.SocialAccount, error)

	// ListAccounts returns every account owned by userID, newest-first by
	// connection time.
	ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, error)

	// DeleteAccount removes the account with the given id. Fails with
	// ErrAccountNotFound when absent, and with ErrNotOwner (leaving the
	// record intact) when the account belongs to a different user.
	DeleteAccount(ctx context.Context, userID, accountID int64) error
}

// PostFilter scopes and paginates a post listing. AccountID of zero means
// "all accounts of the user".
type PostFilter struct {
	UserID    int64
	AccountID int64
	Limit     int
	Offset    int
}

// PostRepository is the persistence contract for tracked posts.
type PostRepository interface {
	// AddPost persists a new post and returns it with server-assigned
	// fields. Fails with ErrAccountNotFound when post.AccountID is unknown
	// and ErrNotOwner when the account belongs to a different user.
	AddPost(ctx context.Context, post models.Post) (models.Post, error)

	// ListPosts returns the page of posts selected by filter ordered
	// newest-first by post date, together with the total number of posts
	// matching the filter regardless of pagination.
	ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, int, error)

	// ListAllPosts returns every post owned by userID, newest-first.
	// Used by the analytics functions which operate on the full series.
	ListAllPosts(ctx context.Context, userID int64) ([]models.Post, error)

	// UpdatePost applies the non-nil fields of patch to the post with the
	// given id, clamping numeric counters to be non-negative, and returns
	// the updated record. Fails with ErrPostNotFound when absent and with
	// ErrNotOwner (before any mutation) when owned by a different user.
	UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error)
}
