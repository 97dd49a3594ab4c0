package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/models"
)

// persistedState is the on-disk representation of the snapshot store: a
// single JSON document with top-level keys "users", "accounts", and "posts",
// each mapping a stringified numeric id to its record.
type persistedState struct {
	Users    map[string]models.User          `json:"users"`
	Accounts map[string]models.SocialAccount `json:"accounts"`
	Posts    map[string]models.Post          `json:"posts"`
}

// SnapshotStore is the in-process storage backend. It keeps all records in
// memory and serializes the entire data set to a JSON file after every
// successful mutation, so a process restart reconstructs identical visible
// state from the last snapshot.
//
// There is no write-ahead log: the last snapshot wins, and a crash between a
// mutation and its snapshot loses that mutation. This is an accepted
// limitation of the dev/mock backend, not of the contract.
//
// A single store-wide mutex serializes every read-modify-snapshot sequence,
// so concurrent writers cannot interleave and one snapshot can never silently
// overwrite another's change. If the snapshot write itself fails, the
// in-memory mutation is rolled back before the error is returned, keeping
// memory and disk consistent.
//
// SnapshotStore implements [UserRepository], [AccountRepository], and
// [PostRepository].
type SnapshotStore struct {
	path   string // empty path disables persistence (memory-only mode)
	logger *logger.Logger

	mu       sync.Mutex
	users    map[int64]models.User
	accounts map[int64]models.SocialAccount
	posts    map[int64]models.Post

	nextUserID    int64
	nextAccountID int64
	nextPostID    int64

	// listAccountsCalls counts how many times ListAccounts actually hit the
	// store. The account service's cache tests observe it to prove that a
	// cache hit does not re-query the store.
	listAccountsCalls atomic.Int64
}

// NewSnapshotStore constructs a SnapshotStore persisting to the given file
// path and loads the previous snapshot if one exists. An empty path yields a
// memory-only store that never touches disk.
func NewSnapshotStore(path string, log *logger.Logger) (*SnapshotStore, error) {
	s := &SnapshotStore{
		path:          path,
		logger:        log,
		users:         make(map[int64]models.User),
		accounts:      make(map[int64]models.SocialAccount),
		posts:         make(map[int64]models.Post),
		nextUserID:    1,
		nextAccountID: 1,
		nextPostID:    1,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SnapshotStore) load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read snapshot file: %w", err)
	}

	var st persistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode snapshot file: %w", err)
	}

	for key, user := range st.Users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("decode snapshot file: bad user key %q: %w", key, err)
		}
		user.ID = id
		s.users[id] = user
		if id >= s.nextUserID {
			s.nextUserID = id + 1
		}
	}

	for key, account := range st.Accounts {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("decode snapshot file: bad account key %q: %w", key, err)
		}
		account.ID = id
		s.accounts[id] = account
		if id >= s.nextAccountID {
			s.nextAccountID = id + 1
		}
	}

	for key, post := range st.Posts {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("decode snapshot file: bad post key %q: %w", key, err)
		}
		post.ID = id
		s.posts[id] = post
		if id >= s.nextPostID {
			s.nextPostID = id + 1
		}
	}

	s.logger.Info().
		Str("path", s.path).
		Int("users", len(s.users)).
		Int("accounts", len(s.accounts)).
		Int("posts", len(s.posts)).
		Msg("snapshot loaded")

	return nil
}

// persistLocked writes the full state to disk. The caller must hold s.mu.
func (s *SnapshotStore) persistLocked() error {
	if s.path == "" {
		return nil
	}

	st := persistedState{
		Users:    make(map[string]models.User, len(s.users)),
		Accounts: make(map[string]models.SocialAccount, len(s.accounts)),
		Posts:    make(map[string]models.Post, len(s.posts)),
	}
	for id, user := range s.users {
		st.Users[strconv.FormatInt(id, 10)] = user
	}
	for id, account := range s.accounts {
		st.Accounts[strconv.FormatInt(id, 10)] = account
	}
	for id, post := range s.posts {
		st.Posts[strconv.FormatInt(id, 10)] = post
	}

	payload, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
		}
	}

	// Write-then-rename so a crash mid-write cannot truncate the state file.
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotWrite, err)
	}

	return nil
}

// CreateUser implements [UserRepository]. Username and email uniqueness is
// enforced by scanning existing records under the store lock.
func (s *SnapshotStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return models.User{}, ErrUsernameAlreadyExists
		}
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.ID = s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = user
	s.nextUserID++

	if err := s.persistLocked(); err != nil {
		delete(s.users, user.ID)
		s.nextUserID--
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail implements [UserRepository]. The match is case-sensitive.
func (s *SnapshotStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// FindUserByID implements [UserRepository].
func (s *SnapshotStore) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// ConnectAccount implements [AccountRepository]. Unlike the original mock
// backend, the owning user must exist — both backends agree on this check.
func (s *SnapshotStore) ConnectAccount(ctx context.Context, account models.SocialAccount) (models.SocialAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[account.UserID]; !ok {
		return models.SocialAccount{}, ErrUserNotFound
	}

	account.ID = s.nextAccountID
	if account.ConnectedAt.IsZero() {
		account.ConnectedAt = time.Now()
	}
	s.accounts[account.ID] = account
	s.nextAccountID++

	if err := s.persistLocked(); err != nil {
		delete(s.accounts, account.ID)
		s.nextAccountID--
		return models.SocialAccount{}, err
	}

	return account, nil
}

// ListAccounts implements [AccountRepository]. Results are ordered
// newest-first by connection time, ties broken by descending id.
func (s *SnapshotStore) ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, error) {
	s.listAccountsCalls.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]models.SocialAccount, 0)
	for _, account := range s.accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		if !accounts[i].ConnectedAt.Equal(accounts[j].ConnectedAt) {
			return accounts[i].ConnectedAt.After(accounts[j].ConnectedAt)
		}
		return accounts[i].ID > accounts[j].ID
	})

	return accounts, nil
}

// DeleteAccount implements [AccountRepository]. Ownership is verified before
// the record is touched.
func (s *SnapshotStore) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	if account.UserID != userID {
		return ErrNotOwner
	}

	delete(s.accounts, accountID)

	if err := s.persistLocked(); err != nil {
		s.accounts[accountID] = account
		return err
	}

	return nil
}

// AddPost implements [PostRepository]. The target account must exist and
// belong to the posting user.
func (s *SnapshotStore) AddPost(ctx context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[post.AccountID]
	if !ok {
		return models.Post{}, ErrAccountNotFound
	}
	if account.UserID != post.UserID {
		return models.Post{}, ErrNotOwner
	}

	post.ID = s.nextPostID
	if post.PostDate.IsZero() {
		post.PostDate = time.Now()
	}
	s.posts[post.ID] = post
	s.nextPostID++

	if err := s.persistLocked(); err != nil {
		delete(s.posts, post.ID)
		s.nextPostID--
		return models.Post{}, err
	}

	return post, nil
}

// ListPosts implements [PostRepository].
func (s *SnapshotStore) ListPosts(ctx context.Context, filter PostFilter) ([]models.Post, int, error) {
	s.mu.Lock()
	matching := make([]models.Post, 0)
	for _, post := range s.posts {
		if post.UserID != filter.UserID {
			continue
		}
		if filter.AccountID != 0 && post.AccountID != filter.AccountID {
			continue
		}
		matching = append(matching, post)
	}
	s.mu.Unlock()

	sortPostsNewestFirst(matching)

	total := len(matching)

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []models.Post{}, total, nil
	}
	matching = matching[offset:]

	if filter.Limit > 0 && filter.Limit < len(matching) {
		matching = matching[:filter.Limit]
	}

	return matching, total, nil
}

// ListAllPosts implements [PostRepository].
func (s *SnapshotStore) ListAllPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	posts, _, err := s.ListPosts(ctx, PostFilter{UserID: userID})
	return posts, err
}

// UpdatePost implements [PostRepository]. Only the non-nil fields of patch
// are applied; counters are clamped to be non-negative.
func (s *SnapshotStore) UpdatePost(ctx context.Context, userID, postID int64, patch models.PostPatch) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.posts[postID]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if original.UserID != userID {
		return models.Post{}, ErrNotOwner
	}

	updated := original
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Likes != nil {
		updated.Likes = clampNonNegative(*patch.Likes)
	}
	if patch.Comments != nil {
		updated.Comments = clampNonNegative(*patch.Comments)
	}
	if patch.Shares != nil {
		updated.Shares = clampNonNegative(*patch.Shares)
	}
	if patch.Impressions != nil {
		updated.Impressions = clampNonNegative(*patch.Impressions)
	}
	s.posts[postID] = updated

	if err := s.persistLocked(); err != nil {
		s.posts[postID] = original
		return models.Post{}, err
	}

	return updated, nil
}

// ListAccountsCalls reports how many times ListAccounts hit the store.
// It is an instrumentation hook for cache-behavior tests.
func (s *SnapshotStore) ListAccountsCalls() int64 {
	return s.listAccountsCalls.Load()
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PostDate.Equal(posts[j].PostDate) {
			return posts[i].PostDate.After(posts[j].PostDate)
		}
		return posts[i].ID > posts[j].ID
	})
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
