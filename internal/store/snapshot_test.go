package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/models"
)

func newMemoryStore(t *testing.T) *SnapshotStore {
	t.Helper()
	s, err := NewSnapshotStore("", logger.Nop())
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}
	return s
}

func mustCreateUser(t *testing.T, s *SnapshotStore, username, email string) models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func mustConnectAccount(t *testing.T, s *SnapshotStore, userID int64, platform models.Platform, name string) models.SocialAccount {
	t.Helper()
	account, err := s.ConnectAccount(context.Background(), models.SocialAccount{
		UserID:      userID,
		Platform:    platform,
		AccountName: name,
	})
	if err != nil {
		t.Fatalf("failed to connect account %s: %v", name, err)
	}
	return account
}

func TestSnapshotStore_CreateUser_AssignsSequentialIDs(t *testing.T) {
	s := newMemoryStore(t)

	first := mustCreateUser(t, s, "alice", "alice@example.com")
	second := mustCreateUser(t, s, "bob", "bob@example.com")

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSnapshotStore_CreateUser_DuplicateUsername(t *testing.T) {
	s := newMemoryStore(t)
	mustCreateUser(t, s, "alice", "alice@example.com")

	_, err := s.CreateUser(context.Background(), models.User{
		Username: "alice",
		Email:    "other@example.com",
	})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestSnapshotStore_CreateUser_DuplicateEmail(t *testing.T) {
	s := newMemoryStore(t)
	mustCreateUser(t, s, "alice", "alice@example.com")

	_, err := s.CreateUser(context.Background(), models.User{
		Username: "other",
		Email:    "alice@example.com",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestSnapshotStore_FindUserByEmail_CaseSensitive(t *testing.T) {
	s := newMemoryStore(t)
	mustCreateUser(t, s, "alice", "alice@example.com")

	if _, err := s.FindUserByEmail(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("exact-case lookup failed: %v", err)
	}

	_, err := s.FindUserByEmail(context.Background(), "Alice@Example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for different casing, got %v", err)
	}
}

func TestSnapshotStore_ConnectAccount_UnknownUser(t *testing.T) {
	s := newMemoryStore(t)

	_, err := s.ConnectAccount(context.Background(), models.SocialAccount{
		UserID:      99,
		Platform:    models.PlatformInstagram,
		AccountName: "ghost",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSnapshotStore_ListAccounts_OnlyOwn(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	bob := mustCreateUser(t, s, "bob", "bob@example.com")

	mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")
	mustConnectAccount(t, s, bob.ID, models.PlatformTwitter, "bob_tw")
	mustConnectAccount(t, s, alice.ID, models.PlatformYouTube, "alice_yt")

	accounts, err := s.ListAccounts(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	for _, a := range accounts {
		if a.UserID != alice.ID {
			t.Errorf("got account %d owned by user %d", a.ID, a.UserID)
		}
	}
}

func TestSnapshotStore_DeleteAccount_Ownership(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	bob := mustCreateUser(t, s, "bob", "bob@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	if err := s.DeleteAccount(context.Background(), bob.ID, account.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	// The failed delete must not remove the record.
	accounts, err := s.ListAccounts(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected account to survive foreign delete, got %d accounts", len(accounts))
	}

	if err := s.DeleteAccount(context.Background(), alice.ID, account.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := s.DeleteAccount(context.Background(), alice.ID, account.ID); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
}

func TestSnapshotStore_AddPost_AccountChecks(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	bob := mustCreateUser(t, s, "bob", "bob@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	_, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: 42,
		Content:   "hello",
	})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = s.AddPost(context.Background(), models.Post{
		UserID:    bob.ID,
		AccountID: account.ID,
		Content:   "hello",
	})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	post, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: account.ID,
		Content:   "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID == 0 {
		t.Error("expected post to get an id")
	}
	if post.PostDate.IsZero() {
		t.Error("expected PostDate to default to now")
	}
}

func TestSnapshotStore_ListPosts_NewestFirstWithPaging(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.AddPost(context.Background(), models.Post{
			UserID:    alice.ID,
			AccountID: account.ID,
			Content:   "post",
			PostDate:  base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("failed to add post %d: %v", i, err)
		}
	}

	posts, total, err := s.ListPosts(context.Background(), PostFilter{
		UserID: alice.ID,
		Limit:  2,
		Offset: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	// Newest first: offset 1 skips the Aug 5 post.
	if !posts[0].PostDate.Equal(base.AddDate(0, 0, 3)) {
		t.Errorf("expected first page item dated %v, got %v", base.AddDate(0, 0, 3), posts[0].PostDate)
	}
	if posts[0].PostDate.Before(posts[1].PostDate) {
		t.Error("expected newest-first ordering")
	}
}

func TestSnapshotStore_ListPosts_TieBreakByID(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	when := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.AddPost(context.Background(), models.Post{
			UserID:    alice.ID,
			AccountID: account.ID,
			Content:   "same instant",
			PostDate:  when,
		})
		if err != nil {
			t.Fatalf("failed to add post %d: %v", i, err)
		}
	}

	posts, _, err := s.ListPosts(context.Background(), PostFilter{UserID: alice.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i-1].ID < posts[i].ID {
			t.Fatalf("expected descending ids for equal dates, got %d before %d", posts[i-1].ID, posts[i].ID)
		}
	}
}

func TestSnapshotStore_ListPosts_OffsetBeyondTotal(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	if _, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: account.ID,
		Content:   "only one",
	}); err != nil {
		t.Fatalf("failed to add post: %v", err)
	}

	posts, total, err := s.ListPosts(context.Background(), PostFilter{UserID: alice.ID, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("expected total 1, got %d", total)
	}
	if len(posts) != 0 {
		t.Errorf("expected empty page, got %d posts", len(posts))
	}
}

func TestSnapshotStore_UpdatePost_PatchAndClamp(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	bob := mustCreateUser(t, s, "bob", "bob@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	post, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: account.ID,
		Content:   "original",
		Likes:     10,
	})
	if err != nil {
		t.Fatalf("failed to add post: %v", err)
	}

	if _, err = s.UpdatePost(context.Background(), bob.ID, post.ID, models.PostPatch{}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err = s.UpdatePost(context.Background(), alice.ID, 999, models.PostPatch{}); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	content := "edited"
	likes := int64(-5)
	shares := int64(3)
	updated, err := s.UpdatePost(context.Background(), alice.ID, post.ID, models.PostPatch{
		Content: &content,
		Likes:   &likes,
		Shares:  &shares,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Content != "edited" {
		t.Errorf("expected content edited, got %q", updated.Content)
	}
	if updated.Likes != 0 {
		t.Errorf("expected negative likes clamped to 0, got %d", updated.Likes)
	}
	if updated.Shares != 3 {
		t.Errorf("expected shares 3, got %d", updated.Shares)
	}
	// Untouched fields survive.
	if updated.Comments != post.Comments {
		t.Errorf("expected comments unchanged, got %d", updated.Comments)
	}
}

func TestSnapshotStore_UpdatePost_EmptyPatchIsNoOp(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformInstagram, "alice_ig")

	post, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: account.ID,
		Content:   "original",
		Likes:     10,
	})
	if err != nil {
		t.Fatalf("failed to add post: %v", err)
	}

	got, err := s.UpdatePost(context.Background(), alice.ID, post.ID, models.PostPatch{})
	if err != nil {
		t.Fatalf("expected an empty patch to succeed, got %v", err)
	}
	if got != post {
		t.Errorf("expected the post unchanged, got %+v", got)
	}
}

func TestSnapshotStore_PersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewSnapshotStore(path, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}

	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	account := mustConnectAccount(t, s, alice.ID, models.PlatformTikTok, "alice_tt")
	post, err := s.AddPost(context.Background(), models.Post{
		UserID:    alice.ID,
		AccountID: account.ID,
		Content:   "survives restarts",
		Likes:     7,
	})
	if err != nil {
		t.Fatalf("failed to add post: %v", err)
	}

	// Simulate a restart by loading a fresh store from the same file.
	reloaded, err := NewSnapshotStore(path, logger.Nop())
	if err != nil {
		t.Fatalf("failed to reload snapshot store: %v", err)
	}

	found, err := reloaded.FindUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user did not survive reload: %v", err)
	}
	if found.ID != alice.ID {
		t.Errorf("expected user id %d, got %d", alice.ID, found.ID)
	}

	accounts, err := reloaded.ListAccounts(context.Background(), alice.ID)
	if err != nil || len(accounts) != 1 {
		t.Fatalf("expected 1 account after reload, got %d (err %v)", len(accounts), err)
	}

	posts, total, err := reloaded.ListPosts(context.Background(), PostFilter{UserID: alice.ID})
	if err != nil || total != 1 {
		t.Fatalf("expected 1 post after reload, got %d (err %v)", total, err)
	}
	if posts[0].ID != post.ID || posts[0].Likes != 7 {
		t.Errorf("post did not round-trip: %+v", posts[0])
	}

	// New records continue the id sequence instead of reusing ids.
	bob := mustCreateUser(t, reloaded, "bob", "bob@example.com")
	if bob.ID <= alice.ID {
		t.Errorf("expected id sequence to continue past %d, got %d", alice.ID, bob.ID)
	}
}

func TestSnapshotStore_ListAccountsCallCounter(t *testing.T) {
	s := newMemoryStore(t)
	alice := mustCreateUser(t, s, "alice", "alice@example.com")

	if got := s.ListAccountsCalls(); got != 0 {
		t.Fatalf("expected 0 calls initially, got %d", got)
	}

	for i := 0; i < 3; i++ {
		if _, err := s.ListAccounts(context.Background(), alice.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := s.ListAccountsCalls(); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
}
