package service

import (
	"context"
	"fmt"

	"github.com/socialpulse/socialpulse/internal/cache"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/validators"
	"github.com/socialpulse/socialpulse/models"
)

// accountService is the concrete implementation of AccountService.
// It fronts the AccountRepository with a TTL+LRU lookup cache so that the
// frequently polled account list does not hit the store on every request.
type accountService struct {
	// accountRepository is the data-access layer for linked social accounts.
	accountRepository store.AccountRepository

	// listCache memoises ListAccounts results per user. Entries expire after
	// the cache TTL and are invalidated on every account mutation.
	listCache *cache.Cache[[]models.SocialAccount]

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs a new AccountService wired to the given
// AccountRepository, with a lookup cache at the default TTL and capacity.
func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		listCache:         cache.New[[]models.SocialAccount](cache.DefaultTTL, cache.DefaultCapacity),
		logger:            logger,
	}
}

// accountsCacheKey builds the cache key under which a user's account list is
// memoised.
func accountsCacheKey(userID int64) string {
	return fmt.Sprintf("accounts_%d", userID)
}

// ConnectAccount validates and links a new social account for the given user,
// then invalidates the user's cached account list.
//
// Returns the persisted account (with a server-assigned ID) or:
//   - validators.ErrInvalidPlatform / validators.ErrInvalidAccountName on
//     validation failure.
//   - store.ErrUserNotFound when the owning user does not exist.
func (a *accountService) ConnectAccount(ctx context.Context, userID int64, req models.ConnectAccountRequest) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidatePlatform(req.Platform); err != nil {
		log.Error().Str("platform", string(req.Platform)).Msg("invalid platform provided")
		return models.SocialAccount{}, err
	}
	if err := validators.ValidateAccountName(req.AccountName); err != nil {
		log.Error().Str("account_name", req.AccountName).Msg("invalid account name provided")
		return models.SocialAccount{}, err
	}

	connected, err := a.accountRepository.ConnectAccount(ctx, models.SocialAccount{
		UserID:      userID,
		Platform:    req.Platform,
		AccountName: req.AccountName,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account connection ended with error")
		return models.SocialAccount{}, fmt.Errorf("account connection ended with error: %w", err)
	}

	a.listCache.Invalidate(accountsCacheKey(userID))

	return connected, nil
}

// ListAccounts returns the user's linked accounts newest-first.
//
// A fresh cache entry is served without touching the repository; the second
// return value reports whether that happened. On a miss the repository result
// is stored under the user's cache key before being returned, unless the key
// was invalidated while the repository read was in flight.
func (a *accountService) ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, bool, error) {
	log := logger.FromContext(ctx)

	key := accountsCacheKey(userID)
	if accounts, ok := a.listCache.Get(key); ok {
		return accounts, true, nil
	}

	gen := a.listCache.Generation(key)

	accounts, err := a.accountRepository.ListAccounts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account listing ended with error")
		return nil, false, fmt.Errorf("account listing ended with error: %w", err)
	}

	// The refill is dropped when an account mutation invalidated the list
	// while the repository read was in flight. A later listing re-reads the
	// store instead of serving the pre-mutation result.
	a.listCache.SetIfGeneration(key, accounts, gen)

	return accounts, false, nil
}

// DeleteAccount removes the given account after an ownership check, then
// invalidates the user's cached account list.
//
// Returns store.ErrAccountNotFound when the account does not exist and
// store.ErrNotOwner (leaving the record intact) when it belongs to a
// different user.
func (a *accountService) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	log := logger.FromContext(ctx)

	if err := a.accountRepository.DeleteAccount(ctx, userID, accountID); err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Int64("account_id", accountID).
			Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	a.listCache.Invalidate(accountsCacheKey(userID))

	return nil
}
