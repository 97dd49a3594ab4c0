package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// ConnectAccount persists a new social account link. A foreign-key violation
// on user_id means the owning user does not exist and maps to
// [ErrUserNotFound].
func (r *accountRepository) ConnectAccount(ctx context.Context, account models.SocialAccount) (models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, connectAccount, account.UserID, account.Platform, account.AccountName)

	var created models.SocialAccount
	if err := row.Scan(&created.ID, &created.UserID, &created.Platform, &created.AccountName, &created.ConnectedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.SocialAccount{}, ErrUserNotFound
		}

		return models.SocialAccount{}, r.db.unexpectedDBError(log, err)
	}

	return created, nil
}

// ListAccounts returns every account owned by userID, newest-first by
// connection time.
func (r *accountRepository) ListAccounts(ctx context.Context, userID int64) ([]models.SocialAccount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAccountsByUser, userID)
	if err != nil {
		return nil, r.db.unexpectedDBError(log, err)
	}
	defer rows.Close()

	accounts := make([]models.SocialAccount, 0)
	for rows.Next() {
		var account models.SocialAccount
		if err = rows.Scan(&account.ID, &account.UserID, &account.Platform, &account.AccountName, &account.ConnectedAt); err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.unexpectedDBError(log, err)
	}

	return accounts, nil
}

// DeleteAccount removes the account with the given id after verifying
// ownership inside a transaction, so the check and the delete cannot race
// with a concurrent writer.
func (r *accountRepository) DeleteAccount(ctx context.Context, userID, accountID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.db.unexpectedDBError(log, err)
	}
	defer tx.Rollback()

	var ownerID int64
	if err = tx.QueryRowContext(ctx, findAccountOwner, accountID).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		return r.db.unexpectedDBError(log, err)
	}

	if ownerID != userID {
		return ErrNotOwner
	}

	if _, err = tx.ExecContext(ctx, deleteAccountByID, accountID); err != nil {
		return r.db.unexpectedDBError(log, err)
	}

	if err = tx.Commit(); err != nil {
		return r.db.unexpectedDBError(log, err)
	}

	return nil
}
